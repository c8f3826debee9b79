package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
)

// productoWire producto tal como viaja por el backend.
type productoWire struct {
	IDProducto     int64           `json:"id_producto"`
	SKU            string          `json:"sku"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int64           `json:"cantidad"`
	Activo         bool            `json:"activo"`
}

func productoAWire(p *entity.Producto) productoWire {
	return productoWire{
		IDProducto:     p.ID,
		SKU:            p.SKU,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		PrecioUnitario: p.PrecioUnitario,
		Cantidad:       p.Cantidad,
		Activo:         p.Activo,
	}
}

func productoDesdeWire(w productoWire) *entity.Producto {
	return &entity.Producto{
		ID:             w.IDProducto,
		SKU:            w.SKU,
		Nombre:         w.Nombre,
		Descripcion:    w.Descripcion,
		PrecioUnitario: w.PrecioUnitario,
		Cantidad:       w.Cantidad,
		Activo:         w.Activo,
	}
}

// ProductoRESTRepository implementa ProductoRepository contra /productos.
type ProductoRESTRepository struct {
	client *Client
}

// NewProductoRESTRepository construye el adaptador de productos.
func NewProductoRESTRepository(client *Client) repository.ProductoRepository {
	return &ProductoRESTRepository{client: client}
}

func (r *ProductoRESTRepository) Listar(ctx context.Context) ([]*entity.Producto, error) {
	var wires []productoWire
	if err := r.client.do(ctx, http.MethodGet, "/productos", nil, nil, &wires); err != nil {
		return nil, err
	}
	productos := make([]*entity.Producto, 0, len(wires))
	for _, w := range wires {
		productos = append(productos, productoDesdeWire(w))
	}
	return productos, nil
}

func (r *ProductoRESTRepository) Obtener(ctx context.Context, id int64) (*entity.Producto, error) {
	var w productoWire
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/productos/%d", id), nil, nil, &w); err != nil {
		return nil, err
	}
	return productoDesdeWire(w), nil
}

func (r *ProductoRESTRepository) Crear(ctx context.Context, p *entity.Producto) (*entity.Producto, error) {
	var w productoWire
	if err := r.client.do(ctx, http.MethodPost, "/productos", nil, productoAWire(p), &w); err != nil {
		return nil, err
	}
	return productoDesdeWire(w), nil
}

func (r *ProductoRESTRepository) Actualizar(ctx context.Context, id int64, p *entity.Producto) (*entity.Producto, error) {
	var w productoWire
	if err := r.client.do(ctx, http.MethodPut, fmt.Sprintf("/productos/%d", id), nil, productoAWire(p), &w); err != nil {
		return nil, err
	}
	return productoDesdeWire(w), nil
}

func (r *ProductoRESTRepository) Eliminar(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/productos/%d", id), nil, nil, nil)
}
