package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
)

// detalleWire línea de detalle tal como viaja por el backend.
type detalleWire struct {
	IDDetalle      *int64          `json:"id_detalle,omitempty"`
	IDFactura      *int64          `json:"id_factura,omitempty"`
	IDProducto     *int64          `json:"id_producto,omitempty"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descuento      decimal.Decimal `json:"descuento"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

func detalleAWire(d *entity.DetalleFactura) detalleWire {
	return detalleWire{
		IDDetalle:      d.IDDetalle,
		IDFactura:      d.IDFactura,
		IDProducto:     d.IDProducto,
		Descripcion:    d.Descripcion,
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
		Descuento:      d.Descuento,
		Subtotal:       d.Subtotal,
	}
}

func detalleDesdeWire(w detalleWire) *entity.DetalleFactura {
	return &entity.DetalleFactura{
		IDDetalle:      w.IDDetalle,
		IDFactura:      w.IDFactura,
		IDProducto:     w.IDProducto,
		Descripcion:    w.Descripcion,
		Cantidad:       w.Cantidad,
		PrecioUnitario: w.PrecioUnitario,
		Descuento:      w.Descuento,
		Subtotal:       w.Subtotal,
	}
}

// DetalleRESTRepository implementa DetalleFacturaRepository contra
// /detalles-factura, el recurso CRUD de líneas del backend.
type DetalleRESTRepository struct {
	client *Client
}

// NewDetalleRESTRepository construye el adaptador de líneas de detalle.
func NewDetalleRESTRepository(client *Client) repository.DetalleFacturaRepository {
	return &DetalleRESTRepository{client: client}
}

func (r *DetalleRESTRepository) ListarPorFactura(ctx context.Context, idFactura int64) ([]*entity.DetalleFactura, error) {
	var wires []detalleWire
	path := fmt.Sprintf("/detalles-factura/factura/%d", idFactura)
	if err := r.client.do(ctx, http.MethodGet, path, nil, nil, &wires); err != nil {
		return nil, err
	}
	detalles := make([]*entity.DetalleFactura, 0, len(wires))
	for _, w := range wires {
		detalles = append(detalles, detalleDesdeWire(w))
	}
	return detalles, nil
}

func (r *DetalleRESTRepository) Crear(ctx context.Context, d *entity.DetalleFactura) (*entity.DetalleFactura, error) {
	var w detalleWire
	if err := r.client.do(ctx, http.MethodPost, "/detalles-factura", nil, detalleAWire(d), &w); err != nil {
		return nil, err
	}
	return detalleDesdeWire(w), nil
}

func (r *DetalleRESTRepository) Actualizar(ctx context.Context, d *entity.DetalleFactura) error {
	if d.IDDetalle == nil {
		return fmt.Errorf("restapi: la línea no tiene id de detalle")
	}
	path := fmt.Sprintf("/detalles-factura/%d", *d.IDDetalle)
	return r.client.do(ctx, http.MethodPut, path, nil, detalleAWire(d), nil)
}

func (r *DetalleRESTRepository) Eliminar(ctx context.Context, idDetalle int64) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/detalles-factura/%d", idDetalle), nil, nil, nil)
}
