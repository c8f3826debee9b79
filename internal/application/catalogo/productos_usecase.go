package catalogo

import (
	"context"
	"errors"
	"strings"

	"github.com/BILLYG1010/deportes-facturador/internal/domain"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
)

// ProductosUseCase operaciones del catálogo de productos sobre el backend.
type ProductosUseCase struct {
	productos repository.ProductoRepository
}

// NewProductosUseCase construye el caso de uso.
func NewProductosUseCase(productos repository.ProductoRepository) *ProductosUseCase {
	return &ProductosUseCase{productos: productos}
}

// Listar devuelve los productos, opcionalmente filtrados por búsqueda sobre
// nombre, SKU y descripción. El backend no soporta búsqueda en /productos,
// así que el filtro se aplica aquí sobre la lista completa.
func (uc *ProductosUseCase) Listar(ctx context.Context, busqueda string) ([]*entity.Producto, error) {
	productos, err := uc.productos.Listar(ctx)
	if err != nil {
		return nil, err
	}
	busqueda = strings.ToLower(strings.TrimSpace(busqueda))
	if busqueda == "" {
		return productos, nil
	}
	filtrados := make([]*entity.Producto, 0, len(productos))
	for _, p := range productos {
		if strings.Contains(strings.ToLower(p.Nombre), busqueda) ||
			strings.Contains(strings.ToLower(p.SKU), busqueda) ||
			strings.Contains(strings.ToLower(p.Descripcion), busqueda) {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados, nil
}

// Obtener devuelve un producto por id.
func (uc *ProductosUseCase) Obtener(ctx context.Context, id int64) (*entity.Producto, error) {
	producto, err := uc.productos.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return producto, nil
}

// Guardar crea o actualiza según venga id. SKU, nombre y descripción son
// obligatorios en el backend; se validan localmente para no gastar el viaje.
func (uc *ProductosUseCase) Guardar(ctx context.Context, id *int64, p *entity.Producto) (*entity.Producto, error) {
	p.SKU = strings.TrimSpace(p.SKU)
	p.Nombre = strings.TrimSpace(p.Nombre)
	p.Descripcion = strings.TrimSpace(p.Descripcion)
	if p.SKU == "" {
		return nil, domain.NuevaValidacion("El SKU es obligatorio.")
	}
	if p.Nombre == "" {
		return nil, domain.NuevaValidacion("El nombre es obligatorio.")
	}
	if p.Descripcion == "" {
		return nil, domain.NuevaValidacion("La descripción es obligatoria.")
	}
	if id == nil {
		return uc.productos.Crear(ctx, p)
	}
	return uc.productos.Actualizar(ctx, *id, p)
}

// Eliminar borra el producto en el backend.
func (uc *ProductosUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.productos.Eliminar(ctx, id)
}

// PorIDs resuelve un conjunto de productos por id (para la tabla del PDF).
// Los ids que no existan simplemente no aparecen en el mapa.
func (uc *ProductosUseCase) PorIDs(ctx context.Context, ids []int64) (map[int64]*entity.Producto, error) {
	resultado := make(map[int64]*entity.Producto, len(ids))
	for _, id := range ids {
		if _, visto := resultado[id]; visto {
			continue
		}
		producto, err := uc.productos.Obtener(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if producto != nil {
			resultado[id] = producto
		}
	}
	return resultado, nil
}
