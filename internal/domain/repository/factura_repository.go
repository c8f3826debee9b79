package repository

import (
	"context"

	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
)

// FacturaRepository define el puerto hacia el endpoint de cabeceras de factura
// del backend. El backend asigna id, uuid, correlativo y fecha de emisión al
// crear; Crear y Actualizar devuelven la cabecera canónica resultante.
type FacturaRepository interface {
	Listar(ctx context.Context) ([]*entity.Factura, error)
	Obtener(ctx context.Context, id int64) (*entity.Factura, error)
	// Crear registra una factura nueva (POST /facturas).
	Crear(ctx context.Context, f *entity.Factura) (*entity.Factura, error)
	// Actualizar reemplaza la cabecera existente (PUT /facturas/{id}).
	Actualizar(ctx context.Context, id int64, f *entity.Factura) (*entity.Factura, error)
	// Anular marca la factura como anulada en el backend (PATCH /facturas/{id}/anular).
	// El editor nunca la invoca como transición propia; es un passthrough.
	Anular(ctx context.Context, id int64) error
}

// DetalleFacturaRepository define el puerto hacia el endpoint de líneas de
// detalle, que el backend maneja como recurso CRUD independiente de la cabecera.
type DetalleFacturaRepository interface {
	ListarPorFactura(ctx context.Context, idFactura int64) ([]*entity.DetalleFactura, error)
	// Crear persiste una línea nueva y devuelve la línea con su id de backend.
	Crear(ctx context.Context, d *entity.DetalleFactura) (*entity.DetalleFactura, error)
	Actualizar(ctx context.Context, d *entity.DetalleFactura) error
	Eliminar(ctx context.Context, idDetalle int64) error
}
