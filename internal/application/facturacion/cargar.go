package facturacion

import (
	"context"
	"fmt"

	"github.com/BILLYG1010/deportes-facturador/internal/domain"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
)

// CargarFacturaUseCase arma la sesión de edición de una factura existente:
// cabecera desde /facturas/{id} y línea base desde el recurso de detalles.
type CargarFacturaUseCase struct {
	facturas repository.FacturaRepository
	detalles repository.DetalleFacturaRepository
}

// NewCargarFacturaUseCase construye el caso de uso.
func NewCargarFacturaUseCase(
	facturas repository.FacturaRepository,
	detalles repository.DetalleFacturaRepository,
) *CargarFacturaUseCase {
	return &CargarFacturaUseCase{facturas: facturas, detalles: detalles}
}

// Cargar obtiene cabecera y detalles y devuelve la sesión con la línea base
// cargada y los totales recalculados.
func (uc *CargarFacturaUseCase) Cargar(ctx context.Context, id int64) (*Sesion, error) {
	factura, err := uc.facturas.Obtener(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cargar factura %d: %w", id, err)
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.detalles.ListarPorFactura(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cargar detalles de la factura %d: %w", id, err)
	}
	return SesionDesdeFactura(factura, detalles), nil
}
