package facturacion

import (
	"context"

	"github.com/BILLYG1010/deportes-facturador/internal/domain"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
)

// ConsultaFacturasUseCase operaciones de lectura y passthrough que no pasan
// por una sesión de edición: el listado de facturas y la anulación.
type ConsultaFacturasUseCase struct {
	facturas repository.FacturaRepository
}

// NewConsultaFacturasUseCase construye el caso de uso.
func NewConsultaFacturasUseCase(facturas repository.FacturaRepository) *ConsultaFacturasUseCase {
	return &ConsultaFacturasUseCase{facturas: facturas}
}

// Listar devuelve todas las facturas del backend.
func (uc *ConsultaFacturasUseCase) Listar(ctx context.Context) ([]*entity.Factura, error) {
	return uc.facturas.Listar(ctx)
}

// Anular reenvía la anulación al backend. El editor no tiene una transición
// propia a ANULADA; esto solo expone la operación que el backend ya ofrece.
func (uc *ConsultaFacturasUseCase) Anular(ctx context.Context, id int64) error {
	factura, err := uc.facturas.Obtener(ctx, id)
	if err != nil {
		return err
	}
	if factura == nil {
		return domain.ErrNotFound
	}
	return uc.facturas.Anular(ctx, id)
}
