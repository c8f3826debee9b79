package facturacion

import (
	"context"
	"fmt"

	"github.com/BILLYG1010/deportes-facturador/internal/domain"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
)

// PDFUseCase genera la representación imprimible de la factura en edición.
// Un borrador incompleto (sin receptor o sin líneas) se rechaza con un error
// de validación antes de tocar el renderizador; un fallo del renderizador se
// reporta como mensaje y nunca tumba la sesión de edición.
type PDFUseCase struct {
	generador GeneradorPDF
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(generador GeneradorPDF) *PDFUseCase {
	return &PDFUseCase{generador: generador}
}

// GenerarPDF produce el PDF y el nombre de archivo sugerido.
// cliente es el receptor ya resuelto; productos mapea id de producto a su
// ficha para mostrar nombre y SKU en la tabla de líneas.
func (uc *PDFUseCase) GenerarPDF(
	ctx context.Context,
	s *Sesion,
	cliente *entity.Cliente,
	productos map[int64]*entity.Producto,
) ([]byte, string, error) {
	factura := s.Factura()
	lineas := s.Lineas()

	if factura.IDClienteReceptor == 0 {
		return nil, "", domain.NuevaValidacion("Selecciona un cliente antes de imprimir.")
	}
	if len(lineas) == 0 {
		return nil, "", domain.NuevaValidacion("Agrega al menos una línea antes de imprimir.")
	}

	referencia := factura.Referencia()
	pdfBytes, err := uc.generador.GenerarFacturaPDF(ctx, &DatosPDF{
		Factura:    factura,
		Lineas:     lineas,
		Cliente:    cliente,
		Productos:  productos,
		Referencia: referencia,
	})
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de la factura: %w", err)
	}
	return pdfBytes, "Factura_" + referencia + ".pdf", nil
}
