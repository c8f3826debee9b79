package facturacion

import (
	"context"
	"time"

	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
)

// ResultadoCertificacion son los sellos que emite el certificador FEL.
type ResultadoCertificacion struct {
	CodigoCertificacion string
	NumeroAutorizacion  string // real, nunca con prefijo TEMP-
	FechaCertificacion  time.Time
}

// Certificador define el puerto de salida hacia el certificador FEL.
// La implementación de este repositorio es simulada (latencia configurable y
// sellos cosméticos); para tests se inyecta un fake.
type Certificador interface {
	Certificar(ctx context.Context, idFactura int64) (*ResultadoCertificacion, error)
}

// DatosPDF es todo lo que necesita el generador para la representación
// imprimible de la factura.
type DatosPDF struct {
	Factura    entity.Factura
	Lineas     []entity.DetalleFactura
	Cliente    *entity.Cliente
	Productos  map[int64]*entity.Producto // por id, para nombre y SKU en la tabla
	Referencia string
}

// GeneradorPDF define el puerto hacia el renderizador de PDF.
type GeneradorPDF interface {
	GenerarFacturaPDF(ctx context.Context, datos *DatosPDF) ([]byte, error)
}
