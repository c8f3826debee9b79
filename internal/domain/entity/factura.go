package entity

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura (mismos valores numéricos que el backend).
const (
	EstadoPendiente   = 0 // guardada, sin certificar
	EstadoCertificada = 1
	EstadoAnulada     = 2 // terminal; solo alcanzable vía backend, no desde el editor
)

// PrefijoAutorizacionTemporal marca un número de autorización generado
// localmente como relleno, antes de que el certificador emita uno real.
const PrefijoAutorizacionTemporal = "TEMP-"

// Factura es la cabecera de una factura en edición (borrador o persistida).
// Subtotal y Total son derivados: siempre se recalculan desde las líneas,
// nunca se editan a mano, y Total == Subtotal (sin IVA en esta versión).
type Factura struct {
	ID                *int64 // nil hasta el primer guardado
	IDClienteEmisor   int64
	IDClienteReceptor int64
	IDUsuario         int64

	Serie       string
	Correlativo *int64 // asignado por el backend al crear

	Estado        int
	Observaciones string

	Subtotal decimal.Decimal
	Total    decimal.Decimal

	UUID         *string    // asignado por el backend al crear
	FechaEmision *time.Time // asignada por el backend al crear

	NumeroAutorizacion  string // TEMP-... hasta que exista una autorización real
	FechaCertificacion  *time.Time
	CodigoCertificacion string

	CreadoEn      *time.Time
	ActualizadoEn *time.Time
}

// NuevaAutorizacionTemporal genera un relleno local tipo TEMP-<ms>-<nnnn>,
// distinguible a simple vista de una autorización real del certificador.
func NuevaAutorizacionTemporal() string {
	return fmt.Sprintf("%s%d-%d", PrefijoAutorizacionTemporal,
		time.Now().UnixMilli(), rand.Intn(9000)+1000)
}

// EsAutorizacionTemporal indica si el número de autorización es un relleno local.
func EsAutorizacionTemporal(autorizacion string) bool {
	return strings.HasPrefix(autorizacion, PrefijoAutorizacionTemporal)
}

// EstaCertificada indica si la factura está certificada de verdad.
// La doble condición cubre la consistencia eventual entre el estado local
// optimista y la confirmación del backend: hay fecha de certificación, o el
// estado es CERTIFICADA con una autorización que no es relleno temporal.
func (f *Factura) EstaCertificada() bool {
	if f.FechaCertificacion != nil {
		return true
	}
	return f.Estado == EstadoCertificada && !EsAutorizacionTemporal(f.NumeroAutorizacion)
}

// EtiquetaEstado devuelve el texto de estado que se muestra al usuario.
func (f *Factura) EtiquetaEstado() string {
	switch {
	case f.Estado == EstadoAnulada:
		return "Anulada"
	case f.EstaCertificada():
		return "Certificada"
	default:
		return "No certificada"
	}
}

// Referencia devuelve la referencia visible de la factura: serie más
// correlativo con relleno de ceros, o "<serie>-Borrador" si aún no hay
// correlativo asignado.
func (f *Factura) Referencia() string {
	serie := f.Serie
	if serie == "" {
		serie = "A"
	}
	if f.Correlativo == nil {
		return serie + "-Borrador"
	}
	return fmt.Sprintf("%s-%06d", serie, *f.Correlativo)
}
