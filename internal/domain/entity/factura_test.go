package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNuevaAutorizacionTemporal(t *testing.T) {
	aut := NuevaAutorizacionTemporal()
	assert.True(t, EsAutorizacionTemporal(aut), "debe llevar el prefijo temporal: %s", aut)
	assert.False(t, EsAutorizacionTemporal("AUT-123456"))
	assert.False(t, EsAutorizacionTemporal(""))
}

func TestEstaCertificada(t *testing.T) {
	ahora := time.Now()

	casos := []struct {
		nombre  string
		factura Factura
		want    bool
	}{
		{
			nombre:  "con fecha de certificación",
			factura: Factura{Estado: EstadoPendiente, FechaCertificacion: &ahora},
			want:    true,
		},
		{
			nombre:  "estado certificada con autorización real",
			factura: Factura{Estado: EstadoCertificada, NumeroAutorizacion: "AUT-654321"},
			want:    true,
		},
		{
			nombre:  "estado certificada pero autorización temporal",
			factura: Factura{Estado: EstadoCertificada, NumeroAutorizacion: "TEMP-1700000000-1234"},
			want:    false,
		},
		{
			// El backend puede marcar estado=1 sin devolver todavía la
			// autorización; una cadena vacía no es relleno temporal.
			nombre:  "estado certificada sin autorización",
			factura: Factura{Estado: EstadoCertificada},
			want:    true,
		},
		{
			nombre:  "pendiente sin nada",
			factura: Factura{Estado: EstadoPendiente, NumeroAutorizacion: "AUT-654321"},
			want:    false,
		},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.want, c.factura.EstaCertificada())
		})
	}
}

func TestEtiquetaEstado(t *testing.T) {
	ahora := time.Now()

	assert.Equal(t, "Anulada", (&Factura{Estado: EstadoAnulada}).EtiquetaEstado())
	assert.Equal(t, "Certificada", (&Factura{Estado: EstadoPendiente, FechaCertificacion: &ahora}).EtiquetaEstado())
	assert.Equal(t, "No certificada", (&Factura{Estado: EstadoPendiente}).EtiquetaEstado())
	// Anulada gana aunque tenga sellos de certificación previos
	assert.Equal(t, "Anulada", (&Factura{Estado: EstadoAnulada, FechaCertificacion: &ahora}).EtiquetaEstado())
}

func TestReferencia(t *testing.T) {
	assert.Equal(t, "A-Borrador", (&Factura{Serie: "A"}).Referencia())
	assert.Equal(t, "A-Borrador", (&Factura{}).Referencia(), "serie vacía usa A")
	assert.Equal(t, "B-000123", (&Factura{Serie: "B", Correlativo: int64Ptr(123)}).Referencia())
	assert.Equal(t, "A-999999", (&Factura{Serie: "A", Correlativo: int64Ptr(999999)}).Referencia())
}

func TestCalcularSubtotal(t *testing.T) {
	d := DetalleFactura{
		Cantidad:       decimal.NewFromInt(3),
		PrecioUnitario: decimal.RequireFromString("10.555"),
		Descuento:      decimal.RequireFromString("1.50"),
	}
	// Precisión completa, sin redondeo intermedio: 3*10.555 - 1.50 = 30.165
	require.True(t, decimal.RequireFromString("30.165").Equal(d.CalcularSubtotal()),
		"subtotal = %s", d.CalcularSubtotal())
}

func TestCalcularSubtotalNuncaNegativo(t *testing.T) {
	d := DetalleFactura{
		Cantidad:       decimal.NewFromInt(1),
		PrecioUnitario: decimal.NewFromInt(10),
		Descuento:      decimal.NewFromInt(50),
	}
	assert.True(t, d.CalcularSubtotal().IsZero(), "descuento mayor al bruto se recorta a cero")
}
