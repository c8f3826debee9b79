package facturacion

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string          { return &s }
func int64Ptr(v int64) *int64          { return &v }
func decPtr(s string) *decimal.Decimal { d := dec(s); return &d }

func TestNuevaSesion(t *testing.T) {
	s := NuevaSesion(1, 1, "A")
	f := s.Factura()

	assert.Nil(t, f.ID)
	assert.True(t, s.EsNueva())
	assert.Equal(t, entity.EstadoPendiente, f.Estado)
	assert.True(t, entity.EsAutorizacionTemporal(f.NumeroAutorizacion),
		"una factura nueva arranca con autorización temporal")
	assert.Equal(t, CertSinCertificar, s.EstadoCertificacion())
	assert.True(t, f.Subtotal.IsZero())
	assert.True(t, f.Total.IsZero())
	assert.Empty(t, s.Lineas())
	assert.Empty(t, s.IdsEliminados())
}

func TestNuevaSesionSerieVacia(t *testing.T) {
	s := NuevaSesion(1, 1, "")
	assert.Equal(t, "A", s.Factura().Serie)
}

func TestAgregarLinea(t *testing.T) {
	s := NuevaSesion(1, 1, "A")
	linea := s.AgregarLinea()

	assert.NotEmpty(t, linea.LocalID)
	assert.Nil(t, linea.IDDetalle)
	assert.True(t, linea.Cantidad.Equal(decimal.NewFromInt(1)), "la cantidad inicial es 1")
	assert.True(t, linea.PrecioUnitario.IsZero())
	assert.True(t, linea.Subtotal.IsZero())

	otra := s.AgregarLinea()
	assert.NotEqual(t, linea.LocalID, otra.LocalID)
	assert.Len(t, s.Lineas(), 2)
}

func TestActualizarLineaRecalculaTotales(t *testing.T) {
	s := NuevaSesion(1, 1, "A")
	linea := s.AgregarLinea()

	s.ActualizarLinea(linea.LocalID, PatchLinea{
		Descripcion:    strPtr("Balón de fútbol"),
		Cantidad:       decPtr("2"),
		PrecioUnitario: decPtr("150.50"),
		Descuento:      decPtr("10"),
	})

	lineas := s.Lineas()
	require.Len(t, lineas, 1)
	// 2 * 150.50 - 10 = 291
	assert.True(t, lineas[0].Subtotal.Equal(dec("291")), "subtotal = %s", lineas[0].Subtotal)

	f := s.Factura()
	assert.True(t, f.Subtotal.Equal(dec("291")))
	assert.True(t, f.Total.Equal(f.Subtotal), "sin impuestos: total == subtotal")
}

func TestActualizarLineaParcial(t *testing.T) {
	s := NuevaSesion(1, 1, "A")
	linea := s.AgregarLinea()
	s.ActualizarLinea(linea.LocalID, PatchLinea{
		Descripcion:    strPtr("Raqueta"),
		PrecioUnitario: decPtr("99.99"),
	})
	// Un patch posterior solo con cantidad no toca el resto
	s.ActualizarLinea(linea.LocalID, PatchLinea{Cantidad: decPtr("3")})

	lineas := s.Lineas()
	assert.Equal(t, "Raqueta", lineas[0].Descripcion)
	assert.True(t, lineas[0].PrecioUnitario.Equal(dec("99.99")))
	assert.True(t, lineas[0].Cantidad.Equal(dec("3")))
}

func TestActualizarLineaInexistenteEsNoOp(t *testing.T) {
	s := NuevaSesion(1, 1, "A")
	s.AgregarLinea()
	antes := s.Factura()

	s.ActualizarLinea("no-existe", PatchLinea{PrecioUnitario: decPtr("1000")})

	despues := s.Factura()
	assert.True(t, antes.Total.Equal(despues.Total), "un LocalID desconocido no cambia nada")
	assert.Len(t, s.Lineas(), 1)
}

func TestTotalesRedondeanA2Decimales(t *testing.T) {
	s := NuevaSesion(1, 1, "A")
	a := s.AgregarLinea()
	b := s.AgregarLinea()
	// Subtotales de línea con precisión completa: 3*10.555 = 31.665 cada una.
	// La suma 63.33 redondea exacto; con una sola sería 31.67 (half up).
	s.ActualizarLinea(a.LocalID, PatchLinea{Descripcion: strPtr("x"), Cantidad: decPtr("3"), PrecioUnitario: decPtr("10.555")})
	s.ActualizarLinea(b.LocalID, PatchLinea{Descripcion: strPtr("y"), Cantidad: decPtr("3"), PrecioUnitario: decPtr("10.555")})

	f := s.Factura()
	assert.True(t, f.Total.Equal(dec("63.33")), "total = %s: se redondea la suma, no cada línea", f.Total)
}

func TestSeleccionarProducto(t *testing.T) {
	producto := &entity.Producto{ID: 9, Nombre: "Guantes de portero", PrecioUnitario: dec("75.00")}

	s := NuevaSesion(1, 1, "A")
	vacia := s.AgregarLinea()
	s.SeleccionarProducto(vacia.LocalID, producto)

	lineas := s.Lineas()
	require.NotNil(t, lineas[0].IDProducto)
	assert.Equal(t, int64(9), *lineas[0].IDProducto)
	assert.Equal(t, "Guantes de portero", lineas[0].Descripcion, "descripción vacía se rellena con el nombre")
	assert.True(t, lineas[0].PrecioUnitario.Equal(dec("75.00")))

	// Con descripción escrita a mano, el producto no la pisa
	manual := s.AgregarLinea()
	s.ActualizarLinea(manual.LocalID, PatchLinea{Descripcion: strPtr("Mi descripción")})
	s.SeleccionarProducto(manual.LocalID, producto)
	assert.Equal(t, "Mi descripción", s.Lineas()[1].Descripcion)
	assert.True(t, s.Lineas()[1].PrecioUnitario.Equal(dec("75.00")), "el precio sí se aplica siempre")
}

func TestEliminarLineaNoPersistida(t *testing.T) {
	s := NuevaSesion(1, 1, "A")
	linea := s.AgregarLinea()
	s.EliminarLinea(linea.LocalID)

	assert.Empty(t, s.Lineas())
	assert.Empty(t, s.IdsEliminados(), "una línea nunca persistida no entra al libro de eliminaciones")
}

func TestEliminarLineaPersistida(t *testing.T) {
	f := &entity.Factura{ID: int64Ptr(7), IDClienteReceptor: 2, Serie: "A"}
	detalles := []*entity.DetalleFactura{
		{IDDetalle: int64Ptr(42), Descripcion: "Linea 1", Cantidad: dec("1"), PrecioUnitario: dec("10")},
		{IDDetalle: int64Ptr(43), Descripcion: "Linea 2", Cantidad: dec("1"), PrecioUnitario: dec("20")},
	}
	s := SesionDesdeFactura(f, detalles)

	lineas := s.Lineas()
	s.EliminarLinea(lineas[0].LocalID)
	assert.Equal(t, []int64{42}, s.IdsEliminados())

	s.EliminarLinea(lineas[1].LocalID)
	assert.Equal(t, []int64{42, 43}, s.IdsEliminados(), "los ids se acumulan en orden de eliminación")
	assert.Empty(t, s.Lineas())
	assert.True(t, s.Factura().Total.IsZero())
}

func TestSesionDesdeFactura(t *testing.T) {
	f := &entity.Factura{
		ID:                int64Ptr(7),
		IDClienteReceptor: 2,
		Serie:             "A",
		Correlativo:       int64Ptr(15),
		// Totales guardados desactualizados a propósito: la sesión recalcula.
		Subtotal: dec("999"),
		Total:    dec("999"),
	}
	detalles := []*entity.DetalleFactura{
		{IDDetalle: int64Ptr(42), Descripcion: "Linea", Cantidad: dec("2"), PrecioUnitario: dec("25.50")},
	}
	s := SesionDesdeFactura(f, detalles)

	assert.False(t, s.EsNueva())
	lineas := s.Lineas()
	require.Len(t, lineas, 1)
	assert.NotEmpty(t, lineas[0].LocalID, "cada línea cargada recibe identificador local")
	assert.True(t, s.Factura().Total.Equal(dec("51")), "los totales salen de las líneas, no de la cabecera guardada")
	assert.True(t, entity.EsAutorizacionTemporal(s.Factura().NumeroAutorizacion),
		"sin autorización guardada se genera un relleno temporal")
}

func TestSesionDesdeFacturaCertificadaDerivaCodigo(t *testing.T) {
	ahora := time.Now()
	f := &entity.Factura{
		ID:                 int64Ptr(7),
		Estado:             entity.EstadoCertificada,
		NumeroAutorizacion: "AUT-654321",
		FechaCertificacion: &ahora,
	}
	s := SesionDesdeFactura(f, nil)

	assert.Equal(t, "AUT-654321", s.Factura().CodigoCertificacion,
		"sin código guardado se muestra la autorización como código")
	assert.Equal(t, CertCertificada, s.EstadoCertificacion())
}

func TestSesionDesdeFacturaCertificadaSinAutorizacion(t *testing.T) {
	// El backend puede devolver estado=1 sin fecha ni número de autorización;
	// la factura sigue certificada y no debe recibir un relleno temporal.
	f := &entity.Factura{
		ID:     int64Ptr(9),
		Estado: entity.EstadoCertificada,
	}
	s := SesionDesdeFactura(f, nil)

	fact := s.Factura()
	assert.True(t, fact.EstaCertificada())
	assert.Empty(t, fact.NumeroAutorizacion,
		"la autorización vacía se respeta en una factura certificada")
	assert.Equal(t, CertCertificada, s.EstadoCertificacion())
}

func TestValidarParaGuardar(t *testing.T) {
	t.Run("sin receptor", func(t *testing.T) {
		s := NuevaSesion(1, 1, "A")
		err := s.validarParaGuardar()
		require.Error(t, err)
		assert.Equal(t, "Debes seleccionar un cliente.", err.Error())
	})

	t.Run("sin líneas", func(t *testing.T) {
		s := NuevaSesion(1, 1, "A")
		s.SeleccionarReceptor(2)
		err := s.validarParaGuardar()
		require.Error(t, err)
		assert.Equal(t, "Agrega al menos una línea de producto.", err.Error())
	})

	t.Run("línea sin descripción", func(t *testing.T) {
		s := NuevaSesion(1, 1, "A")
		s.SeleccionarReceptor(2)
		s.AgregarLinea()
		err := s.validarParaGuardar()
		require.Error(t, err)
		assert.Equal(t, "Cada línea requiere una descripción.", err.Error())
	})

	t.Run("cantidad cero", func(t *testing.T) {
		s := NuevaSesion(1, 1, "A")
		s.SeleccionarReceptor(2)
		l := s.AgregarLinea()
		s.ActualizarLinea(l.LocalID, PatchLinea{Descripcion: strPtr("x"), Cantidad: decPtr("0")})
		err := s.validarParaGuardar()
		require.Error(t, err)
		assert.Equal(t, "La cantidad debe ser mayor a 0.", err.Error())
	})

	t.Run("borrador completo", func(t *testing.T) {
		s := NuevaSesion(1, 1, "A")
		s.SeleccionarReceptor(2)
		l := s.AgregarLinea()
		s.ActualizarLinea(l.LocalID, PatchLinea{Descripcion: strPtr("x"), PrecioUnitario: decPtr("10")})
		assert.NoError(t, s.validarParaGuardar())
	})
}

func TestOperacionesReentrantes(t *testing.T) {
	s := NuevaSesion(1, 1, "A")
	require.NoError(t, s.comenzarOperacion(false))

	err := s.comenzarOperacion(false)
	assert.Error(t, err, "un guardado en vuelo rechaza otro guardado")
	err = s.comenzarOperacion(true)
	assert.Error(t, err, "un guardado en vuelo rechaza certificar")

	s.terminarOperacion(nil)
	assert.NoError(t, s.comenzarOperacion(true))
	assert.Equal(t, CertEnProceso, s.EstadoCertificacion())
	s.terminarOperacion(nil)
}

func TestUltimoError(t *testing.T) {
	s := NuevaSesion(1, 1, "A")
	require.NoError(t, s.comenzarOperacion(false))
	s.terminarOperacion(assert.AnError)
	assert.Equal(t, assert.AnError.Error(), s.UltimoError())

	// La siguiente operación limpia el banner
	require.NoError(t, s.comenzarOperacion(false))
	assert.Empty(t, s.UltimoError())
	s.terminarOperacion(nil)
	assert.Empty(t, s.UltimoError())
}

func TestAplicarEdicion(t *testing.T) {
	f := &entity.Factura{ID: int64Ptr(7), IDClienteReceptor: 2, Serie: "A"}
	detalles := []*entity.DetalleFactura{
		{IDDetalle: int64Ptr(42), Descripcion: "Se queda", Cantidad: dec("1"), PrecioUnitario: dec("10")},
		{IDDetalle: int64Ptr(43), Descripcion: "Se va", Cantidad: dec("1"), PrecioUnitario: dec("20")},
	}
	s := SesionDesdeFactura(f, detalles)

	AplicarEdicion(s, EdicionFactura{
		IDClienteReceptor: int64Ptr(5),
		Observaciones:     strPtr("entrega en tienda"),
		Lineas: []LineaEdicion{
			{IDDetalle: int64Ptr(42), Descripcion: "Se queda, editada", Cantidad: dec("3"), PrecioUnitario: dec("10")},
			{Descripcion: "Nueva", Cantidad: dec("1"), PrecioUnitario: dec("5")},
		},
	})

	factura := s.Factura()
	assert.Equal(t, int64(5), factura.IDClienteReceptor)
	assert.Equal(t, "entrega en tienda", factura.Observaciones)
	assert.Equal(t, []int64{43}, s.IdsEliminados(), "la persistida que no vino pasa al libro de eliminaciones")

	lineas := s.Lineas()
	require.Len(t, lineas, 2)
	assert.Equal(t, "Se queda, editada", lineas[0].Descripcion)
	require.NotNil(t, lineas[0].IDDetalle)
	assert.Equal(t, int64(42), *lineas[0].IDDetalle)
	assert.Equal(t, "Nueva", lineas[1].Descripcion)
	assert.Nil(t, lineas[1].IDDetalle)
	// 3*10 + 1*5
	assert.True(t, factura.Total.Equal(dec("35")))
}
