package facturacion

import "github.com/shopspring/decimal"

// LineaEdicion es el estado deseado de una línea tal como lo envía el editor.
// IDDetalle presente = línea ya persistida; ausente = línea nueva.
type LineaEdicion struct {
	IDDetalle      *int64
	IDProducto     *int64
	Descripcion    string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Descuento      decimal.Decimal
}

// EdicionFactura es el estado deseado completo de la factura en edición.
// Las líneas reemplazan al libro actual: lo que no venga, se elimina.
type EdicionFactura struct {
	IDClienteReceptor *int64
	Observaciones     *string
	Lineas            []LineaEdicion
}

// AplicarEdicion reconcilia el estado enviado por el editor contra la línea
// base de la sesión usando las operaciones del libro: las líneas persistidas
// que ya no vienen se eliminan (y sus ids pasan al libro de eliminaciones),
// las que vienen con id se actualizan, y el resto se agrega como líneas nuevas.
func AplicarEdicion(s *Sesion, ed EdicionFactura) {
	if ed.IDClienteReceptor != nil {
		s.SeleccionarReceptor(*ed.IDClienteReceptor)
	}
	if ed.Observaciones != nil {
		s.EditarObservaciones(*ed.Observaciones)
	}

	// LocalID de cada línea base persistida, por id de backend.
	base := make(map[int64]string)
	for _, l := range s.Lineas() {
		if l.IDDetalle != nil {
			base[*l.IDDetalle] = l.LocalID
		}
	}

	enviadas := make(map[int64]bool)
	for _, le := range ed.Lineas {
		if le.IDDetalle != nil {
			enviadas[*le.IDDetalle] = true
		}
	}

	// Persistidas que el editor ya no envía: fuera del libro activo.
	for _, l := range s.Lineas() {
		if l.IDDetalle != nil && !enviadas[*l.IDDetalle] {
			s.EliminarLinea(l.LocalID)
		}
	}

	for _, le := range ed.Lineas {
		localID := ""
		if le.IDDetalle != nil {
			localID = base[*le.IDDetalle]
		}
		if localID == "" {
			nueva := s.AgregarLinea()
			localID = nueva.LocalID
		}
		descripcion := le.Descripcion
		cantidad := le.Cantidad
		precio := le.PrecioUnitario
		descuento := le.Descuento
		s.ActualizarLinea(localID, PatchLinea{
			IDProducto:     le.IDProducto,
			Descripcion:    &descripcion,
			Cantidad:       &cantidad,
			PrecioUnitario: &precio,
			Descuento:      &descuento,
		})
	}
}
