package entity

import "github.com/shopspring/decimal"

// DetalleFactura es una línea de la factura en edición.
//
// LocalID identifica la línea dentro de la sesión de edición (no se persiste).
// IDDetalle es el identificador del backend: nil hasta el primer guardado
// exitoso de la línea.
type DetalleFactura struct {
	LocalID    string
	IDDetalle  *int64
	IDFactura  *int64
	IDProducto *int64 // opcional; la línea puede ser texto libre

	Descripcion    string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Descuento      decimal.Decimal

	// Subtotal derivado: max(0, cantidad*precio - descuento). Se recalcula en
	// cada cambio de campo; se redondea a 2 decimales solo al persistir.
	Subtotal decimal.Decimal
}

// CalcularSubtotal calcula el subtotal de la línea con precisión completa.
func (d *DetalleFactura) CalcularSubtotal() decimal.Decimal {
	st := d.Cantidad.Mul(d.PrecioUnitario).Sub(d.Descuento)
	if st.IsNegative() {
		return decimal.Zero
	}
	return st
}

// EstaPersistida indica si la línea ya existe en el backend.
func (d *DetalleFactura) EstaPersistida() bool {
	return d.IDDetalle != nil
}
