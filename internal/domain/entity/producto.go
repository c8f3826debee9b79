package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto es un producto del inventario. Al seleccionarlo en una línea de
// factura, su nombre y precio unitario sirven de relleno inicial.
type Producto struct {
	ID             int64
	SKU            string
	Nombre         string
	Descripcion    string
	PrecioUnitario decimal.Decimal
	Cantidad       int64 // existencias
	Activo         bool

	CreadoEn      *time.Time
	ActualizadoEn *time.Time
}
