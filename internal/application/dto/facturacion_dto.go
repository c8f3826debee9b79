package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BILLYG1010/deportes-facturador/internal/application/facturacion"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
)

// LineaFacturaRequest estado deseado de una línea tal como lo envía el editor.
// id_detalle presente = línea ya persistida en el backend.
type LineaFacturaRequest struct {
	IDDetalle      *int64          `json:"id_detalle,omitempty"`
	IDProducto     *int64          `json:"id_producto,omitempty"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descuento      decimal.Decimal `json:"descuento"`
}

// GuardarFacturaRequest body para POST /api/facturas y PUT /api/facturas/:id.
// Los subtotales y totales nunca viajan: se recalculan siempre en el servidor.
type GuardarFacturaRequest struct {
	IDClienteReceptor int64                 `json:"id_cliente_receptor"`
	Observaciones     string                `json:"observaciones"`
	Lineas            []LineaFacturaRequest `json:"lineas" validate:"dive"`
}

// LineaFacturaResponse línea de factura en respuestas.
type LineaFacturaResponse struct {
	IDDetalle      *int64          `json:"id_detalle,omitempty"`
	IDProducto     *int64          `json:"id_producto,omitempty"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descuento      decimal.Decimal `json:"descuento"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// FacturaResponse factura con líneas y estado de certificación para el editor.
type FacturaResponse struct {
	ID                  *int64                 `json:"id_factura,omitempty"`
	UUID                *string                `json:"uuid,omitempty"`
	Referencia          string                 `json:"referencia"`
	IDClienteEmisor     int64                  `json:"id_cliente_emisor"`
	IDClienteReceptor   int64                  `json:"id_cliente_receptor"`
	IDUsuario           int64                  `json:"id_usuario"`
	Serie               string                 `json:"serie"`
	Correlativo         *int64                 `json:"correlativo,omitempty"`
	Estado              int                    `json:"estado"`
	EtiquetaEstado      string                 `json:"etiqueta_estado"`
	EstadoCertificacion string                 `json:"estado_certificacion"` // sin_certificar | certificando | certificada
	Observaciones       string                 `json:"observaciones"`
	Subtotal            decimal.Decimal        `json:"subtotal"`
	Total               decimal.Decimal        `json:"total"`
	FechaEmision        *time.Time             `json:"fecha_emision,omitempty"`
	NumeroAutorizacion  string                 `json:"numero_autorizacion"`
	FechaCertificacion  *time.Time             `json:"fecha_certificacion,omitempty"`
	CodigoCertificacion string                 `json:"codigo_certificacion,omitempty"`
	Lineas              []LineaFacturaResponse `json:"lineas"`
}

// FacturaDesdeSesion arma la respuesta del editor desde la sesión.
// certificando fuerza el estado en proceso cuando hay una certificación en
// vuelo registrada fuera de la sesión (otra petición la inició).
func FacturaDesdeSesion(s *facturacion.Sesion, certificando bool) FacturaResponse {
	f := s.Factura()
	estadoCert := s.EstadoCertificacion()
	if certificando && estadoCert == facturacion.CertSinCertificar {
		estadoCert = facturacion.CertEnProceso
	}
	resp := FacturaResponse{
		ID:                  f.ID,
		UUID:                f.UUID,
		Referencia:          f.Referencia(),
		IDClienteEmisor:     f.IDClienteEmisor,
		IDClienteReceptor:   f.IDClienteReceptor,
		IDUsuario:           f.IDUsuario,
		Serie:               f.Serie,
		Correlativo:         f.Correlativo,
		Estado:              f.Estado,
		EtiquetaEstado:      f.EtiquetaEstado(),
		EstadoCertificacion: estadoCert,
		Observaciones:       f.Observaciones,
		Subtotal:            f.Subtotal,
		Total:               f.Total,
		FechaEmision:        f.FechaEmision,
		NumeroAutorizacion:  f.NumeroAutorizacion,
		FechaCertificacion:  f.FechaCertificacion,
		CodigoCertificacion: f.CodigoCertificacion,
		Lineas:              []LineaFacturaResponse{},
	}
	for _, l := range s.Lineas() {
		resp.Lineas = append(resp.Lineas, LineaFacturaResponse{
			IDDetalle:      l.IDDetalle,
			IDProducto:     l.IDProducto,
			Descripcion:    l.Descripcion,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Descuento:      l.Descuento,
			Subtotal:       l.CalcularSubtotal().Round(2),
		})
	}
	return resp
}

// FacturaListItem elemento del listado de facturas.
type FacturaListItem struct {
	ID             *int64          `json:"id_factura"`
	UUID           *string         `json:"uuid,omitempty"`
	Referencia     string          `json:"referencia"`
	Estado         int             `json:"estado"`
	EtiquetaEstado string          `json:"etiqueta_estado"`
	Total          decimal.Decimal `json:"total"`
	FechaEmision   *time.Time      `json:"fecha_emision,omitempty"`
}

// FacturaListItemDesde mapea una cabecera a su elemento de listado.
func FacturaListItemDesde(f *entity.Factura) FacturaListItem {
	return FacturaListItem{
		ID:             f.ID,
		UUID:           f.UUID,
		Referencia:     f.Referencia(),
		Estado:         f.Estado,
		EtiquetaEstado: f.EtiquetaEstado(),
		Total:          f.Total,
		FechaEmision:   f.FechaEmision,
	}
}

// EdicionDesdeRequest traduce el body del editor a la edición de dominio.
func EdicionDesdeRequest(in GuardarFacturaRequest) facturacion.EdicionFactura {
	receptor := in.IDClienteReceptor
	observaciones := in.Observaciones
	ed := facturacion.EdicionFactura{
		IDClienteReceptor: &receptor,
		Observaciones:     &observaciones,
	}
	for _, l := range in.Lineas {
		ed.Lineas = append(ed.Lineas, facturacion.LineaEdicion{
			IDDetalle:      l.IDDetalle,
			IDProducto:     l.IDProducto,
			Descripcion:    l.Descripcion,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Descuento:      l.Descuento,
		})
	}
	return ed
}
