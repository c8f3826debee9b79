package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BILLYG1010/deportes-facturador/internal/application/catalogo"
	"github.com/BILLYG1010/deportes-facturador/internal/application/dto"
	"github.com/BILLYG1010/deportes-facturador/internal/application/facturacion"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
)

// EmisorConfig datos fijos del emisor que toda factura nueva arrastra.
type EmisorConfig struct {
	Serie           string
	IDClienteEmisor int64
	IDUsuario       int64
}

// FacturaHandler maneja el ciclo de edición de facturas: crear/editar
// borradores, certificar, anular e imprimir.
type FacturaHandler struct {
	cargar     *facturacion.CargarFacturaUseCase
	guardar    *facturacion.GuardarFacturaUseCase
	certificar *facturacion.CertificarFacturaUseCase
	consulta   *facturacion.ConsultaFacturasUseCase
	pdf        *facturacion.PDFUseCase
	clientes   *catalogo.ClientesUseCase
	productos  *catalogo.ProductosUseCase
	emisor     EmisorConfig
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(
	cargar *facturacion.CargarFacturaUseCase,
	guardar *facturacion.GuardarFacturaUseCase,
	certificar *facturacion.CertificarFacturaUseCase,
	consulta *facturacion.ConsultaFacturasUseCase,
	pdf *facturacion.PDFUseCase,
	clientes *catalogo.ClientesUseCase,
	productos *catalogo.ProductosUseCase,
	emisor EmisorConfig,
) *FacturaHandler {
	return &FacturaHandler{
		cargar:     cargar,
		guardar:    guardar,
		certificar: certificar,
		consulta:   consulta,
		pdf:        pdf,
		clientes:   clientes,
		productos:  productos,
		emisor:     emisor,
	}
}

// List lista las facturas.
// GET /api/facturas
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	facturas, err := h.consulta.Listar(c.Context())
	if err != nil {
		return respuestaError(c, err)
	}
	items := make([]dto.FacturaListItem, 0, len(facturas))
	for _, f := range facturas {
		items = append(items, dto.FacturaListItemDesde(f))
	}
	return c.JSON(items)
}

// GetByID carga una factura con sus líneas para el editor.
// GET /api/facturas/:id
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return cuerpoInvalido(c, "id inválido")
	}
	sesion, err := h.cargar.Cargar(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.FacturaDesdeSesion(sesion, h.certificar.EnCurso(id)))
}

// Create crea una factura nueva: arma el borrador con el estado enviado y lo
// guarda contra el backend en una sola llamada.
// POST /api/facturas
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.GuardarFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c, "")
	}
	if err := validate.Struct(in); err != nil {
		return cuerpoInvalido(c, err.Error())
	}

	sesion := facturacion.NuevaSesion(h.emisor.IDClienteEmisor, h.emisor.IDUsuario, h.emisor.Serie)
	facturacion.AplicarEdicion(sesion, dto.EdicionDesdeRequest(in))
	if err := h.guardar.Guardar(c.Context(), sesion); err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FacturaDesdeSesion(sesion, false))
}

// Update edita una factura existente: carga la línea base, reconcilia el
// estado enviado y ejecuta la secuencia de guardado.
// PUT /api/facturas/:id
func (h *FacturaHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return cuerpoInvalido(c, "id inválido")
	}
	var in dto.GuardarFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c, "")
	}
	if err := validate.Struct(in); err != nil {
		return cuerpoInvalido(c, err.Error())
	}

	sesion, err := h.cargar.Cargar(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	facturacion.AplicarEdicion(sesion, dto.EdicionDesdeRequest(in))
	if err := h.guardar.Guardar(c.Context(), sesion); err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.FacturaDesdeSesion(sesion, false))
}

// Certificar certifica la factura. Por defecto el flujo es síncrono y
// responde la factura certificada; con ?async=true se dispara en segundo
// plano y responde 202 con el estado "certificando".
// POST /api/facturas/:id/certificar
func (h *FacturaHandler) Certificar(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return cuerpoInvalido(c, "id inválido")
	}
	sesion, err := h.cargar.Cargar(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}

	if c.QueryBool("async") {
		if err := h.certificar.CertificarAsync(sesion); err != nil {
			return respuestaError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(dto.FacturaDesdeSesion(sesion, true))
	}

	if err := h.certificar.Certificar(c.Context(), sesion); err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.FacturaDesdeSesion(sesion, false))
}

// Anular reenvía la anulación al backend.
// PATCH /api/facturas/:id/anular
func (h *FacturaHandler) Anular(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return cuerpoInvalido(c, "id inválido")
	}
	if err := h.consulta.Anular(c.Context(), id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF genera la representación imprimible de la factura.
// GET /api/facturas/:id/pdf
func (h *FacturaHandler) PDF(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return cuerpoInvalido(c, "id inválido")
	}
	sesion, err := h.cargar.Cargar(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}

	factura := sesion.Factura()
	var cliente *entity.Cliente
	if factura.IDClienteReceptor != 0 {
		cliente, err = h.clientes.Obtener(c.Context(), factura.IDClienteReceptor)
		if err != nil {
			return respuestaError(c, err)
		}
	}

	ids := make([]int64, 0)
	for _, l := range sesion.Lineas() {
		if l.IDProducto != nil {
			ids = append(ids, *l.IDProducto)
		}
	}
	productos, err := h.productos.PorIDs(c.Context(), ids)
	if err != nil {
		return respuestaError(c, err)
	}

	pdfBytes, nombre, err := h.pdf.GenerarPDF(c.Context(), sesion, cliente, productos)
	if err != nil {
		return respuestaError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(pdfBytes)
}
