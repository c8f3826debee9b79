package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BILLYG1010/deportes-facturador/internal/application/catalogo"
	"github.com/BILLYG1010/deportes-facturador/internal/application/dto"
)

// ClienteHandler maneja el catálogo de clientes.
type ClienteHandler struct {
	uc *catalogo.ClientesUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *catalogo.ClientesUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// List lista clientes con búsqueda, filtros y paginación.
// GET /api/clientes
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	var in dto.FiltroClientesRequest
	if err := c.QueryParser(&in); err != nil {
		return cuerpoInvalido(c, "parámetros inválidos")
	}
	if err := validate.Struct(in); err != nil {
		return cuerpoInvalido(c, err.Error())
	}

	clientes, meta, err := h.uc.Listar(c.Context(), in.Filtro())
	if err != nil {
		return respuestaError(c, err)
	}
	resp := dto.PageResponse[dto.ClienteResponse]{Items: []dto.ClienteResponse{}}
	for _, cl := range clientes {
		resp.Items = append(resp.Items, dto.ClienteDesde(cl))
	}
	if meta != nil {
		resp.Meta = dto.PageMeta{Total: meta.Total, Limite: meta.Limite, Offset: meta.Offset}
	}
	return c.JSON(resp)
}

// GetByID obtiene un cliente.
// GET /api/clientes/:id
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return cuerpoInvalido(c, "id inválido")
	}
	cliente, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ClienteDesde(cliente))
}

// Create registra un cliente.
// POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c, "")
	}
	if err := validate.Struct(in); err != nil {
		return cuerpoInvalido(c, err.Error())
	}
	cliente := in.ClienteEntidad()
	creado, err := h.uc.Crear(c.Context(), &cliente)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ClienteDesde(creado))
}

// Update actualiza parcialmente un cliente.
// PATCH /api/clientes/:id
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return cuerpoInvalido(c, "id inválido")
	}
	var in dto.ActualizarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c, "")
	}
	if err := validate.Struct(in); err != nil {
		return cuerpoInvalido(c, err.Error())
	}
	actualizado, err := h.uc.ActualizarParcial(c.Context(), id, in.Cambios())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ClienteDesde(actualizado))
}
