package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BILLYG1010/deportes-facturador/internal/application/catalogo"
	"github.com/BILLYG1010/deportes-facturador/internal/application/dto"
)

// ProductoHandler maneja el catálogo de productos.
type ProductoHandler struct {
	uc *catalogo.ProductosUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *catalogo.ProductosUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List lista los productos; ?q= filtra por nombre, SKU o descripción.
// GET /api/productos
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	productos, err := h.uc.Listar(c.Context(), c.Query("q"))
	if err != nil {
		return respuestaError(c, err)
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, dto.ProductoDesde(p))
	}
	return c.JSON(items)
}

// GetByID obtiene un producto.
// GET /api/productos/:id
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return cuerpoInvalido(c, "id inválido")
	}
	producto, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ProductoDesde(producto))
}

// Create registra un producto.
// POST /api/productos
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.GuardarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c, "")
	}
	if err := validate.Struct(in); err != nil {
		return cuerpoInvalido(c, err.Error())
	}
	producto := in.ProductoEntidad()
	creado, err := h.uc.Guardar(c.Context(), nil, &producto)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductoDesde(creado))
}

// Update reemplaza un producto.
// PUT /api/productos/:id
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return cuerpoInvalido(c, "id inválido")
	}
	var in dto.GuardarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c, "")
	}
	if err := validate.Struct(in); err != nil {
		return cuerpoInvalido(c, err.Error())
	}
	producto := in.ProductoEntidad()
	actualizado, err := h.uc.Guardar(c.Context(), &id, &producto)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ProductoDesde(actualizado))
}

// Delete elimina un producto.
// DELETE /api/productos/:id
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return cuerpoInvalido(c, "id inválido")
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
