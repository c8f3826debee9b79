package http

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/BILLYG1010/deportes-facturador/internal/application/dto"
	"github.com/BILLYG1010/deportes-facturador/internal/domain"
)

// validate instancia compartida del validador de shape de los bodies.
// Las reglas de negocio (mensajes al usuario) viven en el dominio; aquí solo
// se valida la forma (rangos, email, oneof).
var validate = validator.New()

// idParam lee y convierte el parámetro :id de la ruta.
func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return id, nil
}

// respuestaError traduce errores de dominio e infraestructura a HTTP.
func respuestaError(c *fiber.Ctx, err error) error {
	var ev *domain.ErrorValidacion
	switch {
	case errors.As(err, &ev):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: ev.Mensaje})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrOperacionEnCurso):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_PROGRESS", Message: "hay otra operación en curso sobre la factura"})
	case errors.Is(err, domain.ErrBackend):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// cuerpoInvalido respuesta estándar para bodies que no parsean o no validan.
func cuerpoInvalido(c *fiber.Ctx, detalle string) error {
	if detalle == "" {
		detalle = "cuerpo inválido"
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: detalle})
}
