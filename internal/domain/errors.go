package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrOperacionEnCurso = errors.New("hay otra operación en curso sobre la factura")
	// ErrBackend marca fallos del backend de persistencia (red o respuesta de error).
	ErrBackend = errors.New("error del backend de facturación")
)

// ErrorValidacion es un error de validación local con mensaje para el usuario.
// Se detecta antes de cualquier llamada de red y se muestra tal cual en el
// banner de error del editor.
type ErrorValidacion struct {
	Mensaje string
}

func (e *ErrorValidacion) Error() string { return e.Mensaje }

// NuevaValidacion construye un error de validación con el mensaje dado.
func NuevaValidacion(mensaje string) error {
	return &ErrorValidacion{Mensaje: mensaje}
}

// EsValidacion indica si err es (o envuelve) un error de validación local.
func EsValidacion(err error) bool {
	var ev *ErrorValidacion
	return errors.As(err, &ev)
}
