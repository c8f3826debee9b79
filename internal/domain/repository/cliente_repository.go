package repository

import (
	"context"

	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
)

// FiltroClientes parámetros de búsqueda y paginación para listar clientes.
type FiltroClientes struct {
	Busqueda string // q
	Activo   *bool
	Tipo     *bool // true = EMPRESA, false = INDIVIDUO
	Limite   int
	Offset   int
	OrdenPor string // id_cliente | nombre | creado_en | actualizado_en
	Orden    string // asc | desc
}

// MetaPagina metadatos de paginación que devuelve el backend junto a la lista.
type MetaPagina struct {
	Total  int `json:"total"`
	Limite int `json:"limit"`
	Offset int `json:"offset"`
}

// CambiosCliente es una actualización parcial: solo los campos no nil viajan
// al backend (PATCH). Un cambio vacío es un error de validación, no un no-op.
type CambiosCliente struct {
	Nombre    *string
	Direccion *string
	Correo    *string
	Telefono  *string
	Tipo      *bool
	FotoURL   *string
	Activo    *bool
}

// Vacio indica si el cambio no contiene ningún campo.
func (c CambiosCliente) Vacio() bool {
	return c.Nombre == nil && c.Direccion == nil && c.Correo == nil &&
		c.Telefono == nil && c.Tipo == nil && c.FotoURL == nil && c.Activo == nil
}

// ClienteRepository define el puerto hacia el endpoint /clientes del backend.
type ClienteRepository interface {
	Listar(ctx context.Context, filtro FiltroClientes) ([]*entity.Cliente, *MetaPagina, error)
	Obtener(ctx context.Context, id int64) (*entity.Cliente, error)
	Crear(ctx context.Context, c *entity.Cliente) (*entity.Cliente, error)
	ActualizarParcial(ctx context.Context, id int64, cambios CambiosCliente) (*entity.Cliente, error)
}
