package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
)

// CrearClienteRequest body para POST /api/clientes.
type CrearClienteRequest struct {
	NIT       string `json:"nit" validate:"required,min=1,max=20"`
	Nombre    string `json:"nombre" validate:"required,min=1,max=150"`
	Direccion string `json:"direccion" validate:"omitempty,max=250"`
	Correo    string `json:"correo" validate:"omitempty,email"`
	Telefono  string `json:"telefono" validate:"omitempty,max=25"`
	Tipo      bool   `json:"tipo"`
	FotoURL   string `json:"foto_url" validate:"omitempty,url"`
}

// ActualizarClienteRequest body para PATCH /api/clientes/:id.
// Solo los campos presentes se envían al backend. El NIT no es editable.
type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=1,max=150"`
	Direccion *string `json:"direccion" validate:"omitempty,max=250"`
	Correo    *string `json:"correo" validate:"omitempty,email"`
	Telefono  *string `json:"telefono" validate:"omitempty,max=25"`
	Tipo      *bool   `json:"tipo"`
	FotoURL   *string `json:"foto_url" validate:"omitempty,url"`
	Activo    *bool   `json:"activo"`
}

// ClienteResponse cliente en respuestas de la API.
type ClienteResponse struct {
	ID        int64      `json:"id_cliente"`
	NIT       string     `json:"nit"`
	Nombre    string     `json:"nombre"`
	Direccion string     `json:"direccion,omitempty"`
	Correo    string     `json:"correo,omitempty"`
	Telefono  string     `json:"telefono,omitempty"`
	Tipo      bool       `json:"tipo"`
	FotoURL   string     `json:"foto_url,omitempty"`
	Activo    bool       `json:"activo"`
	CreadoEn  *time.Time `json:"creado_en,omitempty"`
}

// ClienteDesde mapea la entidad a su respuesta.
func ClienteDesde(c *entity.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:        c.ID,
		NIT:       c.NIT,
		Nombre:    c.Nombre,
		Direccion: c.Direccion,
		Correo:    c.Correo,
		Telefono:  c.Telefono,
		Tipo:      c.Tipo,
		FotoURL:   c.FotoURL,
		Activo:    c.Activo,
		CreadoEn:  c.CreadoEn,
	}
}

// ClienteEntidad arma la entidad desde el body de creación.
func (r CrearClienteRequest) ClienteEntidad() entity.Cliente {
	return entity.Cliente{
		NIT:       r.NIT,
		Nombre:    r.Nombre,
		Direccion: r.Direccion,
		Correo:    r.Correo,
		Telefono:  r.Telefono,
		Tipo:      r.Tipo,
		FotoURL:   r.FotoURL,
		Activo:    true,
	}
}

// Cambios traduce el body de actualización parcial al dominio.
func (r ActualizarClienteRequest) Cambios() repository.CambiosCliente {
	return repository.CambiosCliente{
		Nombre:    r.Nombre,
		Direccion: r.Direccion,
		Correo:    r.Correo,
		Telefono:  r.Telefono,
		Tipo:      r.Tipo,
		FotoURL:   r.FotoURL,
		Activo:    r.Activo,
	}
}

// FiltroClientesRequest parámetros de listado de clientes.
type FiltroClientesRequest struct {
	PageRequest
	Activo *bool `query:"activo"`
	Tipo   *bool `query:"tipo"`
}

// Filtro traduce los parámetros al filtro de dominio.
func (r FiltroClientesRequest) Filtro() repository.FiltroClientes {
	p := DefaultPage(r.PageRequest)
	return repository.FiltroClientes{
		Busqueda: p.Busqueda,
		Activo:   r.Activo,
		Tipo:     r.Tipo,
		Limite:   p.Limite,
		Offset:   p.Offset,
		OrdenPor: p.OrdenPor,
		Orden:    p.Orden,
	}
}

// GuardarProductoRequest body para POST /api/productos y PUT /api/productos/:id.
type GuardarProductoRequest struct {
	SKU            string          `json:"sku" validate:"required,min=1,max=40"`
	Nombre         string          `json:"nombre" validate:"required,min=1,max=150"`
	Descripcion    string          `json:"descripcion" validate:"required,min=1,max=250"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int64           `json:"cantidad" validate:"omitempty,gte=0"`
	Activo         *bool           `json:"activo"`
}

// ProductoEntidad arma la entidad desde el body.
func (r GuardarProductoRequest) ProductoEntidad() entity.Producto {
	p := entity.Producto{
		SKU:            r.SKU,
		Nombre:         r.Nombre,
		Descripcion:    r.Descripcion,
		PrecioUnitario: r.PrecioUnitario,
		Cantidad:       r.Cantidad,
		Activo:         true,
	}
	if r.Activo != nil {
		p.Activo = *r.Activo
	}
	return p
}

// ProductoResponse producto en respuestas de la API.
type ProductoResponse struct {
	ID             int64           `json:"id_producto"`
	SKU            string          `json:"sku"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int64           `json:"cantidad"`
	Activo         bool            `json:"activo"`
}

// ProductoDesde mapea la entidad a su respuesta.
func ProductoDesde(p *entity.Producto) ProductoResponse {
	return ProductoResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		PrecioUnitario: p.PrecioUnitario,
		Cantidad:       p.Cantidad,
		Activo:         p.Activo,
	}
}
