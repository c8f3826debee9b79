package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
)

// clienteWire cliente tal como viaja por el backend.
type clienteWire struct {
	IDCliente     int64      `json:"id_cliente"`
	NIT           string     `json:"nit"`
	Nombre        string     `json:"nombre"`
	Direccion     string     `json:"direccion"`
	Correo        string     `json:"correo"`
	Telefono      string     `json:"telefono"`
	Tipo          bool       `json:"tipo"`
	FotoURL       string     `json:"foto_url"`
	Activo        bool       `json:"activo"`
	CreadoEn      *time.Time `json:"creado_en,omitempty"`
	ActualizadoEn *time.Time `json:"actualizado_en,omitempty"`
}

func clienteDesdeWire(w clienteWire) *entity.Cliente {
	return &entity.Cliente{
		ID:            w.IDCliente,
		NIT:           w.NIT,
		Nombre:        w.Nombre,
		Direccion:     w.Direccion,
		Correo:        w.Correo,
		Telefono:      w.Telefono,
		Tipo:          w.Tipo,
		FotoURL:       w.FotoURL,
		Activo:        w.Activo,
		CreadoEn:      w.CreadoEn,
		ActualizadoEn: w.ActualizadoEn,
	}
}

// listaClientesWire envoltura items/meta del listado paginado.
type listaClientesWire struct {
	Items []clienteWire         `json:"items"`
	Meta  repository.MetaPagina `json:"meta"`
}

// ClienteRESTRepository implementa ClienteRepository contra /clientes.
type ClienteRESTRepository struct {
	client *Client
}

// NewClienteRESTRepository construye el adaptador de clientes.
func NewClienteRESTRepository(client *Client) repository.ClienteRepository {
	return &ClienteRESTRepository{client: client}
}

func (r *ClienteRESTRepository) Listar(ctx context.Context, filtro repository.FiltroClientes) ([]*entity.Cliente, *repository.MetaPagina, error) {
	query := url.Values{}
	if filtro.Busqueda != "" {
		query.Set("q", filtro.Busqueda)
	}
	if filtro.Activo != nil {
		query.Set("activo", strconv.FormatBool(*filtro.Activo))
	}
	if filtro.Tipo != nil {
		query.Set("tipo", strconv.FormatBool(*filtro.Tipo))
	}
	if filtro.Limite > 0 {
		query.Set("limit", strconv.Itoa(filtro.Limite))
	}
	if filtro.Offset > 0 {
		query.Set("offset", strconv.Itoa(filtro.Offset))
	}
	if filtro.OrdenPor != "" {
		query.Set("sort_by", filtro.OrdenPor)
	}
	if filtro.Orden != "" {
		query.Set("order", filtro.Orden)
	}

	var lista listaClientesWire
	if err := r.client.do(ctx, http.MethodGet, "/clientes", query, nil, &lista); err != nil {
		return nil, nil, err
	}
	clientes := make([]*entity.Cliente, 0, len(lista.Items))
	for _, w := range lista.Items {
		clientes = append(clientes, clienteDesdeWire(w))
	}
	return clientes, &lista.Meta, nil
}

func (r *ClienteRESTRepository) Obtener(ctx context.Context, id int64) (*entity.Cliente, error) {
	var w clienteWire
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/clientes/%d", id), nil, nil, &w); err != nil {
		return nil, err
	}
	return clienteDesdeWire(w), nil
}

func (r *ClienteRESTRepository) Crear(ctx context.Context, c *entity.Cliente) (*entity.Cliente, error) {
	body := clienteWire{
		NIT:       c.NIT,
		Nombre:    c.Nombre,
		Direccion: c.Direccion,
		Correo:    c.Correo,
		Telefono:  c.Telefono,
		Tipo:      c.Tipo,
		FotoURL:   c.FotoURL,
		Activo:    c.Activo,
	}
	var w clienteWire
	if err := r.client.do(ctx, http.MethodPost, "/clientes", nil, body, &w); err != nil {
		return nil, err
	}
	return clienteDesdeWire(w), nil
}

func (r *ClienteRESTRepository) ActualizarParcial(ctx context.Context, id int64, cambios repository.CambiosCliente) (*entity.Cliente, error) {
	// PATCH con solo los campos presentes; un mapa evita mandar ceros por
	// omisión de campos no tocados.
	body := map[string]any{}
	if cambios.Nombre != nil {
		body["nombre"] = *cambios.Nombre
	}
	if cambios.Direccion != nil {
		body["direccion"] = *cambios.Direccion
	}
	if cambios.Correo != nil {
		body["correo"] = *cambios.Correo
	}
	if cambios.Telefono != nil {
		body["telefono"] = *cambios.Telefono
	}
	if cambios.Tipo != nil {
		body["tipo"] = *cambios.Tipo
	}
	if cambios.FotoURL != nil {
		body["foto_url"] = *cambios.FotoURL
	}
	if cambios.Activo != nil {
		body["activo"] = *cambios.Activo
	}

	var w clienteWire
	if err := r.client.do(ctx, http.MethodPatch, fmt.Sprintf("/clientes/%d", id), nil, body, &w); err != nil {
		return nil, err
	}
	return clienteDesdeWire(w), nil
}
