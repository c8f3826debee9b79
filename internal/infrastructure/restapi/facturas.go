package restapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
)

// facturaWire cabecera de factura tal como viaja por el backend.
type facturaWire struct {
	IDFactura           *int64           `json:"id_factura,omitempty"`
	IDClienteEmisor     int64            `json:"id_cliente_emisor"`
	IDClienteReceptor   int64            `json:"id_cliente_receptor"`
	IDUsuario           int64            `json:"id_usuario"`
	Serie               string           `json:"serie"`
	Correlativo         *int64           `json:"correlativo,omitempty"`
	Estado              int              `json:"estado"`
	Observaciones       string           `json:"observaciones"`
	Subtotal            decimal.Decimal  `json:"subtotal"`
	Total               decimal.Decimal  `json:"total"`
	UUID                *string          `json:"uuid,omitempty"`
	FechaEmision        *time.Time       `json:"fecha_emision,omitempty"`
	NumeroAutorizacion  string           `json:"numero_autorizacion"`
	FechaCertificacion  *time.Time       `json:"fecha_certificacion,omitempty"`
	CodigoCertificacion string           `json:"codigo_certificacion,omitempty"`
	CreadoEn            *time.Time       `json:"creado_en,omitempty"`
	ActualizadoEn       *time.Time       `json:"actualizado_en,omitempty"`
}

func facturaAWire(f *entity.Factura) facturaWire {
	return facturaWire{
		IDFactura:           f.ID,
		IDClienteEmisor:     f.IDClienteEmisor,
		IDClienteReceptor:   f.IDClienteReceptor,
		IDUsuario:           f.IDUsuario,
		Serie:               f.Serie,
		Correlativo:         f.Correlativo,
		Estado:              f.Estado,
		Observaciones:       f.Observaciones,
		Subtotal:            f.Subtotal,
		Total:               f.Total,
		UUID:                f.UUID,
		FechaEmision:        f.FechaEmision,
		NumeroAutorizacion:  f.NumeroAutorizacion,
		FechaCertificacion:  f.FechaCertificacion,
		CodigoCertificacion: f.CodigoCertificacion,
	}
}

func facturaDesdeWire(w facturaWire) *entity.Factura {
	return &entity.Factura{
		ID:                  w.IDFactura,
		IDClienteEmisor:     w.IDClienteEmisor,
		IDClienteReceptor:   w.IDClienteReceptor,
		IDUsuario:           w.IDUsuario,
		Serie:               w.Serie,
		Correlativo:         w.Correlativo,
		Estado:              w.Estado,
		Observaciones:       w.Observaciones,
		Subtotal:            w.Subtotal,
		Total:               w.Total,
		UUID:                w.UUID,
		FechaEmision:        w.FechaEmision,
		NumeroAutorizacion:  w.NumeroAutorizacion,
		FechaCertificacion:  w.FechaCertificacion,
		CodigoCertificacion: w.CodigoCertificacion,
		CreadoEn:            w.CreadoEn,
		ActualizadoEn:       w.ActualizadoEn,
	}
}

// FacturaRESTRepository implementa FacturaRepository contra /facturas.
type FacturaRESTRepository struct {
	client *Client
}

// NewFacturaRESTRepository construye el adaptador de cabeceras de factura.
func NewFacturaRESTRepository(client *Client) repository.FacturaRepository {
	return &FacturaRESTRepository{client: client}
}

func (r *FacturaRESTRepository) Listar(ctx context.Context) ([]*entity.Factura, error) {
	var wires []facturaWire
	if err := r.client.do(ctx, http.MethodGet, "/facturas", nil, nil, &wires); err != nil {
		return nil, err
	}
	facturas := make([]*entity.Factura, 0, len(wires))
	for _, w := range wires {
		facturas = append(facturas, facturaDesdeWire(w))
	}
	return facturas, nil
}

func (r *FacturaRESTRepository) Obtener(ctx context.Context, id int64) (*entity.Factura, error) {
	var w facturaWire
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/facturas/%d", id), nil, nil, &w); err != nil {
		return nil, err
	}
	return facturaDesdeWire(w), nil
}

func (r *FacturaRESTRepository) Crear(ctx context.Context, f *entity.Factura) (*entity.Factura, error) {
	var w facturaWire
	if err := r.client.do(ctx, http.MethodPost, "/facturas", nil, facturaAWire(f), &w); err != nil {
		return nil, err
	}
	return facturaDesdeWire(w), nil
}

func (r *FacturaRESTRepository) Actualizar(ctx context.Context, id int64, f *entity.Factura) (*entity.Factura, error) {
	var w facturaWire
	if err := r.client.do(ctx, http.MethodPut, fmt.Sprintf("/facturas/%d", id), nil, facturaAWire(f), &w); err != nil {
		return nil, err
	}
	return facturaDesdeWire(w), nil
}

func (r *FacturaRESTRepository) Anular(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodPatch, fmt.Sprintf("/facturas/%d/anular", id), nil, nil, nil)
}
