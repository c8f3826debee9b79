package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BILLYG1010/deportes-facturador/internal/domain"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/entity"
	"github.com/BILLYG1010/deportes-facturador/internal/domain/repository"
)

func int64Ptr(v int64) *int64 { return &v }

func TestClientEnviaAPIKeyYAccept(t *testing.T) {
	var capturada *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturada = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	repo := NewProductoRESTRepository(NewClient(srv.URL, "clave-secreta", time.Second))
	_, err := repo.Listar(context.Background())
	require.NoError(t, err)

	require.NotNil(t, capturada)
	assert.Equal(t, "clave-secreta", capturada.Header.Get("x-api-key"))
	assert.Equal(t, "application/json", capturada.Header.Get("Accept"))
	assert.Equal(t, "/productos", capturada.URL.Path)
}

func TestClient404EsErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	repo := NewFacturaRESTRepository(NewClient(srv.URL, "", time.Second))
	_, err := repo.Obtener(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientParseaProblemDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"title":"Datos inválidos","errors":{"nit":["formato inválido"]}}`))
	}))
	defer srv.Close()

	repo := NewClienteRESTRepository(NewClient(srv.URL, "", time.Second))
	_, err := repo.Crear(context.Background(), &entity.Cliente{NIT: "x", Nombre: "y"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackend)
	assert.Contains(t, err.Error(), "Datos inválidos")
	assert.Contains(t, err.Error(), "nit: formato inválido")
}

func TestClientParseaMessagePlano(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"la factura ya está anulada"}`))
	}))
	defer srv.Close()

	repo := NewFacturaRESTRepository(NewClient(srv.URL, "", time.Second))
	err := repo.Anular(context.Background(), 7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "la factura ya está anulada")
}

func TestClient204SinCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/detalles-factura/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	repo := NewDetalleRESTRepository(NewClient(srv.URL, "", time.Second))
	assert.NoError(t, repo.Eliminar(context.Background(), 42))
}

func TestFacturaCrearIdaYVuelta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/facturas", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "A", body["serie"])
		assert.Equal(t, "TEMP-1-1", body["numero_autorizacion"])
		_, tieneCorrelativo := body["correlativo"]
		assert.False(t, tieneCorrelativo, "el correlativo lo asigna el backend")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id_factura":7,"serie":"A","correlativo":15,"uuid":"abc-123","estado":0,
			"numero_autorizacion":"TEMP-1-1","subtotal":"51","total":"51","fecha_emision":"2026-09-01T10:00:00Z"}`))
	}))
	defer srv.Close()

	repo := NewFacturaRESTRepository(NewClient(srv.URL, "", time.Second))
	creada, err := repo.Crear(context.Background(), &entity.Factura{
		Serie:              "A",
		NumeroAutorizacion: "TEMP-1-1",
		Subtotal:           decimal.RequireFromString("51"),
		Total:              decimal.RequireFromString("51"),
	})

	require.NoError(t, err)
	require.NotNil(t, creada.ID)
	assert.Equal(t, int64(7), *creada.ID)
	require.NotNil(t, creada.Correlativo)
	assert.Equal(t, int64(15), *creada.Correlativo)
	require.NotNil(t, creada.UUID)
	assert.Equal(t, "abc-123", *creada.UUID)
	assert.NotNil(t, creada.FechaEmision)
}

func TestClientesListarEnviaFiltros(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "juan", q.Get("q"))
		assert.Equal(t, "true", q.Get("activo"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "20", q.Get("offset"))
		assert.Equal(t, "nombre", q.Get("sort_by"))
		assert.Equal(t, "desc", q.Get("order"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id_cliente":1,"nit":"1234567-8","nombre":"Juan","activo":true}],
			"meta":{"total":1,"limit":10,"offset":20}}`))
	}))
	defer srv.Close()

	repo := NewClienteRESTRepository(NewClient(srv.URL, "", time.Second))
	activo := true
	clientes, meta, err := repo.Listar(context.Background(), repository.FiltroClientes{
		Busqueda: "juan",
		Activo:   &activo,
		Limite:   10,
		Offset:   20,
		OrdenPor: "nombre",
		Orden:    "desc",
	})

	require.NoError(t, err)
	require.Len(t, clientes, 1)
	assert.Equal(t, "Juan", clientes[0].Nombre)
	require.NotNil(t, meta)
	assert.Equal(t, 1, meta.Total)
}

func TestDetallesListarPorFactura(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/detalles-factura/factura/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id_detalle":42,"id_factura":7,"descripcion":"Balón",
			"cantidad":"2","precio_unitario":"25.50","descuento":"0","subtotal":"51"}]`))
	}))
	defer srv.Close()

	repo := NewDetalleRESTRepository(NewClient(srv.URL, "", time.Second))
	detalles, err := repo.ListarPorFactura(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, detalles, 1)
	assert.Equal(t, int64Ptr(int64(42)), detalles[0].IDDetalle)
	assert.True(t, detalles[0].Cantidad.Equal(decimal.NewFromInt(2)))
}
