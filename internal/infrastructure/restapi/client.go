// Package restapi implementa los puertos de repositorio contra la API REST
// del backend de facturación. Cada recurso (facturas, detalles, clientes,
// productos) tiene su adaptador; todos comparten el mismo Client.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/BILLYG1010/deportes-facturador/internal/domain"
)

// Client es el cliente HTTP compartido hacia el backend. Usa net/http de la
// stdlib con timeout propio; la autenticación es por api key en cabecera.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient construye el cliente del backend. baseURL sin barra final.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// problemDetails formato de error del backend: o bien title + errors por
// campo, o bien un message/detail plano. Se tolera cualquiera de los dos.
type problemDetails struct {
	Title   string              `json:"title"`
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
	Detail  string              `json:"detail"`
}

func (p *problemDetails) mensaje() string {
	if len(p.Errors) > 0 {
		campos := make([]string, 0, len(p.Errors))
		for campo := range p.Errors {
			campos = append(campos, campo)
		}
		sort.Strings(campos)
		partes := make([]string, 0, len(campos))
		for _, campo := range campos {
			partes = append(partes, campo+": "+strings.Join(p.Errors[campo], "; "))
		}
		if p.Title != "" {
			return p.Title + " (" + strings.Join(partes, ", ") + ")"
		}
		return strings.Join(partes, ", ")
	}
	switch {
	case p.Message != "":
		return p.Message
	case p.Detail != "":
		return p.Detail
	case p.Title != "":
		return p.Title
	}
	return ""
}

// do ejecuta una petición JSON contra el backend. body nil = sin cuerpo;
// out nil = se descarta la respuesta. Un 404 se traduce a domain.ErrNotFound
// y el resto de 4xx/5xx a un error con el mensaje que dio el backend.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("restapi: serializando cuerpo de %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("restapi: creando petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("restapi: %s %s: %v: %w", method, path, err, domain.ErrBackend)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return domain.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return errorDesdeRespuesta(method, path, resp)
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("restapi: decodificando respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

func errorDesdeRespuesta(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var pd problemDetails
	if err := json.Unmarshal(raw, &pd); err == nil {
		if msg := pd.mensaje(); msg != "" {
			return fmt.Errorf("restapi: %s %s: el backend respondió %d: %s: %w", method, path, resp.StatusCode, msg, domain.ErrBackend)
		}
	}
	return fmt.Errorf("restapi: %s %s: el backend respondió %d: %w", method, path, resp.StatusCode, domain.ErrBackend)
}
