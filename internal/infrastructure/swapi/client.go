package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/starwars-api/internal/application/dto"
	"github.com/jhoicas/starwars-api/internal/application/ports"
	"github.com/jhoicas/starwars-api/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa FilmsProvider.
var _ ports.FilmsProvider = (*Client)(nil)

// Client adaptador HTTP hacia swapi.tech. Usa net/http de la librería estándar;
// el timeout del cliente acota la llamada y el context permite cancelarla antes.
type Client struct {
	filmsURL   string
	httpClient *http.Client
}

// NewClient construye el adaptador. timeout acota toda la petición (conexión + body).
func NewClient(filmsURL string, timeout time.Duration) *Client {
	return &Client{
		filmsURL: filmsURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchFilms trae el listado completo de films en un solo lote.
// Cualquier fallo de transporte, status no exitoso o body indecodificable
// envuelve domain.ErrUpstreamUnavailable; nunca se reintenta aquí.
func (c *Client) FetchFilms(ctx context.Context) ([]dto.SwapiFilmItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.filmsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: leer body: %v", domain.ErrUpstreamUnavailable, err)
	}

	var out dto.SwapiFilmListResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decodificar respuesta: %v", domain.ErrUpstreamUnavailable, err)
	}
	return out.Result, nil
}
