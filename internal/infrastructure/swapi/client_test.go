package swapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/starwars-api/internal/domain"
	"github.com/jhoicas/starwars-api/internal/infrastructure/swapi"
)

// Payload recortado con la forma real de swapi.tech (campos relacionales fuera).
const filmsPayload = `{
	"message": "ok",
	"result": [
		{
			"uid": "1",
			"_id": "5f63a117cf50d100047f9770",
			"description": "A Star Wars Film",
			"properties": {
				"title": "A New Hope",
				"episode_id": 4,
				"opening_crawl": "It is a period of civil war...",
				"director": "George Lucas",
				"producer": "Gary Kurtz, Rick McCallum",
				"release_date": "1977-05-25",
				"characters": ["https://www.swapi.tech/api/people/1"]
			}
		},
		{
			"uid": "2",
			"_id": "5f63a117cf50d100047f9771",
			"description": "A Star Wars Film",
			"properties": {
				"title": "The Empire Strikes Back",
				"episode_id": 5,
				"opening_crawl": "It is a dark time for the Rebellion...",
				"director": "Irvin Kershner",
				"producer": "Gary Kurtz, Rick McCallum",
				"release_date": "1980-05-21"
			}
		}
	]
}`

// Caso 1: respuesta 200 bien formada se decodifica con los campos descriptivos.
func TestFetchFilms_Exitoso(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(filmsPayload))
	}))
	defer srv.Close()

	client := swapi.NewClient(srv.URL, 5*time.Second)
	films, err := client.FetchFilms(context.Background())
	require.NoError(t, err)
	require.Len(t, films, 2)

	assert.Equal(t, "1", films[0].UID)
	assert.Equal(t, 4, films[0].Properties.EpisodeID)
	assert.Equal(t, "A New Hope", films[0].Properties.Title)
	assert.Equal(t, "George Lucas", films[0].Properties.Director)
	assert.Equal(t, "1977-05-25", films[0].Properties.ReleaseDate)
	assert.Equal(t, 5, films[1].Properties.EpisodeID)
}

// Caso 2: status no exitoso -> error que envuelve ErrUpstreamUnavailable.
func TestFetchFilms_StatusNoExitoso(t *testing.T) {
	for name, status := range map[string]int{
		"500": http.StatusInternalServerError,
		"404": http.StatusNotFound,
		"429": http.StatusTooManyRequests,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer srv.Close()

			client := swapi.NewClient(srv.URL, 5*time.Second)
			_, err := client.FetchFilms(context.Background())
			require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		})
	}
}

// Caso 3: servidor inalcanzable -> ErrUpstreamUnavailable.
func TestFetchFilms_ServidorCaido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito

	client := swapi.NewClient(srv.URL, time.Second)
	_, err := client.FetchFilms(context.Background())
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

// Caso 4: body no decodificable -> ErrUpstreamUnavailable.
func TestFetchFilms_BodyInvalido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>esto no es JSON</html>"))
	}))
	defer srv.Close()

	client := swapi.NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchFilms(context.Background())
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

// Caso 5: la cancelación del context abandona la petición en vuelo.
func TestFetchFilms_ContextCancelado(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	ctx, cancel := context.WithCancel(context.Background())
	client := swapi.NewClient(srv.URL, 30*time.Second)

	done := make(chan error, 1)
	go func() {
		_, err := client.FetchFilms(ctx)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("la cancelación no abandonó la petición")
	}
}
