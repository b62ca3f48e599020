package ports

import (
	"context"

	"github.com/jhoicas/starwars-api/internal/application/dto"
)

// FilmsProvider es el puerto hacia el catálogo remoto de películas.
// FetchFilms trae el dataset completo en un solo lote (sin paginación).
// Todo fallo de transporte o status no exitoso retorna un error que envuelve
// domain.ErrUpstreamUnavailable; el caller no reintenta.
type FilmsProvider interface {
	FetchFilms(ctx context.Context) ([]dto.SwapiFilmItem, error)
}
