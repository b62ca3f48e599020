package repository

import (
	"context"

	"github.com/jhoicas/starwars-api/internal/domain/entity"
)

// MovieRepository define el puerto de persistencia para Movie (DIP).
// GetByID devuelve (nil, nil) si no existe. CreateBatch es todo-o-nada:
// si falla, ninguna película del lote queda persistida.
type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	CreateBatch(ctx context.Context, movies []*entity.Movie) error
	GetByID(ctx context.Context, id int64) (*entity.Movie, error)
	GetAll(ctx context.Context) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
	// ExistingEpisodeIDs devuelve el set de episode_id ya almacenados (clave de dedup del sync).
	ExistingEpisodeIDs(ctx context.Context) (map[int]struct{}, error)
}
