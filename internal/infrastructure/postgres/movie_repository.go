package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/starwars-api/internal/domain/entity"
	"github.com/jhoicas/starwars-api/internal/domain/repository"
)

var _ repository.MovieRepository = (*MovieRepo)(nil)

// MovieRepo implementación del puerto MovieRepository sobre PostgreSQL.
type MovieRepo struct {
	pool *pgxpool.Pool
}

// NewMovieRepository construye el adaptador de persistencia para películas.
func NewMovieRepository(pool *pgxpool.Pool) *MovieRepo {
	return &MovieRepo{pool: pool}
}

// Create persiste una película y asigna el ID generado por el storage.
func (r *MovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (episode_id, title, opening_crawl, director, producer, release_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		movie.EpisodeID, movie.Title, movie.OpeningCrawl, movie.Director,
		movie.Producer, movie.ReleaseDate,
	).Scan(&movie.ID)
	if err != nil {
		return fmt.Errorf("insert movie: %w", err)
	}
	return nil
}

// CreateBatch inserta el lote completo dentro de una transacción: todo o nada.
// Si el commit no llega, ninguna fila queda persistida.
func (r *MovieRepo) CreateBatch(ctx context.Context, movies []*entity.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO movies (episode_id, title, opening_crawl, director, producer, release_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	for _, movie := range movies {
		err := tx.QueryRow(ctx, query,
			movie.EpisodeID, movie.Title, movie.OpeningCrawl, movie.Director,
			movie.Producer, movie.ReleaseDate,
		).Scan(&movie.ID)
		if err != nil {
			return fmt.Errorf("insert movie batch: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una película por ID; (nil, nil) si no existe.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, episode_id, title, opening_crawl, director, producer, release_date
		FROM movies WHERE id = $1`
	var m entity.Movie
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.EpisodeID, &m.Title, &m.OpeningCrawl, &m.Director,
		&m.Producer, &m.ReleaseDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	return &m, nil
}

// GetAll lista todas las películas en el orden del storage (id ascendente).
func (r *MovieRepo) GetAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, episode_id, title, opening_crawl, director, producer, release_date
		FROM movies ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movie
	for rows.Next() {
		var m entity.Movie
		if err := rows.Scan(&m.ID, &m.EpisodeID, &m.Title, &m.OpeningCrawl, &m.Director, &m.Producer, &m.ReleaseDate); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update sobrescribe todos los campos mutables de la película.
func (r *MovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies SET episode_id = $2, title = $3, opening_crawl = $4, director = $5, producer = $6, release_date = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		movie.ID, movie.EpisodeID, movie.Title, movie.OpeningCrawl,
		movie.Director, movie.Producer, movie.ReleaseDate,
	)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

// Delete elimina una película por ID.
func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}

// ExistingEpisodeIDs carga el set de episode_id presentes (clave de dedup del sync).
func (r *MovieRepo) ExistingEpisodeIDs(ctx context.Context) (map[int]struct{}, error) {
	rows, err := r.pool.Query(ctx, `SELECT episode_id FROM movies`)
	if err != nil {
		return nil, fmt.Errorf("list episode ids: %w", err)
	}
	defer rows.Close()
	existing := make(map[int]struct{})
	for rows.Next() {
		var episodeID int
		if err := rows.Scan(&episodeID); err != nil {
			return nil, fmt.Errorf("scan episode id: %w", err)
		}
		existing[episodeID] = struct{}{}
	}
	return existing, rows.Err()
}
