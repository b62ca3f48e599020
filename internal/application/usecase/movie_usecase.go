package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/starwars-api/internal/application/dto"
	"github.com/jhoicas/starwars-api/internal/application/ports"
	"github.com/jhoicas/starwars-api/internal/domain"
	"github.com/jhoicas/starwars-api/internal/domain/entity"
	"github.com/jhoicas/starwars-api/internal/domain/repository"
)

const releaseDateLayout = "2006-01-02"

// MovieUseCase sincronización del catálogo remoto + CRUD sobre películas.
type MovieUseCase struct {
	repo  repository.MovieRepository
	films ports.FilmsProvider
}

// NewMovieUseCase construye el caso de uso.
func NewMovieUseCase(repo repository.MovieRepository, films ports.FilmsProvider) *MovieUseCase {
	return &MovieUseCase{repo: repo, films: films}
}

// Sync reconcilia el catálogo remoto contra el storage local y devuelve cuántas
// películas se insertaron. Idempotente: una segunda pasada con el mismo dataset
// remoto inserta cero.
//
//  1. Fetch del dataset completo; un fallo de transporte envuelve
//     ErrUpstreamUnavailable y no toca el storage.
//  2. Dataset vacío o ausente: no-op, 0 insertadas, 0 escrituras.
//  3. Carga del set de episode_id ya presentes.
//  4. Se filtran los remotos cuyo episode_id no esté en el set. Única regla de
//     dedup: un registro remoto cuyo contenido cambió pero conserva episode_id
//     se omite. Duplicados dentro del mismo lote remoto no se deduplican entre
//     sí, solo contra lo ya almacenado (comportamiento fijado por test).
//  5. Batch insert en una transacción: si falla, nada queda persistido.
func (uc *MovieUseCase) Sync(ctx context.Context) (int, error) {
	films, err := uc.films.FetchFilms(ctx)
	if err != nil {
		return 0, err
	}
	if len(films) == 0 {
		return 0, nil
	}

	existing, err := uc.repo.ExistingEpisodeIDs(ctx)
	if err != nil {
		return 0, err
	}

	var newMovies []*entity.Movie
	for _, f := range films {
		if _, ok := existing[f.Properties.EpisodeID]; ok {
			continue
		}
		movie, err := filmToMovie(f)
		if err != nil {
			return 0, err
		}
		newMovies = append(newMovies, movie)
	}

	if len(newMovies) == 0 {
		return 0, nil
	}
	if err := uc.repo.CreateBatch(ctx, newMovies); err != nil {
		return 0, err
	}
	return len(newMovies), nil
}

// List devuelve todas las películas en el orden del storage.
func (uc *MovieUseCase) List(ctx context.Context) ([]dto.MovieResponse, error) {
	movies, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, *toMovieResponse(m))
	}
	return out, nil
}

// GetByID obtiene una película; ErrNotFound si no existe.
func (uc *MovieUseCase) GetByID(ctx context.Context, id int64) (*dto.MovieResponse, error) {
	movie, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, domain.ErrNotFound
	}
	return toMovieResponse(movie), nil
}

// Create persiste una película creada directamente y la devuelve con su ID asignado.
func (uc *MovieUseCase) Create(ctx context.Context, in dto.CreateMovieRequest) (*dto.MovieResponse, error) {
	releaseDate, err := time.Parse(releaseDateLayout, in.ReleaseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	movie := &entity.Movie{
		EpisodeID:    in.EpisodeID,
		Title:        in.Title,
		OpeningCrawl: in.OpeningCrawl,
		Director:     in.Director,
		Producer:     in.Producer,
		ReleaseDate:  releaseDate,
	}
	if err := uc.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return toMovieResponse(movie), nil
}

// Update carga la película, sobrescribe todos los campos mutables y escribe de vuelta.
// ErrNotFound si no existe; en ese caso no hay escritura.
func (uc *MovieUseCase) Update(ctx context.Context, id int64, in dto.UpdateMovieRequest) (*dto.MovieResponse, error) {
	movie, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, domain.ErrNotFound
	}
	releaseDate, err := time.Parse(releaseDateLayout, in.ReleaseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	movie.EpisodeID = in.EpisodeID
	movie.Title = in.Title
	movie.OpeningCrawl = in.OpeningCrawl
	movie.Director = in.Director
	movie.Producer = in.Producer
	movie.ReleaseDate = releaseDate
	if err := uc.repo.Update(ctx, movie); err != nil {
		return nil, err
	}
	return toMovieResponse(movie), nil
}

// Delete elimina una película; ErrNotFound si no existe (sin escritura en ese caso).
func (uc *MovieUseCase) Delete(ctx context.Context, id int64) error {
	movie, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if movie == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func filmToMovie(f dto.SwapiFilmItem) (*entity.Movie, error) {
	releaseDate, err := time.Parse(releaseDateLayout, f.Properties.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("release_date inválido %q: %w", f.Properties.ReleaseDate, err)
	}
	return &entity.Movie{
		EpisodeID:    f.Properties.EpisodeID,
		Title:        f.Properties.Title,
		OpeningCrawl: f.Properties.OpeningCrawl,
		Director:     f.Properties.Director,
		Producer:     f.Properties.Producer,
		ReleaseDate:  releaseDate,
	}, nil
}

func toMovieResponse(m *entity.Movie) *dto.MovieResponse {
	return &dto.MovieResponse{
		ID:           m.ID,
		EpisodeID:    m.EpisodeID,
		Title:        m.Title,
		OpeningCrawl: m.OpeningCrawl,
		Director:     m.Director,
		Producer:     m.Producer,
		ReleaseDate:  m.ReleaseDate.Format(releaseDateLayout),
	}
}
