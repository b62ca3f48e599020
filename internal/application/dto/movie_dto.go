package dto

// CreateMovieRequest entrada para crear una película directamente (sin sync).
// ReleaseDate viaja como "YYYY-MM-DD" y se parsea en el use case.
type CreateMovieRequest struct {
	EpisodeID    int    `json:"episode_id" validate:"required"`
	Title        string `json:"title" validate:"required,min=1,max=300"`
	OpeningCrawl string `json:"opening_crawl" validate:"omitempty"`
	Director     string `json:"director" validate:"required,min=1,max=200"`
	Producer     string `json:"producer" validate:"omitempty,max=300"`
	ReleaseDate  string `json:"release_date" validate:"required,datetime=2006-01-02"`
}

// UpdateMovieRequest entrada para actualizar; sobrescribe todos los campos mutables.
type UpdateMovieRequest struct {
	EpisodeID    int    `json:"episode_id" validate:"required"`
	Title        string `json:"title" validate:"required,min=1,max=300"`
	OpeningCrawl string `json:"opening_crawl" validate:"omitempty"`
	Director     string `json:"director" validate:"required,min=1,max=200"`
	Producer     string `json:"producer" validate:"omitempty,max=300"`
	ReleaseDate  string `json:"release_date" validate:"required,datetime=2006-01-02"`
}

// MovieResponse salida de una película del catálogo.
type MovieResponse struct {
	ID           int64  `json:"id"`
	EpisodeID    int    `json:"episode_id"`
	Title        string `json:"title"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"` // YYYY-MM-DD
}

// SyncResponse resultado de una pasada de sincronización.
type SyncResponse struct {
	Inserted int `json:"inserted"`
}
