package dto

// Representación transitoria del payload de swapi.tech. Solo existe durante una
// pasada de sincronización; nunca se persiste tal cual. Los campos relacionales
// (characters, planets, etc.) se ignoran.

// SwapiFilmListResponse respuesta de GET /api/films.
type SwapiFilmListResponse struct {
	Message string          `json:"message"`
	Result  []SwapiFilmItem `json:"result"`
}

// SwapiFilmItem un film del listado remoto.
type SwapiFilmItem struct {
	UID         string              `json:"uid"`
	ID          string              `json:"_id"`
	Description string              `json:"description"`
	Properties  SwapiFilmProperties `json:"properties"`
}

// SwapiFilmProperties campos descriptivos del film remoto.
type SwapiFilmProperties struct {
	Title        string `json:"title"`
	EpisodeID    int    `json:"episode_id"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"` // YYYY-MM-DD
}
