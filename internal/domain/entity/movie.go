package entity

import "time"

// Movie es un elemento del catálogo. EpisodeID es la clave de negocio que usa
// la sincronización para deduplicar contra lo ya almacenado; ID lo asigna el storage.
type Movie struct {
	ID           int64
	EpisodeID    int
	Title        string
	OpeningCrawl string
	Director     string
	Producer     string
	ReleaseDate  time.Time
}
