package job

import (
	"context"
	"time"

	"github.com/jhoicas/starwars-api/internal/application/usecase"
	"github.com/jhoicas/starwars-api/pkg/logger"
)

// SyncMoviesJob sincroniza el catálogo periódicamente cuando SWAPI_SYNC_CRON está
// configurado. Implementa cron.Job; el endpoint manual sigue siendo el camino principal.
type SyncMoviesJob struct {
	uc  *usecase.MovieUseCase
	log *logger.Logger
}

// NewSyncMoviesJob construye el job.
func NewSyncMoviesJob(uc *usecase.MovieUseCase, log *logger.Logger) *SyncMoviesJob {
	return &SyncMoviesJob{uc: uc, log: log}
}

// Run ejecuta una pasada de sincronización con timeout propio.
func (j *SyncMoviesJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	inserted, err := j.uc.Sync(ctx)
	if err != nil {
		j.log.Warn().Err(err).Msg("sync periódico del catálogo falló")
		return
	}
	j.log.Info().Int("inserted", inserted).Msg("sync periódico del catálogo completado")
}
