package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/starwars-api/internal/application/auth"
	"github.com/jhoicas/starwars-api/internal/application/usecase"
	"github.com/jhoicas/starwars-api/internal/infrastructure/postgres"
	"github.com/jhoicas/starwars-api/internal/infrastructure/swapi"
	httpRouter "github.com/jhoicas/starwars-api/internal/interfaces/http"
	"github.com/jhoicas/starwars-api/internal/interfaces/job"
	"github.com/jhoicas/starwars-api/pkg/config"
	"github.com/jhoicas/starwars-api/pkg/logger"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Ensamblado explícito: construcción top-level, sin contenedor DI.
	userRepo := postgres.NewUserRepository(pool)
	movieRepo := postgres.NewMovieRepository(pool)
	filmsClient := swapi.NewClient(cfg.SWAPI.FilmsURL, time.Duration(cfg.SWAPI.TimeoutSeconds)*time.Second)

	movieUC := usecase.NewMovieUseCase(movieRepo, filmsClient)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Star Wars API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:  authUC,
		MovieUC: movieUC,
		JWT: httpRouter.JWTSettings{
			Secret:   cfg.JWT.Secret,
			Issuer:   cfg.JWT.Issuer,
			Audience: cfg.JWT.Audience,
		},
	})

	// Sync periódico opcional del catálogo.
	var scheduler *cron.Cron
	if cfg.SWAPI.SyncCron != "" {
		scheduler = cron.New()
		if _, err := scheduler.AddJob(cfg.SWAPI.SyncCron, job.NewSyncMoviesJob(movieUC, log)); err != nil {
			log.Fatal().Err(err).Str("cron", cfg.SWAPI.SyncCron).Msg("programar sync periódico")
		}
		scheduler.Start()
		log.Info().Str("cron", cfg.SWAPI.SyncCron).Msg("sync periódico del catálogo programado")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
