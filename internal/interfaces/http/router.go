package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/starwars-api/internal/application/auth"
	"github.com/jhoicas/starwars-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC  *auth.AuthUseCase
	MovieUC *usecase.MovieUseCase
	JWT     JWTSettings
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT))

	// Movies (protegido)
	movies := protected.Group("/movies")
	movieHandler := NewMovieHandler(deps.MovieUC)
	movies.Post("/sync", movieHandler.Sync)
	movies.Get("/", movieHandler.List)
	movies.Post("/", movieHandler.Create)
	movies.Get("/:id", movieHandler.GetByID)
	movies.Put("/:id", movieHandler.Update)
	movies.Delete("/:id", movieHandler.Delete)
}
