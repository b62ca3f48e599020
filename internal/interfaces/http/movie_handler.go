package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/starwars-api/internal/application/dto"
	"github.com/jhoicas/starwars-api/internal/application/usecase"
	"github.com/jhoicas/starwars-api/internal/domain"
)

// MovieHandler maneja las peticiones HTTP del catálogo (protegido).
type MovieHandler struct {
	uc *usecase.MovieUseCase
}

// NewMovieHandler construye el handler.
func NewMovieHandler(uc *usecase.MovieUseCase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

// Sync godoc
// @Summary      Sincronizar catálogo desde swapi.tech
// @Tags         movies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/movies/sync [post]
func (h *MovieHandler) Sync(c *fiber.Ctx) error {
	inserted, err := h.uc.Sync(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "catálogo remoto no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SyncResponse{Inserted: inserted})
}

// List godoc
// @Summary      Listar películas
// @Tags         movies
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovieResponse
// @Router       /api/movies [get]
func (h *MovieHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener película por ID
// @Tags         movies
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la película"
// @Success      200  {object}  dto.MovieResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movies/{id} [get]
func (h *MovieHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "película no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear película
// @Tags         movies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovieRequest  true  "Datos de la película"
// @Success      201   {object}  dto.MovieResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movies [post]
func (h *MovieHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovieRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "release_date inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar película
// @Tags         movies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la película"
// @Param        body  body  dto.UpdateMovieRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MovieResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movies/{id} [put]
func (h *MovieHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in dto.UpdateMovieRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "película no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "release_date inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar película
// @Tags         movies
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la película"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movies/{id} [delete]
func (h *MovieHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "película no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
