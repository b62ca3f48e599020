package repository

import (
	"context"

	"github.com/jhoicas/starwars-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// GetByEmail devuelve (nil, nil) si no existe; Create retorna
// domain.ErrEmailAlreadyExists ante violación de unicidad de email.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
