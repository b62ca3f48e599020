package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/starwars-api/internal/application/dto"
	"github.com/jhoicas/starwars-api/internal/domain"
	"github.com/jhoicas/starwars-api/internal/domain/entity"
	"github.com/jhoicas/starwars-api/internal/domain/repository"
	"github.com/jhoicas/starwars-api/pkg/jwt"
	"github.com/jhoicas/starwars-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
	Audience   string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: verifica unicidad de email, hashea el password y persiste
// con rol User por defecto. Devuelve ErrEmailAlreadyExists si el email ya existe;
// no escribe nada en ese caso. El éxito no lleva payload.
// Entre el chequeo y el insert hay una carrera; la constraint UNIQUE de email en el
// storage es la guardia autoritativa y el repo la traduce al mismo error.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	hash, salt, err := password.Hash(in.Password)
	if err != nil {
		return err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: hash,
		PasswordSalt: salt,
		RoleID:       entity.RoleUser,
		CreatedAt:    time.Now(),
	}
	return uc.userRepo.Create(ctx, user)
}

// Login verifica email/password y genera el JWT con los claims de identidad.
// Email desconocido -> ErrUserNotFound; password incorrecto -> ErrInvalidCredentials.
// Los dos fallos son distinguibles por el caller.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !password.Verify(in.Password, user.PasswordHash, user.PasswordSalt) {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		user.ID,
		user.UserName,
		user.Email,
		entity.RoleDescription(user.RoleID),
		uc.jwtCfg.Issuer,
		uc.jwtCfg.Audience,
		uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
