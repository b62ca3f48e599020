package dto

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT autocontenido.
type LoginResponse struct {
	Token string `json:"token"`
}
