package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrUpstreamUnavailable = errors.New("catálogo remoto no disponible")
	ErrInvalidInput        = errors.New("entrada inválida")
)
