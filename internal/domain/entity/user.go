package entity

import "time"

// User representa una identidad del sistema. Se crea una sola vez en el registro;
// PasswordHash y PasswordSalt siempre se escriben juntos, nunca por separado.
type User struct {
	ID           string // UUID generado en la creación, inmutable
	UserName     string
	Email        string // único entre todos los usuarios
	PasswordHash []byte
	PasswordSalt []byte
	RoleID       int
	CreatedAt    time.Time
}
