package entity

// Roles del sistema: enumeración fija con id entero estable y etiqueta legible.
// Datos de referencia estáticos, sembrados por migración, inmutables en runtime.
const (
	RoleUser  = 1
	RoleAdmin = 2
)

// Role referencia de rol tal como vive en la tabla roles.
type Role struct {
	ID          int
	Description string
}

// RoleDescription devuelve la etiqueta legible de un rol; "" si el id no es válido.
func RoleDescription(id int) string {
	switch id {
	case RoleUser:
		return "User"
	case RoleAdmin:
		return "Admin"
	default:
		return ""
	}
}
