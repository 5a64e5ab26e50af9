package entity

// Identity es el usuario autenticado de la petición en curso. Se pasa
// explícitamente a cada caso de uso en lugar de leerse de un estado global.
type Identity struct {
	UserID   int64
	Username string
	Role     RoleKind
	RoleName string
}
