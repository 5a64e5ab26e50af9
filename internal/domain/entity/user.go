package entity

import "time"

// User representa un usuario del sistema. RoleID referencia a Role.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca el password plano
	RoleID       int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserWithRole es el resultado del join explícito users ⋈ roles.
type UserWithRole struct {
	User
	Role Role
}
