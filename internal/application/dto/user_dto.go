package dto

import (
	"strings"
	"time"
)

// RegisterRequest entrada del formulario de registro.
// Role se valida contra los roles configurados en el caso de uso.
type RegisterRequest struct {
	Username        string `form:"username" json:"username" validate:"required,max=64"`
	Email           string `form:"email" json:"email" validate:"required,email,max=120"`
	Password        string `form:"password" json:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `form:"role" json:"role" validate:"required"`
}

// Normalize recorta espacios de los campos de texto (no de los passwords).
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.TrimSpace(r.Role)
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

// ChangePasswordRequest entrada del formulario de cambio de contraseña.
type ChangePasswordRequest struct {
	OldPassword     string `form:"old_password" validate:"required"`
	NewPassword     string `form:"new_password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token de sesión firmado + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
