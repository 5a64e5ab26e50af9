package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidReference = errors.New("referencia a un registro inexistente")
	ErrDuplicate        = errors.New("el usuario o el email ya están registrados")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrWrongPassword    = errors.New("la contraseña actual es incorrecta")
)
