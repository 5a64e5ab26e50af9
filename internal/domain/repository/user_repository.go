package repository

import (
	"context"
	"time"

	"github.com/jhoicas/mis-libros/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string, updatedAt time.Time) error
	// ListWithRoles devuelve todos los usuarios con su rol (join explícito).
	ListWithRoles(ctx context.Context) ([]*entity.UserWithRole, error)
}
