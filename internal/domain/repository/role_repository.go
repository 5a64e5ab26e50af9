package repository

import (
	"context"

	"github.com/jhoicas/mis-libros/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Role, error)
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)
}
