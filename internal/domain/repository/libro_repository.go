package repository

import (
	"context"

	"github.com/jhoicas/mis-libros/internal/domain/entity"
)

// LibroRepository define el puerto de persistencia para Libro.
// GetByID devuelve (nil, nil) si no existe; Update y Delete devuelven
// domain.ErrNotFound cuando no afectan ninguna fila.
type LibroRepository interface {
	Create(ctx context.Context, libro *entity.Libro) error
	GetByID(ctx context.Context, id int64) (*entity.Libro, error)
	List(ctx context.Context) ([]*entity.Libro, error)
	ListByPropietario(ctx context.Context, propietarioID int64) ([]*entity.Libro, error)
	Update(ctx context.Context, libro *entity.Libro) error
	Delete(ctx context.Context, id int64) error
}

// LibroTxRunner ejecuta fn dentro de una transacción con un LibroRepository atado a ella.
type LibroTxRunner interface {
	RunLibros(ctx context.Context, fn func(libros LibroRepository) error) error
}
