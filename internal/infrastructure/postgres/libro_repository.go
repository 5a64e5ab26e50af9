package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mis-libros/internal/domain"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
	"github.com/jhoicas/mis-libros/internal/domain/repository"
)

var _ repository.LibroRepository = (*LibroRepo)(nil)

const libroColumns = `id, titulo, autor, anio_publicacion, genero, url, notas, etiquetas, propietario_id, created_at, updated_at`

// LibroRepo implementación del puerto LibroRepository sobre PostgreSQL (usable con pool o tx).
type LibroRepo struct {
	q Querier
}

// NewLibroRepository construye el adaptador de persistencia para libros. Pasar pool o tx (Querier).
func NewLibroRepository(q Querier) *LibroRepo {
	return &LibroRepo{q: q}
}

// Create persiste un libro y asigna el ID generado.
func (r *LibroRepo) Create(ctx context.Context, l *entity.Libro) error {
	query := `
		INSERT INTO libros (titulo, autor, anio_publicacion, genero, url, notas, etiquetas, propietario_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		l.Titulo, l.Autor, l.AnioPublicacion, l.Genero, l.URL, l.Notas, l.Etiquetas,
		l.PropietarioID, l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID)
	if err != nil {
		return translateError("insert libro", err)
	}
	return nil
}

// GetByID obtiene un libro por ID; (nil, nil) si no existe.
func (r *LibroRepo) GetByID(ctx context.Context, id int64) (*entity.Libro, error) {
	query := `SELECT ` + libroColumns + ` FROM libros WHERE id = $1`
	l, err := scanLibro(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get libro: %w", err)
	}
	return l, nil
}

// List devuelve todos los libros ordenados por ID.
func (r *LibroRepo) List(ctx context.Context) ([]*entity.Libro, error) {
	query := `SELECT ` + libroColumns + ` FROM libros ORDER BY id`
	return r.list(ctx, query)
}

// ListByPropietario devuelve los libros de un usuario ordenados por ID.
func (r *LibroRepo) ListByPropietario(ctx context.Context, propietarioID int64) ([]*entity.Libro, error) {
	query := `SELECT ` + libroColumns + ` FROM libros WHERE propietario_id = $1 ORDER BY id`
	return r.list(ctx, query, propietarioID)
}

func (r *LibroRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Libro, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list libros: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Libro, 0)
	for rows.Next() {
		l, err := scanLibro(rows)
		if err != nil {
			return nil, fmt.Errorf("scan libro: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Update sobrescribe todos los campos editables. ErrNotFound si el ID no existe.
func (r *LibroRepo) Update(ctx context.Context, l *entity.Libro) error {
	query := `
		UPDATE libros SET titulo = $2, autor = $3, anio_publicacion = $4, genero = $5, url = $6,
			notas = $7, etiquetas = $8, propietario_id = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		l.ID, l.Titulo, l.Autor, l.AnioPublicacion, l.Genero, l.URL, l.Notas, l.Etiquetas,
		l.PropietarioID, l.UpdatedAt,
	)
	if err != nil {
		return translateError("update libro", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un libro por ID. ErrNotFound si el ID no existe.
func (r *LibroRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM libros WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete libro: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLibro(row pgx.Row) (*entity.Libro, error) {
	var l entity.Libro
	err := row.Scan(
		&l.ID, &l.Titulo, &l.Autor, &l.AnioPublicacion, &l.Genero, &l.URL, &l.Notas, &l.Etiquetas,
		&l.PropietarioID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
