package ports

import (
	"context"

	"github.com/jhoicas/mis-libros/internal/domain/entity"
)

// LibrosPDFGenerator genera el listado de libros en PDF.
type LibrosPDFGenerator interface {
	GenerateLibrosPDF(ctx context.Context, titulo string, libros []*entity.Libro) ([]byte, error)
}
