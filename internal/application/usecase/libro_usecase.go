package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/mis-libros/internal/application/dto"
	"github.com/jhoicas/mis-libros/internal/application/ports"
	"github.com/jhoicas/mis-libros/internal/domain"
	"github.com/jhoicas/mis-libros/internal/domain/access"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
	"github.com/jhoicas/mis-libros/internal/domain/repository"
)

// LibroUseCase casos de uso de la superficie autenticada: cada operación recibe la
// identidad de la petición y aplica la política de acceso.
type LibroUseCase struct {
	repo   repository.LibroRepository
	tx     repository.LibroTxRunner
	policy *access.Policy
	pdf    ports.LibrosPDFGenerator
}

// NewLibroUseCase construye el caso de uso.
func NewLibroUseCase(repo repository.LibroRepository, tx repository.LibroTxRunner, policy *access.Policy, pdf ports.LibrosPDFGenerator) *LibroUseCase {
	return &LibroUseCase{repo: repo, tx: tx, policy: policy, pdf: pdf}
}

// Dashboard lista los libros visibles: todos si el rol tiene CanViewAll, si no los propios.
func (uc *LibroUseCase) Dashboard(ctx context.Context, id entity.Identity) ([]dto.LibroResponse, error) {
	list, err := uc.visible(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLibroResponses(list), nil
}

func (uc *LibroUseCase) visible(ctx context.Context, id entity.Identity) ([]*entity.Libro, error) {
	if uc.policy.CanViewAll(id) {
		return uc.repo.List(ctx)
	}
	return uc.repo.ListByPropietario(ctx, id.UserID)
}

// Create crea un libro cuyo propietario es el usuario de la sesión.
func (uc *LibroUseCase) Create(ctx context.Context, id entity.Identity, in dto.LibroForm) (*dto.LibroResponse, error) {
	now := time.Now()
	libro := &entity.Libro{PropietarioID: id.UserID, CreatedAt: now, UpdatedAt: now}
	if err := applyForm(libro, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, libro); err != nil {
		return nil, err
	}
	return toLibroResponse(libro), nil
}

// GetForEdit devuelve el libro si la identidad puede modificarlo.
// ErrNotFound si no existe; ErrForbidden si no es propietario ni admin.
func (uc *LibroUseCase) GetForEdit(ctx context.Context, id entity.Identity, libroID int64) (*dto.LibroResponse, error) {
	libro, err := uc.authorized(ctx, uc.repo, id, libroID)
	if err != nil {
		return nil, err
	}
	return toLibroResponse(libro), nil
}

// Update sobrescribe todos los campos editables tras la verificación de propiedad.
func (uc *LibroUseCase) Update(ctx context.Context, id entity.Identity, libroID int64, in dto.LibroForm) (*dto.LibroResponse, error) {
	var out *dto.LibroResponse
	err := uc.tx.RunLibros(ctx, func(libros repository.LibroRepository) error {
		libro, err := uc.authorized(ctx, libros, id, libroID)
		if err != nil {
			return err
		}
		if err := applyForm(libro, in); err != nil {
			return err
		}
		libro.UpdatedAt = time.Now()
		if err := libros.Update(ctx, libro); err != nil {
			return err
		}
		out = toLibroResponse(libro)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el libro tras la verificación de propiedad.
func (uc *LibroUseCase) Delete(ctx context.Context, id entity.Identity, libroID int64) error {
	return uc.tx.RunLibros(ctx, func(libros repository.LibroRepository) error {
		if _, err := uc.authorized(ctx, libros, id, libroID); err != nil {
			return err
		}
		return libros.Delete(ctx, libroID)
	})
}

// ExportPDF genera el PDF con los mismos libros que muestra el dashboard.
func (uc *LibroUseCase) ExportPDF(ctx context.Context, id entity.Identity) ([]byte, error) {
	list, err := uc.visible(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateLibrosPDF(ctx, "Libros de "+id.Username, list)
}

func (uc *LibroUseCase) authorized(ctx context.Context, libros repository.LibroRepository, id entity.Identity, libroID int64) (*entity.Libro, error) {
	libro, err := libros.GetByID(ctx, libroID)
	if err != nil {
		return nil, err
	}
	if libro == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.policy.CanModify(id, libro) {
		return nil, domain.ErrForbidden
	}
	return libro, nil
}

// applyForm copia los campos editables del formulario; vacío es NULL.
func applyForm(l *entity.Libro, in dto.LibroForm) error {
	anio, err := in.Anio()
	if err != nil {
		return fmt.Errorf("anio_publicacion: %w", domain.ErrInvalidInput)
	}
	l.Titulo = in.Titulo
	l.Autor = in.Autor
	l.AnioPublicacion = anio
	l.Genero = optional(in.Genero)
	l.URL = optional(in.URL)
	l.Notas = optional(in.Notas)
	l.Etiquetas = optional(in.Etiquetas)
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toLibroResponse(l *entity.Libro) *dto.LibroResponse {
	if l == nil {
		return nil
	}
	return &dto.LibroResponse{
		ID:              l.ID,
		Titulo:          l.Titulo,
		Autor:           l.Autor,
		AnioPublicacion: l.AnioPublicacion,
		Genero:          l.Genero,
		URL:             l.URL,
		Notas:           l.Notas,
		Etiquetas:       l.Etiquetas,
		PropietarioID:   l.PropietarioID,
	}
}

func toLibroResponses(list []*entity.Libro) []dto.LibroResponse {
	items := make([]dto.LibroResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLibroResponse(l))
	}
	return items
}
