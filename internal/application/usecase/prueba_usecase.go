package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/mis-libros/internal/application/dto"
	"github.com/jhoicas/mis-libros/internal/domain"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
	"github.com/jhoicas/mis-libros/internal/domain/repository"
)

// PruebaUseCase CRUD de libros del modo prueba: sin identidad, sin verificación de
// propiedad y sin validación de campos. Solo las restricciones de la tabla aplican
// (titulo, autor y propietario_id NOT NULL; el propietario debe existir).
type PruebaUseCase struct {
	repo repository.LibroRepository
	tx   repository.LibroTxRunner
}

// NewPruebaUseCase construye el caso de uso.
func NewPruebaUseCase(repo repository.LibroRepository, tx repository.LibroTxRunner) *PruebaUseCase {
	return &PruebaUseCase{repo: repo, tx: tx}
}

// List devuelve todos los libros.
func (uc *PruebaUseCase) List(ctx context.Context) ([]dto.LibroResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toLibroResponses(list), nil
}

// Get devuelve un libro o ErrNotFound.
func (uc *PruebaUseCase) Get(ctx context.Context, id int64) (*dto.LibroResponse, error) {
	libro, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if libro == nil {
		return nil, domain.ErrNotFound
	}
	return toLibroResponse(libro), nil
}

// Create inserta el libro tal cual llega; propietario_id no se verifica más allá de la FK.
func (uc *PruebaUseCase) Create(ctx context.Context, in dto.CreateLibroPruebaRequest) (*dto.LibroCreadoResponse, error) {
	if in.Titulo == nil || in.Autor == nil || in.PropietarioID == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	libro := &entity.Libro{
		Titulo:          *in.Titulo,
		Autor:           *in.Autor,
		AnioPublicacion: in.AnioPublicacion,
		Genero:          in.Genero,
		URL:             in.URL,
		Notas:           in.Notas,
		Etiquetas:       in.Etiquetas,
		PropietarioID:   *in.PropietarioID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, libro); err != nil {
		return nil, err
	}
	return &dto.LibroCreadoResponse{Message: "Libro creado", ID: libro.ID, PropietarioID: libro.PropietarioID}, nil
}

// Update aplica solo las claves presentes en el cuerpo; el resto queda igual.
func (uc *PruebaUseCase) Update(ctx context.Context, id int64, in dto.UpdateLibroPruebaRequest) (*dto.LibroMensajeResponse, error) {
	err := uc.tx.RunLibros(ctx, func(libros repository.LibroRepository) error {
		libro, err := libros.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if libro == nil {
			return domain.ErrNotFound
		}
		if in.Titulo.Set {
			if in.Titulo.Value == nil {
				return domain.ErrInvalidInput
			}
			libro.Titulo = *in.Titulo.Value
		}
		if in.Autor.Set {
			if in.Autor.Value == nil {
				return domain.ErrInvalidInput
			}
			libro.Autor = *in.Autor.Value
		}
		if in.PropietarioID.Set {
			if in.PropietarioID.Value == nil {
				return domain.ErrInvalidInput
			}
			libro.PropietarioID = *in.PropietarioID.Value
		}
		libro.Genero = in.Genero.Or(libro.Genero)
		libro.AnioPublicacion = in.AnioPublicacion.Or(libro.AnioPublicacion)
		libro.URL = in.URL.Or(libro.URL)
		libro.Notas = in.Notas.Or(libro.Notas)
		libro.Etiquetas = in.Etiquetas.Or(libro.Etiquetas)
		libro.UpdatedAt = time.Now()
		return libros.Update(ctx, libro)
	})
	if err != nil {
		return nil, err
	}
	return &dto.LibroMensajeResponse{Message: "Libro actualizado", ID: id}, nil
}

// Delete elimina sin verificación de propiedad. ErrNotFound si no existe.
func (uc *PruebaUseCase) Delete(ctx context.Context, id int64) (*dto.LibroMensajeResponse, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.LibroMensajeResponse{Message: "Libro eliminado", ID: id}, nil
}
