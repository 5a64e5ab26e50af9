package dto

import (
	"strconv"
	"strings"
)

// LibroForm entrada del formulario HTML de alta/edición. Todos los campos llegan
// como texto; los opcionales vacíos se guardan como NULL.
type LibroForm struct {
	Titulo          string `form:"titulo" validate:"required,max=150"`
	Autor           string `form:"autor" validate:"required,max=100"`
	AnioPublicacion string `form:"anio_publicacion" validate:"omitempty,number,max=9"`
	Genero          string `form:"genero" validate:"omitempty,max=50"`
	URL             string `form:"url" validate:"omitempty,url,max=255"`
	Notas           string `form:"notas"`
	Etiquetas       string `form:"etiquetas" validate:"omitempty,max=255"`
}

// Normalize recorta espacios antes de validar.
func (f *LibroForm) Normalize() {
	f.Titulo = strings.TrimSpace(f.Titulo)
	f.Autor = strings.TrimSpace(f.Autor)
	f.AnioPublicacion = strings.TrimSpace(f.AnioPublicacion)
	f.Genero = strings.TrimSpace(f.Genero)
	f.URL = strings.TrimSpace(f.URL)
	f.Notas = strings.TrimSpace(f.Notas)
	f.Etiquetas = strings.TrimSpace(f.Etiquetas)
}

// Anio convierte AnioPublicacion; vacío es nil.
func (f LibroForm) Anio() (*int, error) {
	if f.AnioPublicacion == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(f.AnioPublicacion)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// LibroFormFrom precarga el formulario de edición con un registro existente.
func LibroFormFrom(l *LibroResponse) LibroForm {
	f := LibroForm{
		Titulo:    l.Titulo,
		Autor:     l.Autor,
		Genero:    deref(l.Genero),
		URL:       deref(l.URL),
		Notas:     deref(l.Notas),
		Etiquetas: deref(l.Etiquetas),
	}
	if l.AnioPublicacion != nil {
		f.AnioPublicacion = strconv.Itoa(*l.AnioPublicacion)
	}
	return f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// LibroResponse proyección plana de un libro (mismo shape en HTML y JSON).
type LibroResponse struct {
	ID              int64   `json:"id"`
	Titulo          string  `json:"titulo"`
	Autor           string  `json:"autor"`
	AnioPublicacion *int    `json:"anio_publicacion"`
	Genero          *string `json:"genero"`
	URL             *string `json:"url"`
	Notas           *string `json:"notas"`
	Etiquetas       *string `json:"etiquetas"`
	PropietarioID   int64   `json:"propietario_id"`
}

// CreateLibroPruebaRequest cuerpo de POST /libros en modo prueba. Sin validación:
// los campos ausentes quedan nil.
type CreateLibroPruebaRequest struct {
	Titulo          *string `json:"titulo"`
	Autor           *string `json:"autor"`
	Genero          *string `json:"genero"`
	AnioPublicacion *int    `json:"anio_publicacion"`
	URL             *string `json:"url"`
	Notas           *string `json:"notas"`
	Etiquetas       *string `json:"etiquetas"`
	PropietarioID   *int64  `json:"propietario_id"`
}

// IsEmpty es true cuando el cuerpo no trae ningún campo conocido.
func (r CreateLibroPruebaRequest) IsEmpty() bool {
	return r.Titulo == nil && r.Autor == nil && r.Genero == nil && r.AnioPublicacion == nil &&
		r.URL == nil && r.Notas == nil && r.Etiquetas == nil && r.PropietarioID == nil
}

// UpdateLibroPruebaRequest cuerpo de PUT /libros/:id: solo se sobrescriben las claves presentes.
type UpdateLibroPruebaRequest struct {
	Titulo          Opcional[string] `json:"titulo"`
	Autor           Opcional[string] `json:"autor"`
	Genero          Opcional[string] `json:"genero"`
	AnioPublicacion Opcional[int]    `json:"anio_publicacion"`
	URL             Opcional[string] `json:"url"`
	Notas           Opcional[string] `json:"notas"`
	Etiquetas       Opcional[string] `json:"etiquetas"`
	PropietarioID   Opcional[int64]  `json:"propietario_id"`
}

// LibroCreadoResponse respuesta 201 del alta en modo prueba.
type LibroCreadoResponse struct {
	Message       string `json:"message"`
	ID            int64  `json:"id"`
	PropietarioID int64  `json:"propietario_id"`
}

// LibroMensajeResponse respuesta de actualización/eliminación en modo prueba.
type LibroMensajeResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
