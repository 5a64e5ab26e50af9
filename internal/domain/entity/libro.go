package entity

import "time"

// Libro es un registro del catálogo personal, con un único propietario.
// Los campos opcionales son punteros: nil se persiste como NULL.
type Libro struct {
	ID              int64
	Titulo          string
	Autor           string
	AnioPublicacion *int
	Genero          *string
	URL             *string
	Notas           *string
	Etiquetas       *string
	PropietarioID   int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
