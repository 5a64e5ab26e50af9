package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mis-libros/internal/domain/entity"
	"github.com/jhoicas/mis-libros/internal/infrastructure/pdf"
)

func TestGenerateLibrosPDF(t *testing.T) {
	anio := 1967
	genero := "Novela"
	libros := []*entity.Libro{
		{ID: 1, Titulo: "Cien años de soledad", Autor: "Gabriel García Márquez", AnioPublicacion: &anio, Genero: &genero},
		{ID: 2, Titulo: "Sin año", Autor: "Anónimo"},
	}

	b, err := pdf.NewMarotoLibrosPDF().GenerateLibrosPDF(context.Background(), "Libros de ana", libros)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe producir un documento PDF")
}

func TestGenerateLibrosPDF_SinLibros(t *testing.T) {
	b, err := pdf.NewMarotoLibrosPDF().GenerateLibrosPDF(context.Background(), "Vacío", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
