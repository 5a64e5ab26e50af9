// Package pdf genera el listado de libros del dashboard en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del listado  │  Fecha + total de libros     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Título | Autor | Año | Género | Etiquetas        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/mis-libros/internal/application/ports"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 96, Green: 56, Blue: 19}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoLibrosPDF implementa ports.LibrosPDFGenerator usando Maroto v2.
type MarotoLibrosPDF struct {
	now func() time.Time
}

var _ ports.LibrosPDFGenerator = (*MarotoLibrosPDF)(nil)

// NewMarotoLibrosPDF construye el generador.
func NewMarotoLibrosPDF() *MarotoLibrosPDF { return &MarotoLibrosPDF{now: time.Now} }

// GenerateLibrosPDF genera el PDF y devuelve sus bytes.
func (g *MarotoLibrosPDF) GenerateLibrosPDF(_ context.Context, titulo string, libros []*entity.Libro) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		WithAuthor("Mis Libros", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(titulo, g.now(), len(libros)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(libros) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No hay libros registrados.", props.Text{Size: 9, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range tableRows(libros) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Listado generado desde Mis Libros.", props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(titulo string, fecha time.Time, total int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+fecha.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d libro(s)", total), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Título", 4, align.Left),
		h("Autor", 3, align.Left),
		h("Año", 1, align.Center),
		h("Género", 1, align.Left),
		h("Etiquetas", 2, align.Left),
	)
}

// tableRows: una fila por libro.
func tableRows(libros []*entity.Libro) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(libros))
	for _, l := range libros {
		anio := "-"
		if l.AnioPublicacion != nil {
			anio = strconv.Itoa(*l.AnioPublicacion)
		}
		result = append(result, row.New(7).Add(
			cell(strconv.FormatInt(l.ID, 10), 1, align.Center),
			cell(l.Titulo, 4, align.Left),
			cell(l.Autor, 3, align.Left),
			cell(anio, 1, align.Center),
			cell(orDash(l.Genero), 1, align.Left),
			cell(orDash(l.Etiquetas), 2, align.Left),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
