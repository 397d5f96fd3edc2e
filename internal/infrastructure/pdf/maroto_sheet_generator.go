// Package pdf implementa la hoja imprimible de una calculadora de bodega.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la calculadora │ Fecha + Nº de hoja      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ENTRADAS: Campo | Valor | Unidad                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESULTADOS: Resultado | Valor | Unidad                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FÓRMULA + QR con el Nº de hoja                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"embed"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/weinrechner/internal/application/sheet"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 110, Green: 24, Blue: 56}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Fuentes ───────────────────────────────────────────────────────────────────

// Las fuentes base de PDF solo cubren cp1252; DejaVu cubre también cirílico.
//
//go:embed fonts/*.ttf
var fontFS embed.FS

const (
	fontFamily     = "dejavu"
	fontFamilyMono = "dejavumono"
)

func loadFonts() ([]*entity.CustomFont, error) {
	files := []struct {
		family string
		style  fontstyle.Type
		path   string
	}{
		{fontFamily, fontstyle.Normal, "fonts/DejaVuSans.ttf"},
		{fontFamily, fontstyle.Bold, "fonts/DejaVuSans-Bold.ttf"},
		{fontFamilyMono, fontstyle.Normal, "fonts/DejaVuSansMono.ttf"},
	}
	repo := repository.New()
	for _, f := range files {
		b, err := fontFS.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("pdf: leer fuente %s: %w", f.path, err)
		}
		repo = repo.AddUTF8FontFromBytes(f.family, f.style, b)
	}
	return repo.Load()
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSheetGenerator implementa sheet.SheetPDFGenerator usando Maroto v2.
type MarotoSheetGenerator struct {
	author string
}

// NewMarotoSheetGenerator construye el generador; author aparece en los metadatos del PDF.
func NewMarotoSheetGenerator(author string) *MarotoSheetGenerator {
	return &MarotoSheetGenerator{author: author}
}

// GenerateSheet genera el PDF y devuelve sus bytes.
func (g *MarotoSheetGenerator) GenerateSheet(ctx context.Context, s *sheet.Sheet) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("pdf: hoja nula")
	}

	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithCustomFonts(fonts).
		WithDefaultFont(&props.Font{Family: fontFamily, Size: 10}).
		WithTitle(s.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow(s.InputsTitle))
	m.AddRows(valueRows(s.Inputs, false)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow(s.ResultsTitle))
	m.AddRows(valueRows(s.Results, true)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(line.NewRow(3))
	m.AddRows(formulaRow(s))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + indicación (izq) y fecha + nº de hoja (der).
func headerRow(s *sheet.Sheet) core.Row {
	return row.New(20).Add(
		col.New(8).Add(
			text.New(s.Title, props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
			}),
			text.New(s.Hint, props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(s.CreatedAt.Format("02.01.2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New(shortID(s.ID), props.Text{
				Size: 7, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// valueRows: una fila por valor; los resultados van en negrita.
func valueRows(rows []sheet.Row, emphasize bool) []core.Row {
	style := fontstyle.Normal
	if emphasize {
		style = fontstyle.Bold
	}
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, row.New(7).Add(
			col.New(7).Add(text.New(r.Label, props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(3).Add(text.New(r.Value, props.Text{
				Style: style, Size: 10, Align: align.Right, Top: 1, Right: 2,
			})),
			col.New(2).Add(text.New(r.Unit, props.Text{Size: 9, Top: 1, Color: colorGray})),
		))
	}
	return out
}

// formulaRow: fórmula a la izquierda y QR con el nº de hoja a la derecha.
func formulaRow(s *sheet.Sheet) core.Row {
	return row.New(30).Add(
		col.New(9).Add(
			text.New(s.Formula, props.Text{
				Family: fontFamilyMono, Size: 9, Top: 4, Left: 1,
			}),
		),
		col.New(3).Add(code.NewQr(s.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
