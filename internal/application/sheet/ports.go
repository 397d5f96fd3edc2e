package sheet

import (
	"context"
	"time"
)

// SheetPDFGenerator genera la hoja de cálculo imprimible. Lo implementa
// infrastructure/pdf.MarotoSheetGenerator.
type SheetPDFGenerator interface {
	GenerateSheet(ctx context.Context, s *Sheet) ([]byte, error)
}

// Row fila etiqueta / valor / unidad, ya formateada.
type Row struct {
	Label string
	Value string
	Unit  string
}

// Sheet contenido de una hoja: nada se persiste, solo se renderiza.
// Los títulos de sección llegan ya traducidos.
type Sheet struct {
	ID           string
	Title        string
	Hint         string
	Formula      string
	Language     string
	InputsTitle  string
	ResultsTitle string
	Inputs       []Row
	Results      []Row
	CreatedAt    time.Time
}
