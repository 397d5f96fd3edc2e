// Package sheet genera hojas PDF con las entradas, los resultados y la fórmula
// de una calculadora. Reutiliza CalculatorUseCase, de modo que una hoja nunca
// muestra un resultado distinto al de la API.
package sheet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain/cellar"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
)

const (
	unitGL     = "g/l"
	unitVol    = "% Vol."
	unitLiters = "L"
	unitPct    = "%"
)

// SheetUseCase construye y renderiza hojas de cálculo.
type SheetUseCase struct {
	calc      *usecase.CalculatorUseCase
	generator SheetPDFGenerator
	now       func() time.Time
}

// NewSheetUseCase construye el caso de uso inyectando sus dependencias.
func NewSheetUseCase(calc *usecase.CalculatorUseCase, generator SheetPDFGenerator) *SheetUseCase {
	return &SheetUseCase{calc: calc, generator: generator, now: time.Now}
}

// Alcohol hoja del conversor de alcohol.
func (uc *SheetUseCase) Alcohol(ctx context.Context, lang i18n.Language, in dto.AlcoholConvertRequest) ([]byte, string, error) {
	labels := i18n.Catalog(lang).Calculators[cellar.CalcAlcohol]
	out := uc.calc.ConvertAlcohol(in)
	s := uc.newSheet(lang, labels)
	s.Inputs = []Row{
		{Label: labels.Fields[i18n.FieldGL], Value: displayInput(in.GL), Unit: unitGL},
		{Label: labels.Fields[i18n.FieldVol], Value: displayInput(in.Vol), Unit: unitVol},
	}
	s.Results = []Row{
		{Label: labels.Results[i18n.ResultVol], Value: orDash(out.VolDisplay), Unit: unitVol},
		{Label: labels.Results[i18n.ResultGL], Value: orDash(out.GLDisplay), Unit: unitGL},
	}
	return uc.render(ctx, cellar.CalcAlcohol, s)
}

// Percent hoja de la reserva dulce por porcentaje.
func (uc *SheetUseCase) Percent(ctx context.Context, lang i18n.Language, in dto.PercentSRRequest) ([]byte, string, error) {
	labels := i18n.Catalog(lang).Calculators[cellar.CalcPercent]
	out := uc.calc.PercentSweetReserve(in)
	s := uc.newSheet(lang, labels)
	s.Inputs = []Row{
		{Label: labels.Fields[i18n.FieldPercent], Value: displayInput(in.Percent), Unit: unitPct},
		{Label: labels.Fields[i18n.FieldLiters], Value: displayInput(in.Liters), Unit: unitLiters},
	}
	s.Results = []Row{
		{Label: labels.Results[i18n.ResultAuf], Value: out.AufDisplay, Unit: unitLiters},
		{Label: labels.Results[i18n.ResultIn], Value: out.InDisplay, Unit: unitLiters},
	}
	return uc.render(ctx, cellar.CalcPercent, s)
}

// Alligation hoja de la regla de mezcla; con errores de campo no se genera.
func (uc *SheetUseCase) Alligation(ctx context.Context, lang i18n.Language, in dto.AlligationRequest) ([]byte, string, error) {
	out, err := uc.calc.AlligateSweetReserve(lang, in)
	if err != nil {
		return nil, "", err
	}
	labels := i18n.Catalog(lang).Calculators[cellar.CalcAlligation]
	s := uc.newSheet(lang, labels)
	s.Inputs = []Row{
		{Label: labels.Fields[cellar.FieldSRGL], Value: displayInput(in.SRGL), Unit: unitGL},
		{Label: labels.Fields[cellar.FieldWineGL], Value: displayInput(in.WineGL), Unit: unitGL},
		{Label: labels.Fields[cellar.FieldWineLiters], Value: displayInput(in.WineLiters), Unit: unitLiters},
		{Label: labels.Fields[cellar.FieldTargetGL], Value: displayInput(in.TargetGL), Unit: unitGL},
	}
	s.Results = []Row{
		{Label: labels.Results[i18n.ResultSRLiters], Value: out.SRLitersDisplay, Unit: unitLiters},
		{Label: labels.Results[i18n.ResultTotalLiters], Value: out.TotalLitersDisplay, Unit: unitLiters},
	}
	return uc.render(ctx, cellar.CalcAlligation, s)
}

// Blend hoja de la mezcla de lotes; solo se listan los lotes con algún dato.
func (uc *SheetUseCase) Blend(ctx context.Context, lang i18n.Language, in dto.BlendRequest) ([]byte, string, error) {
	out, err := uc.calc.BlendBatches(lang, in)
	if err != nil {
		return nil, "", err
	}
	labels := i18n.Catalog(lang).Calculators[cellar.CalcBlend]
	s := uc.newSheet(lang, labels)
	for i, w := range in.Wines {
		if w.Liter == "" && w.Sugar == "" && w.Alcohol == "" {
			continue
		}
		prefix := fmt.Sprintf("#%d ", i+1)
		s.Inputs = append(s.Inputs,
			Row{Label: prefix + labels.Fields[cellar.FieldBatchLiters], Value: displayInput(w.Liter), Unit: unitLiters},
			Row{Label: prefix + labels.Fields[cellar.FieldBatchSugar], Value: displayInput(w.Sugar), Unit: unitGL},
			Row{Label: prefix + labels.Fields[cellar.FieldBatchAlcohol], Value: displayInput(w.Alcohol), Unit: unitGL},
		)
	}
	s.Results = []Row{
		{Label: labels.Results[i18n.ResultBlendLiters], Value: out.TotalLitersDisplay, Unit: unitLiters},
		{Label: labels.Results[i18n.ResultAvgSugar], Value: out.AvgSugarDisplay, Unit: unitGL},
		{Label: labels.Results[i18n.ResultAvgAlcohol], Value: out.AvgAlcoholDisplay, Unit: unitGL},
	}
	return uc.render(ctx, cellar.CalcBlend, s)
}

func (uc *SheetUseCase) newSheet(lang i18n.Language, labels i18n.CalculatorLabels) *Sheet {
	return &Sheet{
		ID:           uuid.NewString(),
		Title:        labels.Title,
		Hint:         labels.Hint,
		Formula:      labels.Formula,
		Language:     string(lang),
		InputsTitle:  i18n.Message(lang, i18n.MsgInputs),
		ResultsTitle: i18n.Message(lang, i18n.MsgResults),
		CreatedAt:    uc.now(),
	}
}

func (uc *SheetUseCase) render(ctx context.Context, id cellar.CalculatorID, s *Sheet) ([]byte, string, error) {
	pdfBytes, err := uc.generator.GenerateSheet(ctx, s)
	if err != nil {
		return nil, "", fmt.Errorf("sheet: generar pdf: %w", err)
	}
	filename := fmt.Sprintf("weinrechner-%s-%s.pdf", id, s.ID[:8])
	return pdfBytes, filename, nil
}

// displayInput muestra lo tecleado tal cual, con coma decimal; vacío => guion.
func displayInput(text string) string {
	if cellar.Parse(text).State == cellar.Unset {
		return "—"
	}
	return strings.Replace(strings.TrimSpace(text), ".", ",", 1)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
