package usecase

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/domain"
	"github.com/jhoicas/weinrechner/internal/domain/cellar"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
)

// ValidationError errores de campo que bloquean el envío de un formulario.
type ValidationError struct {
	Fields []dto.FieldErrorDTO
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", domain.ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

// CalculatorUseCase expone las cuatro calculadoras con entradas de texto y
// salidas ya formateadas con coma decimal.
type CalculatorUseCase struct {
	log zerolog.Logger
}

// NewCalculatorUseCase construye el caso de uso.
func NewCalculatorUseCase(log zerolog.Logger) *CalculatorUseCase {
	return &CalculatorUseCase{log: log}
}

// ConvertAlcohol conversión g/l <-> % vol. Nunca falla: una entrada inválida deja el resultado vacío.
func (uc *CalculatorUseCase) ConvertAlcohol(in dto.AlcoholConvertRequest) dto.AlcoholConvertResponse {
	conv := cellar.ConvertAlcohol(in.GL, in.Vol)
	out := dto.AlcoholConvertResponse{
		VolDisplay: cellar.FormatNumber(conv.Vol),
		GLDisplay:  cellar.FormatNumber(conv.GL),
	}
	if conv.Vol.Ok() {
		v := conv.Vol.Value
		out.Vol = &v
	}
	if conv.GL.Ok() {
		v := conv.GL.Value
		out.GL = &v
	}
	return out
}

// PercentSweetReserve reserva dulce por porcentaje. Fuera de rango ambos resultados son 0.
func (uc *CalculatorUseCase) PercentSweetReserve(in dto.PercentSRRequest) dto.PercentSRResponse {
	res := cellar.PercentSweetReserve(in.Percent, in.Liters)
	out := dto.PercentSRResponse{
		Valid:      res.Valid,
		Auf:        res.Auf,
		AufDisplay: cellar.FormatConverter(res.Auf),
	}
	if res.InNA {
		out.InDisplay = cellar.NotApplicable
		return out
	}
	v := res.In
	out.In = &v
	out.InDisplay = cellar.FormatConverter(res.In)
	return out
}

// AlligateSweetReserve regla de mezcla. Con errores de campo devuelve *ValidationError.
func (uc *CalculatorUseCase) AlligateSweetReserve(lang i18n.Language, in dto.AlligationRequest) (*dto.AlligationResponse, error) {
	res, errs := cellar.SubmitAlligation(cellar.AlligationInput{
		SRGL:       in.SRGL,
		WineGL:     in.WineGL,
		WineLiters: in.WineLiters,
		TargetGL:   in.TargetGL,
	})
	if len(errs) > 0 {
		return nil, toValidationError(lang, errs)
	}
	uc.log.Debug().
		Float64("liter_sr", res.SRLiters).
		Float64("gesamt_liter", res.TotalLiters).
		Msg("regla de mezcla calculada")
	return &dto.AlligationResponse{
		SRLiters:           res.SRLiters,
		SRLitersDisplay:    cellar.FormatDosage(res.SRLiters),
		TotalLiters:        res.TotalLiters,
		TotalLitersDisplay: cellar.FormatDosage(res.TotalLiters),
	}, nil
}

// BlendBatches media ponderada de hasta cinco lotes.
func (uc *CalculatorUseCase) BlendBatches(lang i18n.Language, in dto.BlendRequest) (*dto.BlendResponse, error) {
	if len(in.Wines) > cellar.MaxBatches {
		return nil, fmt.Errorf("%w: máximo %d lotes, recibidos %d", domain.ErrInvalidInput, cellar.MaxBatches, len(in.Wines))
	}
	var batches [cellar.MaxBatches]cellar.BatchInput
	for i, w := range in.Wines {
		batches[i] = cellar.BatchInput{Liters: w.Liter, Sugar: w.Sugar, Alcohol: w.Alcohol}
	}
	res, errs := cellar.SubmitBlend(batches)
	if len(errs) > 0 {
		return nil, toValidationError(lang, errs)
	}
	uc.log.Debug().
		Float64("total_liters", res.TotalLiters).
		Msg("mezcla calculada")
	return &dto.BlendResponse{
		TotalLiters:        res.TotalLiters,
		TotalLitersDisplay: cellar.FormatConverter(res.TotalLiters),
		AvgSugar:           res.AvgSugar,
		AvgSugarDisplay:    cellar.FormatConverter(res.AvgSugar),
		AvgAlcohol:         res.AvgAlcohol,
		AvgAlcoholDisplay:  cellar.FormatConverter(res.AvgAlcohol),
	}, nil
}

// Calculators lista las calculadoras con su título traducido.
func (uc *CalculatorUseCase) Calculators(lang i18n.Language) []dto.CalculatorDTO {
	cat := i18n.Catalog(lang)
	calcs := cellar.Calculators()
	out := make([]dto.CalculatorDTO, 0, len(calcs))
	for _, c := range calcs {
		out = append(out, dto.CalculatorDTO{
			ID:      string(c.ID),
			Route:   c.Route,
			Trigger: string(c.Trigger),
			Title:   cat.Calculators[c.ID].Title,
		})
	}
	return out
}

func toValidationError(lang i18n.Language, errs cellar.FieldErrors) *ValidationError {
	fields := make([]dto.FieldErrorDTO, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, dto.FieldErrorDTO{
			Field:   e.Field,
			Code:    e.Code,
			Message: i18n.Message(lang, e.Code),
		})
	}
	return &ValidationError{Fields: fields}
}
