package tui

import (
	"errors"
	"fmt"

	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain/cellar"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
)

// NewForm construye el formulario de la calculadora indicada.
func NewForm(id cellar.CalculatorID, uc *usecase.CalculatorUseCase, lang i18n.Language, styles Styles) (FormModel, error) {
	calc, err := cellar.Lookup(string(id))
	if err != nil {
		return FormModel{}, err
	}
	labels := i18n.Catalog(lang).Calculators[id]

	switch id {
	case cellar.CalcAlcohol:
		keys := []string{i18n.FieldGL, i18n.FieldVol}
		return newFormModel(calc, lang, keys, fieldLabels(labels, keys), func(v map[string]string) (outcome, error) {
			out := uc.ConvertAlcohol(dto.AlcoholConvertRequest{GL: v[i18n.FieldGL], Vol: v[i18n.FieldVol]})
			return outcome{rows: []ResultRow{
				{Label: labels.Results[i18n.ResultVol], Value: out.VolDisplay},
				{Label: labels.Results[i18n.ResultGL], Value: out.GLDisplay},
			}}, nil
		}, styles), nil

	case cellar.CalcPercent:
		keys := []string{i18n.FieldPercent, i18n.FieldLiters}
		return newFormModel(calc, lang, keys, fieldLabels(labels, keys), func(v map[string]string) (outcome, error) {
			out := uc.PercentSweetReserve(dto.PercentSRRequest{Percent: v[i18n.FieldPercent], Liters: v[i18n.FieldLiters]})
			return outcome{rows: []ResultRow{
				{Label: labels.Results[i18n.ResultAuf], Value: out.AufDisplay},
				{Label: labels.Results[i18n.ResultIn], Value: out.InDisplay},
			}}, nil
		}, styles), nil

	case cellar.CalcAlligation:
		keys := []string{cellar.FieldSRGL, cellar.FieldWineGL, cellar.FieldWineLiters, cellar.FieldTargetGL}
		return newFormModel(calc, lang, keys, fieldLabels(labels, keys), func(v map[string]string) (outcome, error) {
			out, err := uc.AlligateSweetReserve(lang, dto.AlligationRequest{
				SRGL: v[cellar.FieldSRGL], WineGL: v[cellar.FieldWineGL],
				WineLiters: v[cellar.FieldWineLiters], TargetGL: v[cellar.FieldTargetGL],
			})
			if err != nil {
				return validationOutcome(err)
			}
			return outcome{rows: []ResultRow{
				{Label: labels.Results[i18n.ResultSRLiters], Value: out.SRLitersDisplay},
				{Label: labels.Results[i18n.ResultTotalLiters], Value: out.TotalLitersDisplay},
			}}, nil
		}, styles), nil

	case cellar.CalcBlend:
		batchFields := []string{cellar.FieldBatchLiters, cellar.FieldBatchSugar, cellar.FieldBatchAlcohol}
		var keys, names []string
		for i := 0; i < cellar.MaxBatches; i++ {
			prefix := fmt.Sprintf(i18n.Message(lang, i18n.MsgBatch), i+1)
			for _, f := range batchFields {
				keys = append(keys, cellar.BatchFieldName(i, f))
				names = append(names, prefix+" · "+labels.Fields[f])
			}
		}
		return newFormModel(calc, lang, keys, names, func(v map[string]string) (outcome, error) {
			req := dto.BlendRequest{Wines: make([]dto.BatchDTO, cellar.MaxBatches)}
			for i := range req.Wines {
				req.Wines[i] = dto.BatchDTO{
					Liter:   v[cellar.BatchFieldName(i, cellar.FieldBatchLiters)],
					Sugar:   v[cellar.BatchFieldName(i, cellar.FieldBatchSugar)],
					Alcohol: v[cellar.BatchFieldName(i, cellar.FieldBatchAlcohol)],
				}
			}
			out, err := uc.BlendBatches(lang, req)
			if err != nil {
				return validationOutcome(err)
			}
			return outcome{rows: []ResultRow{
				{Label: labels.Results[i18n.ResultBlendLiters], Value: out.TotalLitersDisplay},
				{Label: labels.Results[i18n.ResultAvgSugar], Value: out.AvgSugarDisplay},
				{Label: labels.Results[i18n.ResultAvgAlcohol], Value: out.AvgAlcoholDisplay},
			}}, nil
		}, styles), nil
	}
	return FormModel{}, fmt.Errorf("tui: sin formulario para %q", id)
}

func fieldLabels(labels i18n.CalculatorLabels, keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = labels.Fields[k]
	}
	return out
}

// validationOutcome convierte un *usecase.ValidationError en errores por campo.
func validationOutcome(err error) (outcome, error) {
	var verr *usecase.ValidationError
	if !errors.As(err, &verr) {
		return outcome{}, err
	}
	errs := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		if _, seen := errs[f.Field]; !seen {
			errs[f.Field] = f.Message
		}
	}
	return outcome{errors: errs}, nil
}
