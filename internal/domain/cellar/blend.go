package cellar

import "strconv"

// MaxBatches número de lotes del formulario de mezcla.
const MaxBatches = 5

// Nombres de los campos de un lote.
const (
	FieldBatchLiters  = "liter"
	FieldBatchSugar   = "sugar"
	FieldBatchAlcohol = "alcohol"
)

// BatchRules reglas por campo de un lote: vacío cuenta como cero.
var BatchRules = []FieldRule{
	{Name: FieldBatchLiters, Mode: ZeroDefault, Min: 0},
	{Name: FieldBatchSugar, Mode: ZeroDefault, Min: 0},
	{Name: FieldBatchAlcohol, Mode: ZeroDefault, Min: 0},
}

// BatchInput textos de un lote.
type BatchInput struct {
	Liters  string
	Sugar   string
	Alcohol string
}

// Batch lote ya interpretado.
type Batch struct {
	Liters  float64
	Sugar   float64
	Alcohol float64
}

// BlendResult promedio ponderado por volumen.
type BlendResult struct {
	TotalLiters float64
	AvgSugar    float64
	AvgAlcohol  float64
}

// BatchFieldName nombre del campo i-ésimo, p. ej. "wines[2].sugar".
func BatchFieldName(i int, field string) string {
	return "wines[" + strconv.Itoa(i) + "]." + field
}

// ValidateBatches aplica las reglas a los cinco lotes.
func ValidateBatches(in [MaxBatches]BatchInput) FieldErrors {
	var errs FieldErrors
	for i, b := range in {
		for j, text := range []string{b.Liters, b.Sugar, b.Alcohol} {
			if _, fe := BatchRules[j].Check(text); fe != nil {
				errs = append(errs, FieldError{Field: BatchFieldName(i, fe.Field), Code: fe.Code})
			}
		}
	}
	return errs
}

// ParseBatches interpreta los textos con política de cero por defecto:
// vacío o no numérico se toma como 0.
func ParseBatches(in [MaxBatches]BatchInput) []Batch {
	out := make([]Batch, 0, len(in))
	for _, b := range in {
		out = append(out, Batch{
			Liters:  Parse(b.Liters).OrZero(),
			Sugar:   Parse(b.Sugar).OrZero(),
			Alcohol: Parse(b.Alcohol).OrZero(),
		})
	}
	return out
}

// Blend calcula la media ponderada por volumen. Un lote sólo cuenta si sus
// litros son > 0; sus valores de azúcar/alcohol no influyen en caso contrario.
// Si las sumas desbordan float64 el resultado es cero, como sin lotes.
func Blend(batches []Batch) BlendResult {
	var total, sugar, alcohol float64
	for _, b := range batches {
		if !(b.Liters > 0) {
			continue
		}
		total += b.Liters
		sugar += b.Liters * b.Sugar
		alcohol += b.Liters * b.Alcohol
	}
	if total <= 0 {
		return BlendResult{}
	}
	res := BlendResult{TotalLiters: total, AvgSugar: sugar / total, AvgAlcohol: alcohol / total}
	if !finite(res.TotalLiters, res.AvgSugar, res.AvgAlcohol) {
		return BlendResult{}
	}
	return res
}

// SubmitBlend valida y, sin errores, calcula la mezcla.
func SubmitBlend(in [MaxBatches]BatchInput) (BlendResult, FieldErrors) {
	if errs := ValidateBatches(in); len(errs) > 0 {
		return BlendResult{}, errs
	}
	return Blend(ParseBatches(in)), nil
}
