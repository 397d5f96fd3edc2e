package cellar

import "math"

// Nombres de campo de la calculadora de reserva dulce por regla de mezcla.
const (
	FieldSRGL       = "gl_SR"
	FieldWineGL     = "gl_Wein"
	FieldWineLiters = "l_Wein"
	FieldTargetGL   = "ziel_gl"
)

// MinWineLiters volumen mínimo de vino base.
const MinWineLiters = 0.01

// denominatorEpsilon por debajo de este valor el denominador se considera cero.
const denominatorEpsilon = 1e-6

// AlligationRules reglas de campo: todos obligatorios.
var AlligationRules = []FieldRule{
	{Name: FieldSRGL, Mode: Required, Min: 0},
	{Name: FieldWineGL, Mode: Required, Min: 0},
	{Name: FieldWineLiters, Mode: Required, Min: MinWineLiters},
	{Name: FieldTargetGL, Mode: Required, Min: 0},
}

// AlligationInput textos del formulario tal como los escribe el usuario.
type AlligationInput struct {
	SRGL       string
	WineGL     string
	WineLiters string
	TargetGL   string
}

// AlligationValues entradas ya interpretadas.
type AlligationValues struct {
	SRGL       float64
	WineGL     float64
	WineLiters float64
	TargetGL   float64
}

// AlligationResult litros de reserva dulce necesarios y volumen total resultante.
type AlligationResult struct {
	SRLiters    float64
	TotalLiters float64
}

// ValidateAlligation aplica las reglas por campo y la comprobación cruzada.
// La comprobación "entre" solo se hace cuando los cuatro campos son distintos
// de cero, para que el formulario pueda rellenarse poco a poco.
func ValidateAlligation(in AlligationInput) (AlligationValues, FieldErrors) {
	texts := []string{in.SRGL, in.WineGL, in.WineLiters, in.TargetGL}
	vals := make([]float64, len(texts))
	failed := make([]bool, len(texts))
	var errs FieldErrors
	for i, rule := range AlligationRules {
		v, fe := rule.Check(texts[i])
		vals[i] = v
		if fe != nil {
			failed[i] = true
			errs = append(errs, *fe)
		}
	}
	out := AlligationValues{SRGL: vals[0], WineGL: vals[1], WineLiters: vals[2], TargetGL: vals[3]}

	srOK, wineOK, litersOK, targetOK := !failed[0], !failed[1], !failed[2], !failed[3]
	if !srOK || !targetOK {
		return out, errs
	}
	if out.SRGL == out.TargetGL {
		return out, append(errs, FieldError{Field: FieldTargetGL, Code: CodeSREqualsTarget})
	}
	if !wineOK || !litersOK {
		return out, errs
	}
	if out.SRGL != 0 && out.WineGL != 0 && out.WineLiters != 0 && out.TargetGL != 0 {
		sr, wine, target := out.SRGL, out.WineGL, out.TargetGL
		between := (wine < target && target < sr) || (sr < target && target < wine)
		if !between {
			errs = append(errs, FieldError{Field: FieldTargetGL, Code: CodeTargetNotBetween})
		}
	}
	return out, errs
}

// Alligate regla de mezcla:
//
//	liter_SR     = max(0, l_Wein * (ziel_gl - gl_Wein) / (gl_SR - ziel_gl))
//	gesamt_Liter = l_Wein + liter_SR
//
// Con |gl_SR - ziel_gl| <= 1e-6 el resultado es 0 litros de reserva. La
// igualdad exacta ya la rechaza ValidateAlligation, así que la guarda solo
// actúa con valores casi iguales. Un resultado que desborda float64 es cero.
func Alligate(v AlligationValues) AlligationResult {
	var srLiters float64
	denominator := v.SRGL - v.TargetGL
	if math.Abs(denominator) > denominatorEpsilon {
		srLiters = math.Max(0, v.WineLiters*(v.TargetGL-v.WineGL)/denominator)
	}
	res := AlligationResult{SRLiters: srLiters, TotalLiters: v.WineLiters + srLiters}
	if !finite(res.SRLiters, res.TotalLiters) {
		return AlligationResult{}
	}
	return res
}

// SubmitAlligation valida y, solo si no hay errores, calcula. Con errores el
// envío queda bloqueado y el resultado es cero.
func SubmitAlligation(in AlligationInput) (AlligationResult, FieldErrors) {
	vals, errs := ValidateAlligation(in)
	if len(errs) > 0 {
		return AlligationResult{}, errs
	}
	return Alligate(vals), nil
}
