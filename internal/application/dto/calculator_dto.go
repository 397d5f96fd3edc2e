package dto

// Todas las entradas llegan como texto: admiten coma decimal y el vacío
// significa "sin valor", no cero.

// ── Conversor de alcohol ──────────────────────────────────────────────────────

// AlcoholConvertRequest campos independientes g/l y % vol.
type AlcoholConvertRequest struct {
	GL  string `json:"gl"`
	Vol string `json:"vol"`
}

// AlcoholConvertResponse resultados; los *Display vacíos significan entrada inválida o vacía.
type AlcoholConvertResponse struct {
	Vol        *float64 `json:"vol"`         // calculado desde gl
	VolDisplay string   `json:"vol_display"` // "12,67"
	GL         *float64 `json:"gl"`          // calculado desde vol
	GLDisplay  string   `json:"gl_display"`
}

// ── Reserva dulce por porcentaje ──────────────────────────────────────────────

// PercentSRRequest porcentaje deseado y litros de vino base.
type PercentSRRequest struct {
	Percent string `json:"percent"`
	Liters  string `json:"liters"`
}

// PercentSRResponse resultados "% auf" y "% in".
type PercentSRResponse struct {
	Valid      bool     `json:"valid"`
	Auf        float64  `json:"auf"`
	AufDisplay string   `json:"auf_display"`
	In         *float64 `json:"in"` // nil cuando no aplica
	InDisplay  string   `json:"in_display"`
}

// ── Reserva dulce por regla de mezcla ─────────────────────────────────────────

// AlligationRequest campos del formulario de Verschnitt.
type AlligationRequest struct {
	SRGL       string `json:"gl_SR"`
	WineGL     string `json:"gl_Wein"`
	WineLiters string `json:"l_Wein"`
	TargetGL   string `json:"ziel_gl"`
}

// AlligationResponse litros de reserva dulce y total.
type AlligationResponse struct {
	SRLiters           float64 `json:"liter_SR"`
	SRLitersDisplay    string  `json:"liter_SR_display"`
	TotalLiters        float64 `json:"gesamt_Liter"`
	TotalLitersDisplay string  `json:"gesamt_Liter_display"`
}

// ── Mezcla de lotes ───────────────────────────────────────────────────────────

// BatchDTO un lote del formulario.
type BatchDTO struct {
	Liter   string `json:"liter"`
	Sugar   string `json:"sugar"`
	Alcohol string `json:"alcohol"`
}

// BlendRequest hasta cinco lotes; los que falten se consideran vacíos.
type BlendRequest struct {
	Wines []BatchDTO `json:"wines"`
}

// BlendResponse media ponderada por volumen.
type BlendResponse struct {
	TotalLiters        float64 `json:"total_liters"`
	TotalLitersDisplay string  `json:"total_liters_display"`
	AvgSugar           float64 `json:"avg_sugar"`
	AvgSugarDisplay    string  `json:"avg_sugar_display"`
	AvgAlcohol         float64 `json:"avg_alcohol"`
	AvgAlcoholDisplay  string  `json:"avg_alcohol_display"`
}

// ── Registro ──────────────────────────────────────────────────────────────────

// CalculatorDTO calculadora navegable.
type CalculatorDTO struct {
	ID      string `json:"id"`
	Route   string `json:"route"`
	Trigger string `json:"trigger"` // "input" | "submit"
	Title   string `json:"title"`
}
