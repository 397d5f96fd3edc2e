package cellar

// NotApplicable marcador de resultado sin sentido matemático.
const NotApplicable = "N/A"

// PercentResult resultado de la calculadora de reserva dulce por porcentaje.
//
//	Auf: P/100 * L        (porcentaje sobre el volumen final)
//	In:  P/(100-P) * L    (porcentaje dentro de la mezcla terminada)
type PercentResult struct {
	Auf   float64
	In    float64
	InNA  bool // true => mostrar NotApplicable en lugar de In
	Valid bool // false => entradas fuera de rango o desbordadas, ambos resultados son 0
}

// PercentSweetReserve calcula la reserva dulce a partir del porcentaje deseado
// y de los litros de vino base.
func PercentSweetReserve(percentText, litersText string) PercentResult {
	p := Parse(percentText)
	l := Parse(litersText)
	if !p.Ok() || !l.Ok() {
		return PercentResult{}
	}
	return PercentSweetReserveValues(p.Value, l.Value)
}

// PercentSweetReserveValues versión numérica de PercentSweetReserve.
func PercentSweetReserveValues(p, l float64) PercentResult {
	if !(p >= 0 && l >= 0 && p < 100) {
		return PercentResult{}
	}
	res := PercentResult{Auf: p / 100 * l, Valid: true}
	// Inalcanzable con la guarda anterior; se mantiene por si cambia.
	denominator := 100 - p
	if denominator <= 0 {
		res.InNA = true
		return res
	}
	res.In = p / denominator * l
	if !finite(res.Auf, res.In) {
		return PercentResult{}
	}
	return res
}
