package cellar

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DosagePlaceholder se muestra en lugar de "0,0000" en la calculadora de
// reserva dulce: cero también es el valor previo al envío.
const DosagePlaceholder = "---"

// FormatComma redondea v a places decimales y usa coma como separador.
// NaN e infinito no tienen representación y dan "".
func FormatComma(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	s := decimal.NewFromFloat(v).StringFixed(places)
	return strings.Replace(s, ".", ",", 1)
}

// FormatConverter formato de los conversores y del promedio de lotes (2 decimales).
func FormatConverter(v float64) string { return FormatComma(v, 2) }

// FormatDosage formato de la regla de mezcla: 4 decimales, cero como guion.
func FormatDosage(v float64) string {
	if v == 0 {
		return DosagePlaceholder
	}
	return FormatComma(v, 4)
}

// FormatNumber formatea un Number; vacío si no es válido.
func FormatNumber(n Number) string {
	if !n.Ok() {
		return ""
	}
	return FormatConverter(n.Value)
}
