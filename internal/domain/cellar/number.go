// Package cellar contiene el motor de cálculo de bodega: conversión de alcohol,
// reserva dulce (Süßreserve) por porcentaje y por regla de mezcla, y promedio
// ponderado de varios lotes. Todo es puro y sin estado; la presentación
// (idioma, formato con coma decimal) se aplica fuera de los cálculos.
package cellar

import (
	"math"
	"strconv"
	"strings"
)

// NumberState estado de un valor numérico interpretado desde texto.
type NumberState int

const (
	// Unset el campo está vacío; no equivale a cero.
	Unset NumberState = iota
	// Valid número finito >= 0.
	Valid
	// Invalid texto no numérico, negativo o no finito.
	Invalid
)

func (s NumberState) String() string {
	switch s {
	case Unset:
		return "unset"
	case Valid:
		return "valid"
	default:
		return "invalid"
	}
}

// Number resultado de interpretar una entrada decimal.
type Number struct {
	Value float64
	State NumberState
}

// Ok indica si el número es utilizable en un cálculo.
func (n Number) Ok() bool { return n.State == Valid }

// OrZero devuelve el valor o 0 cuando el número no es válido.
func (n Number) OrZero() float64 {
	if n.State != Valid {
		return 0
	}
	return n.Value
}

// Parse interpreta un texto decimal que admite '.' o ',' como separador.
// Solo se sustituye la primera coma, igual que en el formulario web.
func Parse(text string) Number {
	s := strings.TrimSpace(text)
	if s == "" {
		return Number{State: Unset}
	}
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Number{State: Invalid}
	}
	return Number{Value: v, State: Valid}
}

// finite indica si todos los valores son finitos. Un cálculo cuyo resultado
// desborda float64 se trata igual que una entrada inválida.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// parseSigned como Parse pero conserva los negativos; lo usan las reglas de
// campo para distinguir "no es un número" de "es negativo".
func parseSigned(text string) (float64, NumberState) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, Unset
	}
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, Invalid
	}
	return v, Valid
}
