package cellar

import (
	"fmt"

	"github.com/jhoicas/weinrechner/internal/domain"
)

// Trigger momento en que una calculadora recalcula.
type Trigger string

const (
	// OnInput recalcula con cada pulsación.
	OnInput Trigger = "input"
	// OnSubmit recalcula solo al enviar el formulario.
	OnSubmit Trigger = "submit"
)

// CalculatorID identificador estable de cada calculadora.
type CalculatorID string

const (
	CalcAlcohol    CalculatorID = "alcohol"
	CalcPercent    CalculatorID = "percent"
	CalcAlligation CalculatorID = "alligation"
	CalcBlend      CalculatorID = "blend"
)

// Calculator descripción de una calculadora navegable.
type Calculator struct {
	ID      CalculatorID
	Route   string
	Trigger Trigger
}

var calculators = []Calculator{
	{ID: CalcAlcohol, Route: "/alc", Trigger: OnInput},
	{ID: CalcPercent, Route: "/", Trigger: OnInput},
	{ID: CalcAlligation, Route: "/srCalc", Trigger: OnSubmit},
	{ID: CalcBlend, Route: "/multiCalc", Trigger: OnSubmit},
}

// Calculators devuelve las calculadoras en orden de menú.
func Calculators() []Calculator {
	out := make([]Calculator, len(calculators))
	copy(out, calculators)
	return out
}

// Lookup busca una calculadora por ID.
func Lookup(id string) (Calculator, error) {
	for _, c := range calculators {
		if string(c.ID) == id {
			return c, nil
		}
	}
	return Calculator{}, fmt.Errorf("%w: %q", domain.ErrUnknownCalculator, id)
}
