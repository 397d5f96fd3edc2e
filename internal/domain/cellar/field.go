package cellar

// FieldMode política de un campo vacío.
type FieldMode int

const (
	// ZeroDefault vacío o no numérico cuenta como 0 en el cálculo.
	ZeroDefault FieldMode = iota
	// Required el campo debe tener un valor explícito.
	Required
)

func (m FieldMode) String() string {
	if m == Required {
		return "required"
	}
	return "zeroDefault"
}

// Códigos de error de campo. Son independientes del idioma; la traducción
// se hace en la capa de presentación.
const (
	CodeRequired         = "required"
	CodeNotANumber       = "not_a_number"
	CodeNegative         = "negative"
	CodeBelowMin         = "below_min"
	CodeSREqualsTarget   = "sr_equals_target"
	CodeTargetNotBetween = "target_not_between"
)

// FieldError error de validación de un campo concreto.
type FieldError struct {
	Field string
	Code  string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Code }

// FieldRule regla de validación de un campo de formulario.
type FieldRule struct {
	Name string
	Mode FieldMode
	Min  float64
}

// Check interpreta text según la regla. Devuelve el valor a usar en el cálculo
// y, si corresponde, el error del campo.
func (r FieldRule) Check(text string) (float64, *FieldError) {
	v, state := parseSigned(text)
	switch state {
	case Unset:
		if r.Mode == Required {
			return 0, &FieldError{Field: r.Name, Code: CodeRequired}
		}
		return 0, nil
	case Invalid:
		return 0, &FieldError{Field: r.Name, Code: CodeNotANumber}
	}
	if v < r.Min {
		if r.Min <= 0 {
			return v, &FieldError{Field: r.Name, Code: CodeNegative}
		}
		return v, &FieldError{Field: r.Name, Code: CodeBelowMin}
	}
	return v, nil
}

// FieldErrors lista de errores en orden de campos.
type FieldErrors []FieldError

// For devuelve el primer error del campo indicado.
func (fe FieldErrors) For(field string) (FieldError, bool) {
	for _, e := range fe {
		if e.Field == field {
			return e, true
		}
	}
	return FieldError{}, false
}
