package cellar

// AlcoholFactor relación entre g/l de alcohol y % vol.
const AlcoholFactor = 0.1267

// GLToVol convierte g/l a % vol.
func GLToVol(gl float64) float64 { return gl * AlcoholFactor }

// VolToGL convierte % vol a g/l. El divisor es constante, no hay riesgo de división por cero.
func VolToGL(vol float64) float64 { return vol / AlcoholFactor }

// AlcoholConversion resultado de las dos conversiones independientes.
// Un resultado con State != Valid se muestra vacío.
type AlcoholConversion struct {
	Vol Number // calculado desde la entrada g/l
	GL  Number // calculado desde la entrada % vol
}

// ConvertAlcohol evalúa ambos campos del conversor a la vez.
func ConvertAlcohol(glText, volText string) AlcoholConversion {
	return AlcoholConversion{
		Vol: convert(Parse(glText), GLToVol),
		GL:  convert(Parse(volText), VolToGL),
	}
}

// convert aplica fn a una entrada válida; un resultado no finito es Invalid.
func convert(in Number, fn func(float64) float64) Number {
	if !in.Ok() {
		return Number{State: in.State}
	}
	v := fn(in.Value)
	if !finite(v) {
		return Number{State: Invalid}
	}
	return Number{Value: v, State: Valid}
}
