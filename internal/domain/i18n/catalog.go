package i18n

import "github.com/jhoicas/weinrechner/internal/domain/cellar"

// CalculatorLabels textos de una calculadora.
type CalculatorLabels struct {
	Title   string            `json:"title"`
	Hint    string            `json:"hint"`
	Formula string            `json:"formula"`
	Fields  map[string]string `json:"fields"`
	Results map[string]string `json:"results"`
}

// Labels catálogo completo de un idioma.
type Labels struct {
	Language    Language                                `json:"language"`
	Calculators map[cellar.CalculatorID]CalculatorLabels `json:"calculators"`
	Messages    map[string]string                       `json:"messages"`
}

// Claves de resultados usadas en Results.
const (
	ResultVol         = "vol"
	ResultGL          = "gl"
	ResultAuf         = "auf"
	ResultIn          = "in"
	ResultSRLiters    = "liter_SR"
	ResultTotalLiters = "gesamt_Liter"
	ResultBlendLiters = "total_liters"
	ResultAvgSugar    = "avg_sugar"
	ResultAvgAlcohol  = "avg_alcohol"
)

// Claves de campos de los conversores (la regla de mezcla y los lotes usan los
// nombres de campo de cellar).
const (
	FieldGL      = "gl"
	FieldVol     = "vol"
	FieldPercent = "percent"
	FieldLiters  = "liters"
)

// Claves de textos de interfaz en Messages.
const (
	MsgCalculate = "calculate"
	MsgBatch     = "batch"
	MsgHelpMenu  = "help_menu"
	MsgHelpForm  = "help_form"
	MsgLanguage  = "language"
	MsgInputs    = "inputs"
	MsgResults   = "results"
)

var catalogs = map[Language]Labels{
	EN: {
		Language: EN,
		Calculators: map[cellar.CalculatorID]CalculatorLabels{
			cellar.CalcAlcohol: {
				Title:   "Alcohol conversion",
				Hint:    "Enter g/l or % vol; the other value is calculated while you type.",
				Formula: "% vol = g/l × 0.1267   |   g/l = % vol ÷ 0.1267",
				Fields:  map[string]string{FieldGL: "Alcohol (g/l)", FieldVol: "Alcohol (% vol)"},
				Results: map[string]string{ResultVol: "% vol", ResultGL: "g/l"},
			},
			cellar.CalcPercent: {
				Title:   "Sweet reserve by percentage",
				Hint:    "Desired sweet reserve share and base wine volume.",
				Formula: "SR on = P ÷ 100 × L   |   SR in = P ÷ (100 − P) × L",
				Fields:  map[string]string{FieldPercent: "Sweet reserve (%)", FieldLiters: "Base wine (L)"},
				Results: map[string]string{ResultAuf: "Sweet reserve (% on)", ResultIn: "Sweet reserve (% in)"},
			},
			cellar.CalcAlligation: {
				Title:   "Sweet reserve blending",
				Hint:    "Enter the required values and press \"Calculate\".",
				Formula: "L SR = L wine × (target − g/l wine) ÷ (g/l SR − target)",
				Fields: map[string]string{
					cellar.FieldSRGL:       "g/l SR (sweet reserve sugar)",
					cellar.FieldWineGL:     "g/l wine (base wine sugar)",
					cellar.FieldWineLiters: "L wine (base wine liters)",
					cellar.FieldTargetGL:   "Target g/l (target sugar)",
				},
				Results: map[string]string{ResultSRLiters: "Liters of sweet reserve", ResultTotalLiters: "Total liters"},
			},
			cellar.CalcBlend: {
				Title:   "Blend of several wines",
				Hint:    "Up to five batches; batches without liters are ignored.",
				Formula: "Ø = Σ(L × value) ÷ Σ L",
				Fields: map[string]string{
					cellar.FieldBatchLiters:  "Liters",
					cellar.FieldBatchSugar:   "Sugar (g/l)",
					cellar.FieldBatchAlcohol: "Alcohol (g/l)",
				},
				Results: map[string]string{ResultBlendLiters: "Total liters", ResultAvgSugar: "Ø sugar", ResultAvgAlcohol: "Ø alcohol"},
			},
		},
		Messages: map[string]string{
			cellar.CodeRequired:         "Required field",
			cellar.CodeNotANumber:       "Must be a number",
			cellar.CodeNegative:         "Must not be negative",
			cellar.CodeBelowMin:         "Must be greater than 0",
			cellar.CodeSREqualsTarget:   "g/l SR must not equal target g/l",
			cellar.CodeTargetNotBetween: "Target must lie between g/l wine and g/l SR",

			MsgCalculate: "Calculate",
			MsgBatch:     "Wine %d",
			MsgHelpMenu:  "↑/↓ select · enter open · l language · q quit",
			MsgHelpForm:  "tab next field · enter calculate · esc back",
			MsgLanguage:  "Language",
			MsgInputs:    "Input",
			MsgResults:   "Output",
		},
	},
	DE: {
		Language: DE,
		Calculators: map[cellar.CalculatorID]CalculatorLabels{
			cellar.CalcAlcohol: {
				Title:   "Alkohol Umrechnung",
				Hint:    "g/l oder % Vol. eingeben; der andere Wert wird beim Tippen berechnet.",
				Formula: "% Vol. = g/l × 0,1267   |   g/l = % Vol. ÷ 0,1267",
				Fields:  map[string]string{FieldGL: "Alkohol (g/l)", FieldVol: "Alkohol (% Vol.)"},
				Results: map[string]string{ResultVol: "% Vol.", ResultGL: "g/l"},
			},
			cellar.CalcPercent: {
				Title:   "SR auf / in Prozent",
				Hint:    "Gewünschter SR-Anteil und Liter Grundwein.",
				Formula: "SR auf = P ÷ 100 × L   |   SR in = P ÷ (100 − P) × L",
				Fields:  map[string]string{FieldPercent: "Gewünschte % SR", FieldLiters: "Liter Wein"},
				Results: map[string]string{ResultAuf: "Liter SR (% auf)", ResultIn: "Liter SR (% in)"},
			},
			cellar.CalcAlligation: {
				Title:   "SR Verschnittrechner",
				Hint:    "Geben Sie die erforderlichen Werte ein und drücken Sie \"Berechnen\".",
				Formula: "L SR = L Wein × (Ziel − g/l Wein) ÷ (g/l SR − Ziel)",
				Fields: map[string]string{
					cellar.FieldSRGL:       "g/l SR (Süßreserve Zuckergehalt)",
					cellar.FieldWineGL:     "g/l Wein (Grund Wein Zuckergehalt)",
					cellar.FieldWineLiters: "L Wein (Liter Grund Wein)",
					cellar.FieldTargetGL:   "Ziel g/l (Ziel Zuckergehalt des Weins)",
				},
				Results: map[string]string{ResultSRLiters: "Liter SR", ResultTotalLiters: "Gesamt Liter"},
			},
			cellar.CalcBlend: {
				Title:   "Verschnitt mehrerer Weine",
				Hint:    "Bis zu fünf Partien; Partien ohne Liter werden ignoriert.",
				Formula: "Ø = Σ(L × Wert) ÷ Σ L",
				Fields: map[string]string{
					cellar.FieldBatchLiters:  "Liter",
					cellar.FieldBatchSugar:   "Zucker (g/l)",
					cellar.FieldBatchAlcohol: "Alkohol (g/l)",
				},
				Results: map[string]string{ResultBlendLiters: "Gesamt Liter", ResultAvgSugar: "Ø Zucker", ResultAvgAlcohol: "Ø Alkohol"},
			},
		},
		Messages: map[string]string{
			cellar.CodeRequired:         "Pflichtfeld",
			cellar.CodeNotANumber:       "Muss eine Zahl sein",
			cellar.CodeNegative:         "Muss nicht negativ sein",
			cellar.CodeBelowMin:         "Muss größer als 0 sein",
			cellar.CodeSREqualsTarget:   "g/l SR darf nicht gleich Ziel g/l sein",
			cellar.CodeTargetNotBetween: "Zielwert muss zwischen dem g/l Wein und g/l SR liegen",

			MsgCalculate: "Berechnen",
			MsgBatch:     "Wein %d",
			MsgHelpMenu:  "↑/↓ wählen · enter öffnen · l Sprache · q beenden",
			MsgHelpForm:  "tab nächstes Feld · enter berechnen · esc zurück",
			MsgLanguage:  "Sprache",
			MsgInputs:    "Eingabe",
			MsgResults:   "Ergebnis",
		},
	},
	RU: {
		Language: RU,
		Calculators: map[cellar.CalculatorID]CalculatorLabels{
			cellar.CalcAlcohol: {
				Title:   "Пересчёт алкоголя",
				Hint:    "Введите г/л или % об.; второе значение считается при вводе.",
				Formula: "% об. = г/л × 0,1267   |   г/л = % об. ÷ 0,1267",
				Fields:  map[string]string{FieldGL: "Алкоголь (г/л)", FieldVol: "Алкоголь (% об.)"},
				Results: map[string]string{ResultVol: "% об.", ResultGL: "г/л"},
			},
			cellar.CalcPercent: {
				Title:   "Сладкий резерв в процентах",
				Hint:    "Желаемая доля резерва и объём базового вина.",
				Formula: "SR на = P ÷ 100 × L   |   SR в = P ÷ (100 − P) × L",
				Fields:  map[string]string{FieldPercent: "Сладкий резерв (%)", FieldLiters: "Вино (л)"},
				Results: map[string]string{ResultAuf: "Литры резерва (% на)", ResultIn: "Литры резерва (% в)"},
			},
			cellar.CalcAlligation: {
				Title:   "Купаж со сладким резервом",
				Hint:    "Введите значения и нажмите «Рассчитать».",
				Formula: "л SR = л вина × (цель − г/л вина) ÷ (г/л SR − цель)",
				Fields: map[string]string{
					cellar.FieldSRGL:       "г/л SR (сахар резерва)",
					cellar.FieldWineGL:     "г/л вина (сахар базового вина)",
					cellar.FieldWineLiters: "л вина (объём базового вина)",
					cellar.FieldTargetGL:   "Цель г/л (целевой сахар)",
				},
				Results: map[string]string{ResultSRLiters: "Литры резерва", ResultTotalLiters: "Всего литров"},
			},
			cellar.CalcBlend: {
				Title:   "Купаж нескольких вин",
				Hint:    "До пяти партий; партии без литров не учитываются.",
				Formula: "Ø = Σ(л × значение) ÷ Σ л",
				Fields: map[string]string{
					cellar.FieldBatchLiters:  "Литры",
					cellar.FieldBatchSugar:   "Сахар (г/л)",
					cellar.FieldBatchAlcohol: "Алкоголь (г/л)",
				},
				Results: map[string]string{ResultBlendLiters: "Всего литров", ResultAvgSugar: "Ø сахар", ResultAvgAlcohol: "Ø алкоголь"},
			},
		},
		Messages: map[string]string{
			cellar.CodeRequired:         "Обязательное поле",
			cellar.CodeNotANumber:       "Должно быть числом",
			cellar.CodeNegative:         "Не может быть отрицательным",
			cellar.CodeBelowMin:         "Должно быть больше 0",
			cellar.CodeSREqualsTarget:   "г/л SR не может равняться целевому г/л",
			cellar.CodeTargetNotBetween: "Цель должна быть между г/л вина и г/л SR",

			MsgCalculate: "Рассчитать",
			MsgBatch:     "Вино %d",
			MsgHelpMenu:  "↑/↓ выбор · enter открыть · l язык · q выход",
			MsgHelpForm:  "tab следующее поле · enter рассчитать · esc назад",
			MsgLanguage:  "Язык",
			MsgInputs:    "Ввод",
			MsgResults:   "Результат",
		},
	},
}

// Catalog devuelve los textos del idioma; para idiomas desconocidos, los de Default.
func Catalog(lang Language) Labels {
	if l, ok := catalogs[lang]; ok {
		return l
	}
	return catalogs[Default]
}

// Message traduce un código de error de campo.
func Message(lang Language, code string) string {
	if m, ok := Catalog(lang).Messages[code]; ok {
		return m
	}
	return code
}
