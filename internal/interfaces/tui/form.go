package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/weinrechner/internal/domain/cellar"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
)

// backMsg el formulario pide volver al menú.
type backMsg struct{}

// ResultRow línea de resultado ya formateada.
type ResultRow struct {
	Label string
	Value string
}

// outcome resultado de un cálculo: filas o errores por campo.
type outcome struct {
	rows   []ResultRow
	errors map[string]string
}

// computeFunc recalcula a partir de los textos del formulario.
type computeFunc func(values map[string]string) (outcome, error)

type formField struct {
	key   string
	label string
	input textinput.Model
}

// FormModel formulario de una calculadora.
type FormModel struct {
	id      cellar.CalculatorID
	trigger cellar.Trigger
	lang    i18n.Language
	labels  i18n.CalculatorLabels
	fields  []formField
	focus   int
	results []ResultRow
	errors  map[string]string
	failure string
	compute computeFunc
	styles  Styles
}

func newFormModel(calc cellar.Calculator, lang i18n.Language, keys, labels []string, compute computeFunc, styles Styles) FormModel {
	m := FormModel{
		id:      calc.ID,
		trigger: calc.Trigger,
		lang:    lang,
		labels:  i18n.Catalog(lang).Calculators[calc.ID],
		compute: compute,
		styles:  styles,
		errors:  map[string]string{},
	}
	for i, k := range keys {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.CharLimit = 16
		ti.Width = 16
		m.fields = append(m.fields, formField{key: k, label: labels[i], input: ti})
	}
	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
	if m.trigger == cellar.OnInput {
		m.recompute()
	}
	return m
}

// ID calculadora del formulario.
func (m FormModel) ID() cellar.CalculatorID { return m.id }

// Results últimas filas calculadas.
func (m FormModel) Results() []ResultRow { return m.results }

// Errors mensajes de error por campo.
func (m FormModel) Errors() map[string]string { return m.errors }

// Value texto actual de un campo.
func (m FormModel) Value(key string) string {
	for _, f := range m.fields {
		if f.key == key {
			return f.input.Value()
		}
	}
	return ""
}

// Focused campo con el foco.
func (m FormModel) Focused() string {
	if len(m.fields) == 0 {
		return ""
	}
	return m.fields[m.focus].key
}

func (m FormModel) values() map[string]string {
	out := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		out[f.key] = f.input.Value()
	}
	return out
}

func (m *FormModel) recompute() {
	res, err := m.compute(m.values())
	if err != nil {
		m.failure = err.Error()
		return
	}
	m.failure = ""
	m.errors = res.errors
	if m.errors == nil {
		m.errors = map[string]string{}
	}
	// Un envío bloqueado conserva el último resultado válido.
	if len(res.errors) == 0 || m.trigger == cellar.OnInput {
		m.results = res.rows
	}
}

func (m *FormModel) moveFocus(delta int) {
	if len(m.fields) == 0 {
		return
	}
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()
}

// Update maneja teclas del formulario.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return backMsg{} }
		case tea.KeyTab, tea.KeyDown:
			m.moveFocus(1)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.moveFocus(-1)
			return m, nil
		case tea.KeyEnter:
			if m.trigger == cellar.OnSubmit {
				m.recompute()
			} else {
				m.moveFocus(1)
			}
			return m, nil
		}
	}

	if len(m.fields) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	before := m.fields[m.focus].input.Value()
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	if m.trigger == cellar.OnInput && m.fields[m.focus].input.Value() != before {
		m.recompute()
	}
	return m, cmd
}

// View dibuja el formulario.
func (m FormModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.labels.Title))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Hint.Render(m.labels.Hint))
	sb.WriteString("\n\n")

	for i, f := range m.fields {
		label := m.styles.Label
		if i == m.focus {
			label = m.styles.Focused
		}
		sb.WriteString(label.Render(f.label))
		sb.WriteString(f.input.View())
		sb.WriteString("\n")
		if e, ok := m.errors[f.key]; ok {
			sb.WriteString(m.styles.Error.Render(e))
			sb.WriteString("\n")
		}
	}

	if m.trigger == cellar.OnSubmit {
		sb.WriteString("\n[ " + i18n.Message(m.lang, i18n.MsgCalculate) + " ]\n")
	}
	if m.failure != "" {
		sb.WriteString(m.styles.Error.Render(m.failure))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	for _, r := range m.results {
		sb.WriteString(m.styles.Label.Render(r.Label))
		sb.WriteString(m.styles.Result.Render(r.Value))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Formula.Render(m.labels.Formula))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render(i18n.Message(m.lang, i18n.MsgHelpForm)))
	return sb.String()
}
