package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain/cellar"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
)

// Model programa completo: menú de calculadoras y formulario activo.
// Salir de un formulario descarta lo escrito.
type Model struct {
	uc     *usecase.CalculatorUseCase
	pref   *i18n.Preference
	styles Styles

	calcs  []dto.CalculatorDTO
	cursor int
	form   *FormModel
	err    string
}

// New crea el modelo con el idioma actual de pref.
func New(uc *usecase.CalculatorUseCase, pref *i18n.Preference) Model {
	return Model{
		uc:     uc,
		pref:   pref,
		styles: DefaultStyles(),
		calcs:  uc.Calculators(pref.Get()),
	}
}

// Init implementa tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Active calculadora abierta, vacío en el menú.
func (m Model) Active() cellar.CalculatorID {
	if m.form == nil {
		return ""
	}
	return m.form.ID()
}

// Form formulario abierto, nil en el menú.
func (m Model) Form() *FormModel { return m.form }

// Language idioma actual.
func (m Model) Language() i18n.Language { return m.pref.Get() }

// Update implementa tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if _, ok := msg.(backMsg); ok {
		m.form = nil
		return m, nil
	}

	if m.form != nil {
		f, cmd := m.form.Update(msg)
		m.form = &f
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.calcs)-1 {
			m.cursor++
		}
	case "l":
		m.cycleLanguage()
	case "enter":
		return m.open(cellar.CalculatorID(m.calcs[m.cursor].ID))
	}
	return m, nil
}

func (m *Model) cycleLanguage() {
	cur := m.pref.Get()
	next := i18n.Supported[0]
	for i, l := range i18n.Supported {
		if l == cur {
			next = i18n.Supported[(i+1)%len(i18n.Supported)]
			break
		}
	}
	if _, err := m.pref.Set(string(next)); err != nil {
		m.err = err.Error()
		return
	}
	m.calcs = m.uc.Calculators(next)
}

func (m Model) open(id cellar.CalculatorID) (tea.Model, tea.Cmd) {
	f, err := NewForm(id, m.uc, m.pref.Get(), m.styles)
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.err = ""
	m.form = &f
	return m, nil
}

// View implementa tea.Model.
func (m Model) View() string {
	if m.form != nil {
		return m.form.View() + "\n"
	}

	lang := m.pref.Get()
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Weinrechner"))
	sb.WriteString("\n")
	for i, c := range m.calcs {
		if i == m.cursor {
			sb.WriteString(m.styles.Selected.Render("> " + c.Title))
		} else {
			sb.WriteString("  " + c.Title)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n" + i18n.Message(lang, i18n.MsgLanguage) + ": " + string(lang) + "\n")
	if m.err != "" {
		sb.WriteString(m.styles.Error.Render(m.err) + "\n")
	}
	sb.WriteString(m.styles.Help.Render(i18n.Message(lang, i18n.MsgHelpMenu)))
	return sb.String() + "\n"
}
