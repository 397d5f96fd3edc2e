package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain/cellar"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
	"github.com/jhoicas/weinrechner/internal/interfaces/tui"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newApp(lang string) tui.Model {
	return tui.New(usecase.NewCalculatorUseCase(zerolog.Nop()), i18n.NewPreference(lang))
}

func newForm(t *testing.T, id cellar.CalculatorID) tui.FormModel {
	t.Helper()
	f, err := tui.NewForm(id, usecase.NewCalculatorUseCase(zerolog.Nop()), i18n.EN, tui.DefaultStyles())
	require.NoError(t, err)
	return f
}

func typeText(f tui.FormModel, s string) tui.FormModel {
	for _, r := range s {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func press(f tui.FormModel, k tea.KeyType) (tui.FormModel, tea.Cmd) {
	return f.Update(tea.KeyMsg{Type: k})
}

func send(t *testing.T, m tui.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(tui.Model)
	require.True(t, ok)
	return out, cmd
}

// ──────────────────────────────────────────────────────────────────────────────
// Formularios
// ──────────────────────────────────────────────────────────────────────────────

func TestAlcoholForm_RecalculaConCadaTecla(t *testing.T) {
	f := newForm(t, cellar.CalcAlcohol)
	require.Len(t, f.Results(), 2)
	assert.Empty(t, f.Results()[0].Value, "sin entrada no hay resultado")

	f = typeText(f, "1")
	assert.Equal(t, "0,13", f.Results()[0].Value)
	f = typeText(f, "00")
	assert.Equal(t, "12,67", f.Results()[0].Value)
	assert.Empty(t, f.Results()[1].Value)
}

func TestPercentForm_TabCambiaDeCampo(t *testing.T) {
	f := newForm(t, cellar.CalcPercent)
	f = typeText(f, "20")
	f, _ = press(f, tea.KeyTab)
	assert.Equal(t, i18n.FieldLiters, f.Focused())
	f = typeText(f, "100")

	assert.Equal(t, "20", f.Value(i18n.FieldPercent))
	assert.Equal(t, "20,00", f.Results()[0].Value)
	assert.Equal(t, "25,00", f.Results()[1].Value)
}

func TestAlligationForm_SoloCalculaAlEnviar(t *testing.T) {
	f := newForm(t, cellar.CalcAlligation)
	for i, v := range []string{"200", "0", "100", "20"} {
		if i > 0 {
			f, _ = press(f, tea.KeyTab)
		}
		f = typeText(f, v)
	}
	assert.Empty(t, f.Results(), "sin enter no se calcula")

	f, _ = press(f, tea.KeyEnter)
	require.Len(t, f.Results(), 2)
	assert.Equal(t, "11,1111", f.Results()[0].Value)
	assert.Equal(t, "111,1111", f.Results()[1].Value)
	assert.Empty(t, f.Errors())
}

func TestAlligationForm_ErroresConservanResultado(t *testing.T) {
	f := newForm(t, cellar.CalcAlligation)
	for i, v := range []string{"200", "0", "100", "20"} {
		if i > 0 {
			f, _ = press(f, tea.KeyTab)
		}
		f = typeText(f, v)
	}
	f, _ = press(f, tea.KeyEnter)
	require.Len(t, f.Results(), 2)

	// Objetivo igual a g/l SR: envío bloqueado.
	f, _ = press(f, tea.KeyBackspace)
	f, _ = press(f, tea.KeyBackspace)
	f = typeText(f, "200")
	f, _ = press(f, tea.KeyEnter)

	assert.Equal(t, "g/l SR must not equal target g/l", f.Errors()[cellar.FieldTargetGL])
	assert.Equal(t, "11,1111", f.Results()[0].Value)
}

func TestBlendForm_QuinceCampos(t *testing.T) {
	f := newForm(t, cellar.CalcBlend)
	f = typeText(f, "10")
	f, _ = press(f, tea.KeyTab)
	f = typeText(f, "50")
	f, _ = press(f, tea.KeyEnter)

	require.Len(t, f.Results(), 3)
	assert.Equal(t, "10,00", f.Results()[0].Value)
	assert.Equal(t, "50,00", f.Results()[1].Value)
	assert.Equal(t, "0,00", f.Results()[2].Value)

	// shift+tab desde el primer campo va al último (lote 5, alcohol).
	for i := 0; i < 2; i++ {
		f, _ = press(f, tea.KeyShiftTab)
	}
	assert.Equal(t, cellar.BatchFieldName(4, cellar.FieldBatchAlcohol), f.Focused())
}

func TestForm_EscVuelveAlMenu(t *testing.T) {
	f := newForm(t, cellar.CalcPercent)
	_, cmd := press(f, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.NotNil(t, cmd())
}

// ──────────────────────────────────────────────────────────────────────────────
// Menú
// ──────────────────────────────────────────────────────────────────────────────

func TestMenu_AbrirYVolverDescartaEntradas(t *testing.T) {
	m := newApp("en")
	assert.Empty(t, m.Active())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, cellar.CalcPercent, m.Active())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	assert.Equal(t, "5", m.Form().Value(i18n.FieldPercent))

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.Empty(t, m.Active())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.Form().Value(i18n.FieldPercent), "al volver el formulario empieza vacío")
}

func TestMenu_CambioDeIdioma(t *testing.T) {
	m := newApp("en")
	assert.Contains(t, m.View(), "Alcohol conversion")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	assert.Equal(t, i18n.DE, m.Language())
	assert.Contains(t, m.View(), "Alkohol Umrechnung")
}

func TestMenu_SalirConQ(t *testing.T) {
	m := newApp("en")
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
