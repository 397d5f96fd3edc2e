// Package tui formularios de terminal para las calculadoras (bubbletea).
package tui

import "github.com/charmbracelet/lipgloss"

// Paleta de la bodega.
var (
	ColorWine   = lipgloss.Color("#7b1e3a")
	ColorGold   = lipgloss.Color("#d4a017")
	ColorMuted  = lipgloss.Color("#8a8f98")
	ColorError  = lipgloss.Color("#e53935")
	ColorResult = lipgloss.Color("#8BC34A")
)

// Styles estilos usados por el menú y los formularios.
type Styles struct {
	Title    lipgloss.Style
	Hint     lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Result   lipgloss.Style
	Error    lipgloss.Style
	Formula  lipgloss.Style
	Help     lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles estilos por defecto.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWine).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorGold).
			MarginBottom(1),
		Hint:     lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		Label:    lipgloss.NewStyle().Width(32),
		Focused:  lipgloss.NewStyle().Width(32).Bold(true).Foreground(ColorGold),
		Result:   lipgloss.NewStyle().Bold(true).Foreground(ColorResult),
		Error:    lipgloss.NewStyle().Foreground(ColorError).PaddingLeft(2),
		Formula:  lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1),
		Help:     lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(ColorWine),
	}
}
