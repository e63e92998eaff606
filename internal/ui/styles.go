// Package ui is the terminal storefront: a bubbletea program whose pages
// mirror the shopping journey from browsing through checkout, plus the staff
// console.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#5A56E0")
	colorAccent  = lipgloss.Color("#F2B705")
	colorMuted   = lipgloss.Color("244")
	colorError   = lipgloss.Color("#E5484D")
	colorSuccess = lipgloss.Color("#46A758")
	colorBorder  = lipgloss.Color("240")
)

// Styles collects the lipgloss styles shared by every page.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style

	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Badge        lipgloss.Style
	Price        lipgloss.Style
	Strike       lipgloss.Style

	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Pager     lipgloss.Style
	Bar       lipgloss.Style
}

func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Subtitle: lipgloss.NewStyle().Foreground(colorAccent),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Success:  lipgloss.NewStyle().Foreground(colorSuccess),

		Card:         card,
		SelectedCard: card.Copy().BorderForeground(colorPrimary),
		Badge:        lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Price:        lipgloss.NewStyle().Bold(true),
		Strike:       lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted),

		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorPrimary),
		Pager:     lipgloss.NewStyle().Foreground(colorMuted),
		Bar:       lipgloss.NewStyle().Foreground(colorPrimary),
	}
}
