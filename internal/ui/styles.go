package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Pane      lipgloss.Style
	PaneFocus lipgloss.Style
	PaneTitle lipgloss.Style
	Cursor    lipgloss.Style
	Disabled  lipgloss.Style
	Default   lipgloss.Style
	Overlay   lipgloss.Style
	Choice    lipgloss.Style
	Command   lipgloss.Style
	Error     lipgloss.Style
	Faint     lipgloss.Style
	Spinner   lipgloss.Style
}

func defaultStyles() Styles {
	base := lipgloss.NewStyle()
	border := base.Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Styles{
		Title:     base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Subtitle:  base.Faint(true),
		Pane:      border.BorderForeground(lipgloss.Color("#4B5563")),
		PaneFocus: border.BorderForeground(lipgloss.Color("#7D56F4")),
		PaneTitle: base.Bold(true),
		Cursor:    base.Bold(true).Foreground(lipgloss.Color("#22D3EE")),
		Disabled:  base.Faint(true).Strikethrough(true),
		Default:   base.Foreground(lipgloss.Color("#F59E0B")),
		Overlay:   base.Foreground(lipgloss.Color("#D1D5DB")),
		Choice:    base.Reverse(true),
		Command:   border.BorderForeground(lipgloss.Color("#4B5563")).Foreground(lipgloss.Color("#A3A3A3")),
		Error:     base.Foreground(lipgloss.Color("#EF4444")),
		Faint:     base.Faint(true),
		Spinner:   base.Foreground(lipgloss.Color("#22D3EE")),
	}
}
