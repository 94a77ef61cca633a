package ui

import "github.com/charmbracelet/lipgloss"

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted  = ac("240", "243")
	colorAccent = ac("25", "117")
	colorDone   = ac("244", "241")
)

type styles struct {
	Title       lipgloss.Style
	Cursor      lipgloss.Style
	Text        lipgloss.Style
	Done        lipgloss.Style
	Placeholder lipgloss.Style
	Stats       lipgloss.Style
	Status      lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:       lipgloss.NewStyle().Bold(true),
		Cursor:      lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Text:        lipgloss.NewStyle(),
		Done:        lipgloss.NewStyle().Strikethrough(true).Foreground(colorDone),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		Stats:       lipgloss.NewStyle().Foreground(colorMuted),
		Status:      lipgloss.NewStyle().Foreground(colorAccent),
	}
}
