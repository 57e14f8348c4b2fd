package repl

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorMuted   = lipgloss.Color("#94A3B8") // Slate 400

	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)
)

// Banner renders the session header. Without color only the frame is drawn.
func Banner(color bool) string {
	title, sub := LogoStyle, SubHeaderStyle
	box := BoxStyle
	if !color {
		title, sub = lipgloss.NewStyle(), lipgloss.NewStyle()
		box = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Center,
		title.Render("monkey"),
		sub.Render("parse · inspect · tokenize"),
	))
}
