package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/catppuccin/form"
)

// toLipgloss converts a registered form style into a renderable lipgloss
// style. The Reset attribute has no terminal-level equivalent here: lipgloss
// styles do not inherit, so there is nothing to drop.
func toLipgloss(s form.Style) lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.Fg != "" {
		style = style.Foreground(lipgloss.Color(string(s.Fg)))
	}
	if s.Bg != "" {
		style = style.Background(lipgloss.Color(string(s.Bg)))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	if s.Underline {
		style = style.Underline(true)
	}
	if s.Reverse {
		style = style.Reverse(true)
	}
	if s.CrossedOut {
		style = style.Strikethrough(true)
	}
	return style
}

func swatch(c form.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c))).Render("██")
}
