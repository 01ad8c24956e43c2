package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/catppuccin/form"
)

func TestToLipglossAttributes(t *testing.T) {
	style := toLipgloss(form.Style{
		Fg:         "#cba6f7",
		Bg:         "#1e1e2e",
		Bold:       true,
		Italic:     true,
		Underline:  true,
		CrossedOut: true,
	})

	if !style.GetBold() || !style.GetItalic() || !style.GetUnderline() || !style.GetStrikethrough() {
		t.Error("expected all requested attributes to be set")
	}
	if style.GetForeground() != lipgloss.Color("#cba6f7") {
		t.Errorf("unexpected foreground %v", style.GetForeground())
	}
	if style.GetBackground() != lipgloss.Color("#1e1e2e") {
		t.Errorf("unexpected background %v", style.GetBackground())
	}
}

func TestToLipglossUnsetColors(t *testing.T) {
	style := toLipgloss(form.Style{Reverse: true})

	if !style.GetReverse() {
		t.Error("expected reverse attribute")
	}
	if _, ok := style.GetForeground().(lipgloss.Color); ok {
		t.Error("expected no foreground for an unset slot")
	}
	if _, ok := style.GetBackground().(lipgloss.Color); ok {
		t.Error("expected no background for an unset slot")
	}
}
