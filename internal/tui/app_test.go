package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/catppuccin"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestModelStartsOnConfiguredFlavor(t *testing.T) {
	m := newModel(Config{Plugin: catppuccin.New(), Flavor: catppuccin.FlavorFrappe})
	if m.flavor() != catppuccin.FlavorFrappe {
		t.Errorf("expected frappe start, got %s", m.flavor())
	}
	if m.resolved == nil || m.resolved.Len() == 0 {
		t.Fatal("expected the initial scheme to be resolved")
	}
}

func TestModelFlavorSwitching(t *testing.T) {
	m := newModel(Config{Plugin: catppuccin.New(), Flavor: catppuccin.FlavorLatte})

	t.Run("next wraps", func(t *testing.T) {
		current := m
		for range catppuccin.Flavors {
			next, _ := current.Update(keyMsg("l"))
			current = next.(model)
		}
		if current.flavor() != catppuccin.FlavorLatte {
			t.Errorf("expected wrap back to latte, got %s", current.flavor())
		}
	})

	t.Run("previous wraps", func(t *testing.T) {
		next, _ := m.Update(keyMsg("h"))
		if next.(model).flavor() != catppuccin.FlavorMocha {
			t.Errorf("expected mocha before latte, got %s", next.(model).flavor())
		}
	})

	t.Run("digit selects", func(t *testing.T) {
		next, _ := m.Update(keyMsg("3"))
		if next.(model).flavor() != catppuccin.FlavorMacchiato {
			t.Errorf("expected macchiato for key 3, got %s", next.(model).flavor())
		}
	})
}

func TestModelSwitchReResolves(t *testing.T) {
	m := newModel(Config{Plugin: catppuccin.New(), Flavor: catppuccin.FlavorMocha})
	before, _ := m.resolved.Get("Default")

	next, _ := m.Update(keyMsg("1"))
	after, _ := next.(model).resolved.Get("Default")

	if before.Bg == after.Bg {
		t.Error("expected a flavor switch to resolve different colors")
	}
}

func TestModelQuitKeys(t *testing.T) {
	m := newModel(Config{Plugin: catppuccin.New()})
	for _, key := range []string{"q"} {
		_, cmd := m.Update(keyMsg(key))
		if cmd == nil {
			t.Errorf("expected quit command for %q", key)
		}
	}
	_, cmd := m.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEsc}))
	if cmd == nil {
		t.Error("expected quit command for esc")
	}
}

func TestViewListsForms(t *testing.T) {
	m := newModel(Config{Plugin: catppuccin.New(), Flavor: catppuccin.FlavorMocha})
	m.width = 120
	m.height = 40

	view := m.View()
	for _, name := range []string{"Default", "keyword", "markup.heading", "catppuccin-mocha"} {
		if !strings.Contains(view, name) {
			t.Errorf("expected view to contain %q", name)
		}
	}
}

func TestViewSmallTerminal(t *testing.T) {
	m := newModel(Config{Plugin: catppuccin.New()})
	m.width = 20
	m.height = 5

	if !strings.Contains(m.View(), "too small") {
		t.Error("expected small-terminal notice")
	}
}
