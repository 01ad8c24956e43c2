// Package tui implements the colorscheme preview interface.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/catppuccin"
	"github.com/opencode-ai/catppuccin/form"
)

// Config selects what the preview starts with.
type Config struct {
	Plugin catppuccin.Plugin
	Flavor catppuccin.Flavor
}

// Run launches the preview program.
func Run(cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

const (
	minWidth    = 60
	minHeight   = 20
	sampleWidth = 26
	columns     = 3
)

type model struct {
	width  int
	height int

	plugin    catppuccin.Plugin
	flavorIdx int

	resolved *form.MemoryRegistry
	applyErr error
}

func newModel(cfg Config) model {
	m := model{plugin: cfg.Plugin}
	for i, flavor := range catppuccin.Flavors {
		if flavor == cfg.Flavor {
			m.flavorIdx = i
		}
	}
	m.resolve()
	return m
}

// resolve applies the selected scheme to a fresh registry. Resolution is
// cheap and idempotent, so flavor switches simply re-resolve.
func (m *model) resolve() {
	reg := form.NewMemoryRegistry()
	m.applyErr = m.plugin.Scheme(m.flavor()).Apply(reg)
	m.resolved = reg
}

func (m model) flavor() catppuccin.Flavor {
	return catppuccin.Flavors[m.flavorIdx]
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.flavorIdx = (m.flavorIdx + len(catppuccin.Flavors) - 1) % len(catppuccin.Flavors)
			m.resolve()
		case "right", "l", "tab":
			m.flavorIdx = (m.flavorIdx + 1) % len(catppuccin.Flavors)
			m.resolve()
		case "1", "2", "3", "4":
			m.flavorIdx = int(msg.String()[0] - '1')
			m.resolve()
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("Terminal too small (%dx%d). Need at least %dx%d.\n",
				m.width, m.height, minWidth, minHeight)
		}
	}
	if m.applyErr != nil {
		return fmt.Sprintf("Failed to resolve %s: %v\n", m.flavor(), m.applyErr)
	}

	palette := catppuccin.Lookup(m.flavor())

	lines := []string{
		m.tabLine(),
		"",
		m.paletteLine(palette),
		"",
	}
	lines = append(lines, m.formColumns()...)
	lines = append(lines, "", m.helpLine(palette))

	return strings.Join(lines, "\n") + "\n"
}

// tabLine renders one tab per scheme, the active one highlighted with its
// own palette.
func (m model) tabLine() string {
	tabs := make([]string, 0, len(catppuccin.Flavors))
	for i, flavor := range catppuccin.Flavors {
		name := "catppuccin-" + flavor.String()
		if i == m.flavorIdx {
			p := catppuccin.Lookup(flavor)
			active := lipgloss.NewStyle().
				Foreground(lipgloss.Color(string(p.Mauve))).
				Bold(true).
				Underline(true)
			tabs = append(tabs, active.Render(name))
			continue
		}
		tabs = append(tabs, name)
	}
	return strings.Join(tabs, "  ")
}

func (m model) paletteLine(p catppuccin.Palette) string {
	var b strings.Builder
	for _, slot := range p.Slots() {
		b.WriteString(swatch(slot.Color))
	}
	return b.String()
}

// formColumns renders every resolved form name in its own style, flowed
// top-to-bottom into a fixed number of columns.
func (m model) formColumns() []string {
	names := m.resolved.Names()
	rows := (len(names) + columns - 1) / columns

	cols := make([]string, 0, columns)
	for c := 0; c < columns; c++ {
		var cells []string
		for r := 0; r < rows; r++ {
			i := c*rows + r
			if i >= len(names) {
				break
			}
			style, _ := m.resolved.Get(names[i])
			cell := toLipgloss(style).Render(names[i])
			cells = append(cells, lipgloss.NewStyle().Width(sampleWidth).Render(cell))
		}
		cols = append(cols, strings.Join(cells, "\n"))
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	return strings.Split(joined, "\n")
}

func (m model) helpLine(p catppuccin.Palette) string {
	help := "←/→ or 1-4 switch flavor | q quit"
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(p.Overlay1))).Render(help)
}
