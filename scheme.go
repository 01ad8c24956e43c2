package catppuccin

import "github.com/opencode-ai/catppuccin/form"

// scheme is one flavor bound to the shared plugin options. It implements
// form.ColorScheme.
type scheme struct {
	flavor       Flavor
	noBackground bool
	modify       ModifyFunc
}

// Name returns the scheme name exposed to the host, e.g. "catppuccin-mocha".
func (s scheme) Name() string {
	return "catppuccin-" + s.flavor.String()
}

// Apply resolves the scheme into reg: the Default form first, then the fixed
// form table, then the user's modifications. Upsert semantics mean later
// registrations win, so the modify callback can override any base entry.
// Applying twice with the same options is idempotent.
func (s scheme) Apply(reg form.Registry) error {
	c := Lookup(s.flavor)

	def := form.Style{Fg: c.Text}
	if !s.noBackground {
		def.Bg = c.Base
	}
	if err := reg.Set("Default", def); err != nil {
		return err
	}

	if err := reg.SetMany(baseForms(c)); err != nil {
		return err
	}

	if s.modify != nil {
		s.modify(reg, c)
	}
	return nil
}

// baseForms maps palette slots onto every form name except Default. The
// order and slot assignments are fixed; changing either breaks visual
// compatibility with existing configurations.
func baseForms(c Palette) []form.Assignment {
	return []form.Assignment{
		// Editor core indicators
		{Name: "DefaultOk", Style: form.Style{Fg: c.Sapphire}},
		{Name: "AccentOk", Style: form.Style{Fg: c.Sky, Bold: true}},
		{Name: "DefaultErr", Style: form.Style{Fg: c.Maroon}},
		{Name: "AccentErr", Style: form.Style{Fg: c.Red, Bold: true}},
		{Name: "DefaultHint", Style: form.Style{Fg: c.Text}},
		{Name: "AccentHint", Style: form.Style{Fg: c.Subtext0, Bold: true}},
		{Name: "MainCursor", Style: form.Style{Reverse: true}},
		{Name: "ExtraCursor", Style: form.Style{Reverse: true}},
		{Name: "MainSelection", Style: form.Style{Fg: c.Base, Bg: c.Overlay1}},
		{Name: "ExtraSelection", Style: form.Style{Fg: c.Base, Bg: c.Overlay0}},
		{Name: "Inactive", Style: form.Style{Fg: c.Overlay2}},
		// Gutter and status line
		{Name: "LineNum", Style: form.Style{Fg: c.Overlay2}},
		{Name: "MainLineNum", Style: form.Style{Fg: c.Yellow}},
		{Name: "WrappedLineNum", Style: form.Style{Fg: c.Teal}},
		{Name: "File", Style: form.Style{Fg: c.Yellow}},
		{Name: "Selections", Style: form.Style{Fg: c.Blue}},
		{Name: "Coord", Style: form.Style{Fg: c.Peach}},
		{Name: "Separator", Style: form.Style{Fg: c.Teal}},
		{Name: "Mode", Style: form.Style{Fg: c.Green}},
		// Syntax highlighting
		{Name: "type", Style: form.Style{Fg: c.Yellow, Italic: true}},
		{Name: "type.builtin", Style: form.Style{Fg: c.Yellow, Reset: true}},
		{Name: "function", Style: form.Style{Fg: c.Blue, Reset: true}},
		{Name: "comment", Style: form.Style{Fg: c.Overlay1}},
		{Name: "comment.documentation", Style: form.Style{Fg: c.Overlay1, Bold: true}},
		{Name: "punctuation.bracket", Style: form.Style{Fg: c.Subtext0}},
		{Name: "punctuation.delimiter", Style: form.Style{Fg: c.Subtext0}},
		{Name: "constant", Style: form.Style{Fg: c.Overlay1}},
		{Name: "constant.builtin", Style: form.Style{Fg: c.Peach}},
		{Name: "character", Style: form.Style{Fg: c.Peach}},
		{Name: "number", Style: form.Style{Fg: c.Peach}},
		{Name: "variable.parameter", Style: form.Style{Italic: true}},
		{Name: "variable.builtin", Style: form.Style{Fg: c.Peach}},
		{Name: "label", Style: form.Style{Fg: c.Green}},
		{Name: "keyword", Style: form.Style{Fg: c.Mauve}},
		{Name: "string", Style: form.Style{Fg: c.Green}},
		{Name: "escape", Style: form.Style{Fg: c.Peach}},
		{Name: "attribute", Style: form.Style{Fg: c.Mauve}},
		{Name: "operator", Style: form.Style{Fg: c.Sapphire}},
		{Name: "constructor", Style: form.Style{Fg: c.Peach}},
		{Name: "module", Style: form.Style{Fg: c.Blue, Italic: true}},
		// Markup and prose
		{Name: "markup", Style: form.Style{}},
		{Name: "markup.strong", Style: form.Style{Fg: c.Maroon, Bold: true}},
		{Name: "markup.italic", Style: form.Style{Fg: c.Maroon, Italic: true}},
		{Name: "markup.strikethrough", Style: form.Style{CrossedOut: true}},
		{Name: "markup.underline", Style: form.Style{Underline: true}},
		{Name: "markup.heading", Style: form.Style{Fg: c.Blue, Bold: true}},
		{Name: "markup.math", Style: form.Style{Fg: c.Yellow}},
		{Name: "markup.quote", Style: form.Style{Fg: c.Maroon, Bold: true}},
		{Name: "markup.environment", Style: form.Style{Fg: c.Pink}},
		{Name: "markup.environment.name", Style: form.Style{Fg: c.Blue}},
		{Name: "markup.link", Style: form.Style{Fg: c.Lavender, Underline: true}},
		{Name: "markup.raw", Style: form.Style{Fg: c.Teal}},
		{Name: "markup.list", Style: form.Style{Fg: c.Yellow}},
		{Name: "markup.list.checked", Style: form.Style{Fg: c.Green}},
		{Name: "markup.list.unchecked", Style: form.Style{Fg: c.Overlay1}},
		// Plugin and UI chrome
		{Name: "VertRule", Style: form.Style{Fg: c.Subtext0}},
		{Name: "Frame", Style: form.Style{Fg: c.Subtext0, Bg: c.Base}},
	}
}
