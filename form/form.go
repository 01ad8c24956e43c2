// Package form defines the named display styles an editor renderer consumes,
// together with the registry contract colorschemes register them against.
package form

// Color is a hexadecimal RGB color string, e.g. "#cdd6f4". An empty Color
// means the slot is unset and the terminal default applies.
type Color string

// Style is a visual attribute bundle for one named form: an optional
// foreground, an optional background, and boolean text attributes.
type Style struct {
	Fg Color
	Bg Color

	Bold       bool
	Italic     bool
	Underline  bool
	Reverse    bool
	CrossedOut bool

	// Reset drops any attributes inherited from enclosing forms before this
	// style is applied.
	Reset bool
}

// Assignment pairs a form name with the style to register under it.
type Assignment struct {
	Name  string
	Style Style
}
