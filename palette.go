// Package catppuccin implements the Catppuccin colorschemes as an editor
// plugin: four palette flavors, each resolved into the fixed set of named
// forms the renderer consumes.
package catppuccin

import "github.com/opencode-ai/catppuccin/form"

// Palette holds the 26 named colors of one flavor. Every flavor instantiates
// the same slots; only the values differ.
type Palette struct {
	Rosewater form.Color
	Flamingo  form.Color
	Pink      form.Color
	Mauve     form.Color
	Red       form.Color
	Maroon    form.Color
	Peach     form.Color
	Yellow    form.Color
	Green     form.Color
	Teal      form.Color
	Sky       form.Color
	Sapphire  form.Color
	Blue      form.Color
	Lavender  form.Color
	Text      form.Color
	Subtext1  form.Color
	Subtext0  form.Color
	Overlay2  form.Color
	Overlay1  form.Color
	Overlay0  form.Color
	Surface2  form.Color
	Surface1  form.Color
	Surface0  form.Color
	Base      form.Color
	Mantle    form.Color
	Crust     form.Color
}

// Slot is one named palette color, used when iterating a palette in its
// canonical order.
type Slot struct {
	Name  string
	Color form.Color
}

// Slots returns the palette colors in canonical order, accents first.
func (p Palette) Slots() []Slot {
	return []Slot{
		{"rosewater", p.Rosewater},
		{"flamingo", p.Flamingo},
		{"pink", p.Pink},
		{"mauve", p.Mauve},
		{"red", p.Red},
		{"maroon", p.Maroon},
		{"peach", p.Peach},
		{"yellow", p.Yellow},
		{"green", p.Green},
		{"teal", p.Teal},
		{"sky", p.Sky},
		{"sapphire", p.Sapphire},
		{"blue", p.Blue},
		{"lavender", p.Lavender},
		{"text", p.Text},
		{"subtext1", p.Subtext1},
		{"subtext0", p.Subtext0},
		{"overlay2", p.Overlay2},
		{"overlay1", p.Overlay1},
		{"overlay0", p.Overlay0},
		{"surface2", p.Surface2},
		{"surface1", p.Surface1},
		{"surface0", p.Surface0},
		{"base", p.Base},
		{"mantle", p.Mantle},
		{"crust", p.Crust},
	}
}

// Lookup returns the palette for a flavor. The switch is exhaustive over the
// closed enumeration; unknown values fall back to the Mocha default.
func Lookup(f Flavor) Palette {
	switch f {
	case FlavorLatte:
		return Latte
	case FlavorFrappe:
		return Frappe
	case FlavorMacchiato:
		return Macchiato
	default:
		return Mocha
	}
}
