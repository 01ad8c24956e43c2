package catppuccin

// Flavor selects one of the four Catppuccin palette variants. The zero value
// is Mocha.
type Flavor int

const (
	FlavorMocha Flavor = iota
	FlavorLatte
	FlavorFrappe
	FlavorMacchiato
)

// Flavors lists every flavor in the order schemes are registered.
var Flavors = []Flavor{FlavorLatte, FlavorFrappe, FlavorMacchiato, FlavorMocha}

// String returns the lowercase flavor name used in scheme names.
func (f Flavor) String() string {
	switch f {
	case FlavorLatte:
		return "latte"
	case FlavorFrappe:
		return "frappe"
	case FlavorMacchiato:
		return "macchiato"
	default:
		return "mocha"
	}
}

// Dark reports whether the flavor is a dark variant. Latte is the only
// light one.
func (f Flavor) Dark() bool {
	return f != FlavorLatte
}

// ParseFlavor resolves a flavor by its lowercase name.
func ParseFlavor(name string) (Flavor, bool) {
	switch name {
	case "latte":
		return FlavorLatte, true
	case "frappe":
		return FlavorFrappe, true
	case "macchiato":
		return FlavorMacchiato, true
	case "mocha":
		return FlavorMocha, true
	}
	return FlavorMocha, false
}
