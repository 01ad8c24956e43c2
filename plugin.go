package catppuccin

import "github.com/opencode-ai/catppuccin/form"

// ModifyFunc customizes forms after a scheme's base table has been
// registered. It receives the registry the scheme was applied to and the
// resolved palette; any registration it performs replaces the base entry of
// the same name. It may be invoked once per flavor, on whatever goroutine
// the host activates plugins on, so it must not rely on exclusive access to
// anything beyond the registry's own guarantees.
type ModifyFunc func(reg form.Registry, colors Palette)

// Plugin adds the four Catppuccin colorschemes to a host. Options are shared
// across all flavors: one no-background setting, one modify callback.
type Plugin struct {
	noBackground bool
	modify       ModifyFunc
}

// New returns a plugin with the background enabled and no modifications.
func New() Plugin {
	return Plugin{}
}

// NoBackground returns a copy of the plugin whose Default form carries no
// background color. Useful with transparent terminals. Only the Default form
// is affected; forms with an explicit background, like Frame, keep it.
func (p Plugin) NoBackground() Plugin {
	p.noBackground = true
	return p
}

// Modify returns a copy of the plugin with fn layered on top of every
// flavor's base table.
//
//	plug := catppuccin.New().Modify(func(reg form.Registry, c catppuccin.Palette) {
//		reg.Set("punctuation.delimiter", form.Style{Fg: c.Red})
//	})
func (p Plugin) Modify(fn ModifyFunc) Plugin {
	p.modify = fn
	return p
}

// Plug registers one colorscheme per flavor with the host. Each scheme holds
// the same options and callback; resolution happens later, when the host
// applies a scheme.
func (p Plugin) Plug(schemes form.SchemeRegistry) {
	for _, flavor := range Flavors {
		schemes.AddColorscheme(scheme{
			flavor:       flavor,
			noBackground: p.noBackground,
			modify:       p.modify,
		})
	}
}

// Scheme returns a single flavor bound to the plugin's options without
// registering it anywhere.
func (p Plugin) Scheme(flavor Flavor) form.ColorScheme {
	return scheme{flavor: flavor, noBackground: p.noBackground, modify: p.modify}
}
