package form

// SchemeList is an ordered, in-memory SchemeRegistry. Adding a scheme whose
// name is already present replaces it in place, keeping the original
// position.
type SchemeList struct {
	schemes []ColorScheme
}

// AddColorscheme adds or replaces a scheme by name.
func (l *SchemeList) AddColorscheme(scheme ColorScheme) {
	for i, existing := range l.schemes {
		if existing.Name() == scheme.Name() {
			l.schemes[i] = scheme
			return
		}
	}
	l.schemes = append(l.schemes, scheme)
}

// Get returns the scheme registered under name.
func (l *SchemeList) Get(name string) (ColorScheme, bool) {
	for _, scheme := range l.schemes {
		if scheme.Name() == name {
			return scheme, true
		}
	}
	return nil, false
}

// Names returns the scheme names in registration order.
func (l *SchemeList) Names() []string {
	names := make([]string, len(l.schemes))
	for i, scheme := range l.schemes {
		names[i] = scheme.Name()
	}
	return names
}

// All returns the schemes in registration order.
func (l *SchemeList) All() []ColorScheme {
	out := make([]ColorScheme, len(l.schemes))
	copy(out, l.schemes)
	return out
}

// Len returns the number of registered schemes.
func (l *SchemeList) Len() int {
	return len(l.schemes)
}
