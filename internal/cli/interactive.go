package cli

import (
	"os"

	"golang.org/x/term"
)

// IsNonInteractive reports whether the session lacks a terminal to render
// into.
func IsNonInteractive() bool {
	if _, ok := os.LookupEnv("CATPPUCCIN_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
