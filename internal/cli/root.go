// Package cli implements the catppuccin command tree.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/catppuccin"
	"github.com/opencode-ai/catppuccin/internal/config"
)

var (
	flagConfig       string
	flagFlavor       string
	flagNoBackground bool
	flagLogLevel     string
)

var rootCmd = &cobra.Command{
	Use:           "catppuccin",
	Short:         "Inspect and preview the Catppuccin colorschemes",
	Long:          "Inspect and preview the four Catppuccin colorscheme flavors: latte, frappe, macchiato, and mocha.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default: $XDG_CONFIG_HOME/catppuccin/config.toml)")
	pf.StringVar(&flagFlavor, "flavor", "", "flavor to use (latte, frappe, macchiato, mocha)")
	pf.BoolVar(&flagNoBackground, "no-background", false, "omit the Default form's background color")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the configuration and layers explicit flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("flavor") {
		flavor, ok := catppuccin.ParseFlavor(strings.ToLower(strings.TrimSpace(flagFlavor)))
		if !ok {
			return nil, fmt.Errorf("unknown flavor %q (expected latte, frappe, macchiato, or mocha)", flagFlavor)
		}
		cfg.Flavor = flavor
	}
	if cmd.Flags().Changed("no-background") {
		cfg.NoBackground = flagNoBackground
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

// buildPlugin translates the configuration into plugin options.
func buildPlugin(cfg *config.Config) catppuccin.Plugin {
	plug := catppuccin.New()
	if cfg.NoBackground {
		plug = plug.NoBackground()
	}
	return plug
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}
