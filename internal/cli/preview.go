package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/catppuccin/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the colorschemes in a full-screen preview",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if IsNonInteractive() {
			return errors.New("preview requires an interactive terminal; use 'list' or 'palette' instead")
		}

		logger := newLogger(cfg.LogLevel)
		logger.Debug().
			Str("flavor", cfg.Flavor.String()).
			Bool("no_background", cfg.NoBackground).
			Msg("launching preview")

		return tui.Run(tui.Config{
			Plugin: buildPlugin(cfg),
			Flavor: cfg.Flavor,
		})
	},
}
