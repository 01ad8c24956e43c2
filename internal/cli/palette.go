package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/catppuccin"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
}

var paletteCmd = &cobra.Command{
	Use:   "palette [flavor]",
	Short: "Print the 26 palette colors of one flavor",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		flavor := cfg.Flavor
		if len(args) == 1 {
			parsed, ok := catppuccin.ParseFlavor(args[0])
			if !ok {
				return fmt.Errorf("unknown flavor %q (expected latte, frappe, macchiato, or mocha)", args[0])
			}
			flavor = parsed
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "catppuccin-%s\n\n", flavor)
		for _, slot := range catppuccin.Lookup(flavor).Slots() {
			block := lipgloss.NewStyle().
				Foreground(lipgloss.Color(string(slot.Color))).
				Render("████")
			fmt.Fprintf(out, "%s  %-10s %s\n", block, slot.Name, slot.Color)
		}
		return nil
	},
}
