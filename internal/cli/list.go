package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/catppuccin"
	"github.com/opencode-ai/catppuccin/form"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available colorschemes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var schemes form.SchemeList
		buildPlugin(cfg).Plug(&schemes)

		headers := []string{"SCHEME", "FLAVOR", "VARIANT", "BASE", "TEXT", "DEFAULT BG"}
		rows := make([][]string, 0, schemes.Len())
		for _, scheme := range schemes.All() {
			name := scheme.Name()
			flavor, _ := catppuccin.ParseFlavor(strings.TrimPrefix(name, "catppuccin-"))
			palette := catppuccin.Lookup(flavor)

			variant := "light"
			if flavor.Dark() {
				variant = "dark"
			}
			rows = append(rows, []string{
				name,
				flavor.String(),
				variant,
				string(palette.Base),
				string(palette.Text),
				formatYesNo(!cfg.NoBackground),
			})
		}
		return writeTable(cmd.OutOrStdout(), headers, rows)
	},
}
