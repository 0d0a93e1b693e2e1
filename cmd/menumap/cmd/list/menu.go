package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/menumap/cmd/application"
	"github.com/agentstation/menumap/internal/cmd/output"
)

// NewMenuCommand creates the list menu subcommand.
func NewMenuCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "menu <id|name>",
		Aliases: []string{"menus", "m"},
		Short:   "Show the menu of one restaurant",
		Long: `Show the menu items of a restaurant in source order.

The key is tried as a numeric id first, then as an exact, case-sensitive name.`,
		Args: cobra.ExactArgs(1),
		Example: `  menumap list menu 2
  menumap list menu "Noodle Bar" -o wide`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := app.Dataset()
			if err != nil {
				return err
			}

			items, err := ds.MenuFor(args[0])
			if err != nil {
				return err
			}

			return output.FormatMenu(cmd.OutOrStdout(), items, output.DetectFormat(app.OutputFormat()))
		},
	}
}
