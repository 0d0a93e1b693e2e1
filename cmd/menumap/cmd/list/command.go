// Package list provides the list command and its subcommands.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/menumap/cmd/application"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "core",
		Short:   "List restaurants and menus from the dataset",
		Long: `List displays data from the loaded restaurant dataset.

Available subcommands:
  restaurants   - every restaurant with its item count
  menu          - the menu of one restaurant, by id or exact name`,
		Example: `  menumap list restaurants
  menumap list restaurants -o json
  menumap list menu 1
  menumap list menu "Burger Place"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewRestaurantsCommand(app))
	cmd.AddCommand(NewMenuCommand(app))

	return cmd
}
