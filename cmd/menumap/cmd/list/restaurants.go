package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/menumap/cmd/application"
	"github.com/agentstation/menumap/internal/cmd/output"
	"github.com/agentstation/menumap/internal/matcher"
	"github.com/agentstation/menumap/pkg/menus"
)

// NewRestaurantsCommand creates the list restaurants subcommand.
func NewRestaurantsCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "restaurants",
		Aliases: []string{"restaurant", "r"},
		Short:   "List restaurants in source order",
		Args:    cobra.NoArgs,
		Example: `  menumap list restaurants
  menumap list restaurants --search pizza
  menumap list restaurants --search 'B*'
  menumap list restaurants --search '/^(noodle|ramen)/'
  menumap list restaurants -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := app.Dataset()
			if err != nil {
				return err
			}

			search, _ := cmd.Flags().GetString("search")
			limit, _ := cmd.Flags().GetInt("limit")

			restaurants, err := filterRestaurants(ds.Restaurants(), search, limit)
			if err != nil {
				return err
			}
			app.Logger().Debug().
				Int("total", ds.Len()).
				Int("shown", len(restaurants)).
				Msg("Listing restaurants")

			return output.FormatRestaurants(cmd.OutOrStdout(), restaurants, output.DetectFormat(app.OutputFormat()))
		},
	}

	cmd.Flags().String("search", "", "filter names: text, glob (B*) or /regex/, case-insensitive")
	cmd.Flags().Int("limit", 0, "maximum number of restaurants to show (0 for all)")

	return cmd
}

// filterRestaurants keeps source order.
func filterRestaurants(restaurants []menus.Restaurant, search string, limit int) ([]menus.Restaurant, error) {
	filtered := restaurants
	if search != "" {
		m, err := matcher.New(search, matcher.Options{})
		if err != nil {
			return nil, err
		}
		filtered = matcher.Filter(m, restaurants, func(r menus.Restaurant) string { return r.Name })
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}
