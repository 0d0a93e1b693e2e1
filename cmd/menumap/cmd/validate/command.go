// Package validate provides the validate command, which loads the dataset
// and reports what it contains without starting a server.
package validate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/menumap/cmd/application"
	"github.com/agentstation/menumap/internal/cmd/emoji"
	"github.com/agentstation/menumap/internal/cmd/output"
	"github.com/agentstation/menumap/internal/cmd/table"
	"github.com/agentstation/menumap/pkg/menus"
)

// Report summarizes a dataset that loaded successfully.
type Report struct {
	Source      string `json:"source" yaml:"source"`
	Layout      string `json:"layout" yaml:"layout"`
	Restaurants int    `json:"restaurants" yaml:"restaurants"`
	Items       int    `json:"items" yaml:"items"`
	EmptyMenus  int    `json:"empty_menus" yaml:"empty_menus"`
}

// NewCommand creates the validate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "core",
		Short:   "Load the dataset and report its layout and size",
		Long: `Validate loads the dataset exactly as the server would at startup.

A dataset that fails to load (missing file, malformed JSON or YAML, missing
required field, duplicate id) is reported and the command exits
with a non-zero status.`,
		Example: `  menumap validate --data ./data/restaurant_menu_data.json
  menumap validate --details
  menumap validate -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := app.Dataset()
			if err != nil {
				app.Logger().Debug().Err(err).Msg("Dataset failed validation")
				return err
			}

			details, _ := cmd.Flags().GetBool("details")
			return printReport(cmd.OutOrStdout(), ds, output.DetectFormat(app.OutputFormat()), details)
		},
	}

	cmd.Flags().Bool("details", false, "also list every restaurant with its item count and menu total")

	return cmd
}

// NewReport builds the report for ds.
func NewReport(ds *menus.Dataset) Report {
	report := Report{
		Source:      ds.Source(),
		Layout:      ds.Layout().String(),
		Restaurants: ds.Len(),
	}
	for _, r := range ds.Restaurants() {
		report.Items += len(r.Menus)
		if len(r.Menus) == 0 {
			report.EmptyMenus++
		}
	}
	return report
}

func printReport(w io.Writer, ds *menus.Dataset, format output.Format, details bool) error {
	report := NewReport(ds)

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.FormatAny(w, report, format)
	}

	fmt.Fprintf(w, "%s Dataset is valid\n", emoji.Success)
	fmt.Fprintf(w, "  source:      %s\n", report.Source)
	fmt.Fprintf(w, "  layout:      %s\n", report.Layout)
	fmt.Fprintf(w, "  restaurants: %d\n", report.Restaurants)
	fmt.Fprintf(w, "  menu items:  %d\n", report.Items)
	if report.EmptyMenus > 0 {
		fmt.Fprintf(w, "%s %d restaurant(s) have an empty menu\n", emoji.Info, report.EmptyMenus)
	}

	if !details || report.Restaurants == 0 {
		return nil
	}

	fmt.Fprintln(w)
	return output.FormatAny(w, detailTable(ds.Restaurants()), output.FormatTable)
}

func detailTable(restaurants []menus.Restaurant) table.Data {
	rows := make([][]string, 0, len(restaurants))
	for _, r := range restaurants {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Name,
			strconv.Itoa(len(r.Menus)),
			table.Total(r.Menus),
		})
	}
	return table.Data{
		Headers:         []string{"ID", "Name", "Items", "Total"},
		Rows:            rows,
		ColumnAlignment: []table.Align{table.AlignRight, table.AlignLeft, table.AlignRight, table.AlignRight},
	}
}
