package output

import (
	"io"

	"github.com/agentstation/menumap/internal/cmd/table"
	"github.com/agentstation/menumap/pkg/menus"
)

// FormatRestaurants writes restaurants in the given format.
// Table output lists id, name and item count; structured formats carry full records.
func FormatRestaurants(w io.Writer, restaurants []menus.Restaurant, format Format) error {
	var data any = restaurants
	if isTable(format) {
		data = table.RestaurantsToTableData(restaurants)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatMenu writes menu items in the given format.
func FormatMenu(w io.Writer, items []menus.MenuItem, format Format) error {
	var data any = items
	if isTable(format) {
		data = table.MenuToTableData(items, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatAny writes data with the formatter for format.
func FormatAny(w io.Writer, data any, format Format) error {
	return NewFormatter(format).Format(w, data)
}

func isTable(format Format) bool {
	switch format {
	case FormatTable, FormatWide, "":
		return true
	}
	return false
}
