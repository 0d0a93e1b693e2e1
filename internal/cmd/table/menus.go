// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/agentstation/menumap/pkg/menus"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// RestaurantsToTableData converts restaurants to table format.
func RestaurantsToTableData(restaurants []menus.Restaurant) Data {
	rows := make([][]string, 0, len(restaurants))
	for _, r := range restaurants {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Name,
			strconv.Itoa(len(r.Menus)),
		})
	}

	return Data{
		Headers:         []string{"ID", "Name", "Items"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignRight},
	}
}

// MenuToTableData converts menu items to table format.
// Wide output adds the image and rating columns.
func MenuToTableData(items []menus.MenuItem, wide bool) Data {
	headers := []string{"#", "Item", "Price"}
	align := []Align{AlignRight, AlignLeft, AlignRight}
	if wide {
		headers = append(headers, "Rating", "Image")
		align = append(align, AlignRight, AlignLeft)
	}

	rows := make([][]string, 0, len(items))
	for i, item := range items {
		row := []string{
			strconv.Itoa(i + 1),
			item.MenuName,
			FormatPrice(item.Price),
		}
		if wide {
			row = append(row, FormatRating(item.Rating), orDash(item.Image))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// FormatPrice renders a price with two decimal places.
// Conversion goes through decimal so 0.1+0.2 style float noise never shows.
func FormatPrice(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(2)
}

// FormatRating renders an optional rating, or "-" when absent.
func FormatRating(rating *float64) string {
	if rating == nil {
		return "-"
	}
	return decimal.NewFromFloat(*rating).Round(1).String()
}

// Total returns the sum of item prices, rounded to cents.
func Total(items []menus.MenuItem) string {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(decimal.NewFromFloat(item.Price))
	}
	return sum.StringFixed(2)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
