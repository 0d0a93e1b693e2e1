package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/menumap/pkg/menus"
)

func sampleRestaurants() []menus.Restaurant {
	rating := 4.5
	return []menus.Restaurant{
		{ID: 1, Name: "Alpha Diner", Menus: []menus.MenuItem{
			{MenuName: "Soup", Price: 5},
			{MenuName: "Pie", Price: 3.25, Rating: &rating, Image: "pie.png"},
		}},
		{ID: 2, Name: "Beta Bistro", Menus: []menus.MenuItem{}},
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
	assert.Equal(t, FormatJSON, DetectFormat("json"))
}

func TestFormatRestaurantsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatRestaurants(&buf, sampleRestaurants(), FormatJSON))

	var decoded []menus.Restaurant
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Alpha Diner", decoded[0].Name)
	assert.Len(t, decoded[0].Menus, 2)
	assert.NotNil(t, decoded[1].Menus)
}

func TestFormatRestaurantsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatRestaurants(&buf, sampleRestaurants(), FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "name: Alpha Diner")
	assert.Contains(t, out, "menu_name: Soup")
	assert.Contains(t, out, "menus: []")
}

func TestFormatRestaurantsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatRestaurants(&buf, sampleRestaurants(), FormatTable))

	out := buf.String()
	assert.Contains(t, out, "Alpha Diner")
	assert.Contains(t, out, "Beta Bistro")
	assert.NotContains(t, out, "Soup", "table view lists restaurants only")
}

func TestFormatMenuTable(t *testing.T) {
	items := sampleRestaurants()[0].Menus

	var narrow bytes.Buffer
	require.NoError(t, FormatMenu(&narrow, items, FormatTable))
	assert.Contains(t, narrow.String(), "5.00")
	assert.Contains(t, narrow.String(), "3.25")
	assert.NotContains(t, narrow.String(), "pie.png")

	var wide bytes.Buffer
	require.NoError(t, FormatMenu(&wide, items, FormatWide))
	assert.Contains(t, wide.String(), "pie.png")
	assert.Contains(t, wide.String(), "4.5")

	// Soup is listed before Pie, as in the source
	assert.Less(t, strings.Index(narrow.String(), "Soup"), strings.Index(narrow.String(), "Pie"))
}

func TestTableFormatterReflection(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	summaries := []menus.RestaurantSummary{{ID: 7, Name: "Gamma"}}
	require.NoError(t, f.Format(&buf, summaries))
	assert.Contains(t, buf.String(), "Gamma")
	assert.Contains(t, buf.String(), "7")

	buf.Reset()
	report := struct {
		Layout string   `json:"layout"`
		Rating *float64 `json:"rating"`
	}{Layout: "flat"}
	require.NoError(t, f.Format(&buf, report))
	assert.Contains(t, buf.String(), "flat")
	assert.Contains(t, buf.String(), "-")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]int{"restaurants": 2}))
	assert.JSONEq(t, `{"restaurants":2}`, buf.String())
}

func TestTitleHeader(t *testing.T) {
	assert.Equal(t, "Menu Name", titleHeader("menu_name"))
	assert.Equal(t, "Id", titleHeader("id"))
}

func TestReflectTableSkipsUnexported(t *testing.T) {
	type row struct {
		Name   string `json:"name"`
		secret string
	}

	data, ok := reflectTable([]row{{Name: "A", secret: "x"}})
	require.True(t, ok)
	assert.Equal(t, []string{"Name"}, data.Headers)
	assert.Equal(t, [][]string{{"A"}}, data.Rows)

	_, ok = reflectTable([]row{})
	assert.False(t, ok, "an empty slice has no columns to infer")
}
