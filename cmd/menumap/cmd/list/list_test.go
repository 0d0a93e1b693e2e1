package list

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/menumap/internal/cmd/application"
	"github.com/agentstation/menumap/pkg/errors"
	"github.com/agentstation/menumap/pkg/menus"
)

func testDataset(t *testing.T) *menus.Dataset {
	t.Helper()
	ds, err := menus.FromItems([]menus.MenuItem{
		{RestaurantName: "Pizza Town", MenuName: "Margherita", Price: 9},
		{RestaurantName: "Noodle Bar", MenuName: "Ramen", Price: 11.5},
		{RestaurantName: "Pizza Town", MenuName: "Calzone", Price: 10},
		{RestaurantName: "Pizza/Pasta", MenuName: "Lasagne", Price: 12},
	})
	require.NoError(t, err)
	return ds
}

func run(t *testing.T, mock *application.Mock, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(mock)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func jsonMock(t *testing.T) *application.Mock {
	ds := testDataset(t)
	return &application.Mock{
		DatasetFunc:      func() (*menus.Dataset, error) { return ds, nil },
		OutputFormatFunc: func() string { return "json" },
	}
}

func TestListRestaurantsJSON(t *testing.T) {
	out, err := run(t, jsonMock(t), "restaurants")
	require.NoError(t, err)

	var got []menus.Restaurant
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	names := make([]string, len(got))
	for i, r := range got {
		names[i] = r.Name
	}
	if diff := cmp.Diff([]string{"Pizza Town", "Noodle Bar", "Pizza/Pasta"}, names); diff != "" {
		t.Errorf("restaurant order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, got[0].ID)
	assert.Len(t, got[0].Menus, 2)
}

func TestListRestaurantsSearchAndLimit(t *testing.T) {
	out, err := run(t, jsonMock(t), "restaurants", "--search", "PIZZA", "--limit", "1")
	require.NoError(t, err)

	var got []menus.Restaurant
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Pizza Town", got[0].Name)
}

func TestListRestaurantsTable(t *testing.T) {
	ds := testDataset(t)
	mock := &application.Mock{
		DatasetFunc:      func() (*menus.Dataset, error) { return ds, nil },
		OutputFormatFunc: func() string { return "table" },
	}

	out, err := run(t, mock, "restaurants")
	require.NoError(t, err)
	assert.Contains(t, out, "Noodle Bar")
	assert.Contains(t, out, "Pizza/Pasta")
}

func TestListMenuByIDAndName(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want []string
	}{
		{"by id", "1", []string{"Margherita", "Calzone"}},
		{"by name", "Noodle Bar", []string{"Ramen"}},
		{"name with slash", "Pizza/Pasta", []string{"Lasagne"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, jsonMock(t), "menu", tt.key)
			require.NoError(t, err)

			var items []menus.MenuItem
			require.NoError(t, json.Unmarshal([]byte(out), &items))
			got := make([]string, len(items))
			for i, item := range items {
				got[i] = item.MenuName
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListMenuNotFound(t *testing.T) {
	_, err := run(t, jsonMock(t), "menu", "pizza town")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err), "names match case-sensitively")
}

func TestListMenuRequiresKey(t *testing.T) {
	_, err := run(t, jsonMock(t), "menu")
	assert.Error(t, err)
}

func TestListDatasetError(t *testing.T) {
	mock := &application.Mock{
		DatasetFunc: func() (*menus.Dataset, error) {
			return nil, errors.NewStartupError("data.json", errors.New("boom"))
		},
	}

	_, err := run(t, mock, "restaurants")
	assert.True(t, errors.IsStartup(err))
}

func TestFilterRestaurants(t *testing.T) {
	all := testDataset(t).Restaurants()

	tests := []struct {
		search string
		limit  int
		want   []string
	}{
		{"", 0, []string{"Pizza Town", "Noodle Bar", "Pizza/Pasta"}},
		{"", 2, []string{"Pizza Town", "Noodle Bar"}},
		{"sushi", 0, []string{}},
		{"pizza", 0, []string{"Pizza Town", "Pizza/Pasta"}},
		{"*bar", 0, []string{"Noodle Bar"}},
		{"/^pizza/", 1, []string{"Pizza Town"}},
	}

	for _, tt := range tests {
		got, err := filterRestaurants(all, tt.search, tt.limit)
		require.NoError(t, err, tt.search)
		names := make([]string, len(got))
		for i, r := range got {
			names[i] = r.Name
		}
		assert.Equal(t, tt.want, names, tt.search)
	}

	_, err := filterRestaurants(all, "/(/", 0)
	assert.Error(t, err)
}
