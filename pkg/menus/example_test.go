package menus_test

import (
	"fmt"

	"github.com/agentstation/menumap/pkg/menus"
)

// Example shows a flat document grouped into restaurants.
func Example() {
	doc := []byte(`[
		{"restaurant_name": "A", "menu_name": "Soup", "price": 5},
		{"restaurant_name": "B", "menu_name": "Tea", "price": 2},
		{"restaurant_name": "A", "menu_name": "Salad", "price": 4}
	]`)

	ds, err := menus.Parse(doc, "inline")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(ds.Layout())
	for _, s := range ds.Summaries() {
		fmt.Println(s.ID, s.Name)
	}

	// Output:
	// flat
	// 1 A
	// 2 B
}

// ExampleDataset_MenuFor shows a key resolved as an id first, then a name.
func ExampleDataset_MenuFor() {
	ds, _ := menus.NewDataset(menus.LayoutNested, []menus.Restaurant{
		{ID: 1, Name: "2", Menus: []menus.MenuItem{{MenuName: "Soup", Price: 5}}},
		{ID: 2, Name: "B", Menus: []menus.MenuItem{{MenuName: "Tea", Price: 2}}},
	})

	byID, _ := ds.MenuFor("2")
	byName, _ := ds.MenuFor("B")
	_, err := ds.MenuFor("C")

	fmt.Println(byID[0].MenuName, byName[0].MenuName, err)

	// Output: Tea Tea restaurant C not found
}
