// Package menus holds the restaurant and menu dataset served by menumap.
//
// A dataset is loaded once from a JSON (or YAML) document and never changes
// afterwards. Two source layouts are accepted:
//
//   - nested: an array of restaurants, each owning its "menus" array
//   - flat: an array of menu items, each naming its "restaurant_name"
//
// Flat sources are normalized into restaurants at load time; see
// DeriveRestaurants for how identifiers are assigned.
//
// Example:
//
//	ds, err := menus.LoadFile("data/restaurant_menu_data.json")
//	if err != nil {
//	    return err // *errors.StartupError
//	}
//	items, err := ds.MenuFor("1")
//
// All Dataset methods are safe for concurrent use and return copies.
package menus
