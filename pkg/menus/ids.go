package menus

// DeriveRestaurants groups flat menu items into restaurants.
//
// Restaurants appear in the order their name is first seen and receive
// 1-based sequential ids in that order. Each restaurant's menu is the
// subsequence of items carrying its name, in source order. The function is
// pure: the same input always yields the same ids.
func DeriveRestaurants(items []MenuItem) []Restaurant {
	index := make(map[string]int)
	restaurants := make([]Restaurant, 0)

	for _, item := range items {
		i, seen := index[item.RestaurantName]
		if !seen {
			i = len(restaurants)
			index[item.RestaurantName] = i
			restaurants = append(restaurants, Restaurant{
				ID:    i + 1,
				Name:  item.RestaurantName,
				Menus: []MenuItem{},
			})
		}
		restaurants[i].Menus = append(restaurants[i].Menus, item.clone())
	}

	return restaurants
}
