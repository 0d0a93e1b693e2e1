package menus

// Layout identifies the shape of the source document.
type Layout string

const (
	// LayoutNested is an array of restaurants that own their menu items.
	LayoutNested Layout = "nested"
	// LayoutFlat is an array of menu items that reference restaurants by name.
	LayoutFlat Layout = "flat"
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	return string(l)
}

// Restaurant is a named entity owning an ordered list of menu items.
type Restaurant struct {
	ID    int        `json:"id" yaml:"id"`
	Name  string     `json:"name" yaml:"name"`
	Menus []MenuItem `json:"menus" yaml:"menus"`
}

// Summary returns the id/name pair of the restaurant.
func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name}
}

// clone returns a deep copy. Menus is never nil so it encodes as [].
func (r Restaurant) clone() Restaurant {
	out := Restaurant{ID: r.ID, Name: r.Name, Menus: make([]MenuItem, len(r.Menus))}
	for i, item := range r.Menus {
		out.Menus[i] = item.clone()
	}
	return out
}

// RestaurantSummary is the list view of a restaurant.
type RestaurantSummary struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// MenuItem is a single purchasable entry.
// RestaurantName is only populated for flat-layout sources.
type MenuItem struct {
	RestaurantName string   `json:"restaurant_name,omitempty" yaml:"restaurant_name,omitempty"`
	MenuName       string   `json:"menu_name" yaml:"menu_name"`
	Price          float64  `json:"price" yaml:"price"`
	Image          string   `json:"image,omitempty" yaml:"image,omitempty"`
	Rating         *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
}

func (m MenuItem) clone() MenuItem {
	if m.Rating != nil {
		rating := *m.Rating
		m.Rating = &rating
	}
	return m
}
