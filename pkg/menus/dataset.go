package menus

import (
	"fmt"
	"strconv"

	"github.com/agentstation/menumap/pkg/errors"
)

// Dataset is the immutable in-memory collection of restaurants.
// It is built once and only read afterwards, so no locking is needed.
type Dataset struct {
	source      string
	layout      Layout
	restaurants []Restaurant
	summaries   []RestaurantSummary
	byID        map[int]int
	byName      map[string]int
	duplicates  []string
}

// NewDataset builds a dataset from restaurants in source order.
// Ids must be positive and unique and names non-empty. Names may repeat;
// name lookups resolve to the first restaurant carrying the name.
// The input is copied; later changes to it do not affect the dataset.
func NewDataset(layout Layout, restaurants []Restaurant, opts ...DatasetOption) (*Dataset, error) {
	ds := &Dataset{
		layout:      layout,
		restaurants: make([]Restaurant, 0, len(restaurants)),
		summaries:   make([]RestaurantSummary, 0, len(restaurants)),
		byID:        make(map[int]int, len(restaurants)),
		byName:      make(map[string]int, len(restaurants)),
	}
	for _, opt := range opts {
		opt(ds)
	}

	for i, r := range restaurants {
		if r.ID <= 0 {
			return nil, errors.NewValidationError(fmt.Sprintf("[%d].id", i), r.ID, "must be greater than 0")
		}
		if r.Name == "" {
			return nil, errors.NewValidationError(fmt.Sprintf("[%d].name", i), r.Name, "is required")
		}
		if first, dup := ds.byID[r.ID]; dup {
			return nil, errors.NewValidationError(fmt.Sprintf("[%d].id", i), r.ID,
				fmt.Sprintf("duplicate id %d, first used at [%d]", r.ID, first))
		}
		ds.byID[r.ID] = i
		if _, dup := ds.byName[r.Name]; dup {
			ds.duplicates = append(ds.duplicates, r.Name)
		} else {
			ds.byName[r.Name] = i
		}
		ds.restaurants = append(ds.restaurants, r.clone())
		ds.summaries = append(ds.summaries, r.Summary())
	}

	return ds, nil
}

// FromItems builds a flat-layout dataset by grouping items with DeriveRestaurants.
func FromItems(items []MenuItem, opts ...DatasetOption) (*Dataset, error) {
	for i, item := range items {
		if item.RestaurantName == "" {
			return nil, errors.NewValidationError(fmt.Sprintf("[%d].restaurant_name", i), item.RestaurantName, "is required")
		}
	}
	return NewDataset(LayoutFlat, DeriveRestaurants(items), opts...)
}

// DatasetOption configures a Dataset.
type DatasetOption func(*Dataset)

// WithSource records where the dataset was loaded from.
func WithSource(source string) DatasetOption {
	return func(ds *Dataset) {
		ds.source = source
	}
}

// Source returns the path or name the dataset was loaded from.
func (ds *Dataset) Source() string {
	return ds.source
}

// Layout returns the layout of the source document.
func (ds *Dataset) Layout() Layout {
	return ds.layout
}

// Len returns the number of restaurants.
func (ds *Dataset) Len() int {
	return len(ds.restaurants)
}

// DuplicateNames returns names carried by more than one restaurant, once
// per extra occurrence, in source order. Only the first is reachable by name.
func (ds *Dataset) DuplicateNames() []string {
	out := make([]string, len(ds.duplicates))
	copy(out, ds.duplicates)
	return out
}

// Restaurants returns every restaurant with its menu, in source order.
func (ds *Dataset) Restaurants() []Restaurant {
	out := make([]Restaurant, len(ds.restaurants))
	for i, r := range ds.restaurants {
		out[i] = r.clone()
	}
	return out
}

// Summaries returns the id/name pair of every restaurant, in source order.
func (ds *Dataset) Summaries() []RestaurantSummary {
	out := make([]RestaurantSummary, len(ds.summaries))
	copy(out, ds.summaries)
	return out
}

// Restaurant returns the restaurant with the given id.
func (ds *Dataset) Restaurant(id int) (Restaurant, error) {
	i, ok := ds.byID[id]
	if !ok {
		return Restaurant{}, errors.NewNotFoundError("restaurant", strconv.Itoa(id))
	}
	return ds.restaurants[i].clone(), nil
}

// RestaurantByName returns the restaurant whose name equals name exactly.
func (ds *Dataset) RestaurantByName(name string) (Restaurant, error) {
	i, ok := ds.byName[name]
	if !ok {
		return Restaurant{}, errors.NewNotFoundError("restaurant", name)
	}
	return ds.restaurants[i].clone(), nil
}

// Lookup resolves a key that is either an id or a name.
// Nested datasets are keyed by id, so an integer key matching an id wins
// over a name. Flat datasets are keyed by name, so an exact name match wins
// and the derived id is the fallback.
func (ds *Dataset) Lookup(key string) (Restaurant, error) {
	byID := func() (int, bool) {
		id, err := strconv.Atoi(key)
		if err != nil {
			return 0, false
		}
		i, ok := ds.byID[id]
		return i, ok
	}
	byName := func() (int, bool) {
		i, ok := ds.byName[key]
		return i, ok
	}

	first, second := byID, byName
	if ds.layout == LayoutFlat {
		first, second = byName, byID
	}
	if i, ok := first(); ok {
		return ds.restaurants[i].clone(), nil
	}
	if i, ok := second(); ok {
		return ds.restaurants[i].clone(), nil
	}
	return Restaurant{}, errors.NewNotFoundError("restaurant", key)
}

// Menu returns the menu items of the restaurant with the given id.
func (ds *Dataset) Menu(id int) ([]MenuItem, error) {
	r, err := ds.Restaurant(id)
	if err != nil {
		return nil, err
	}
	return r.Menus, nil
}

// MenuByName returns the menu items of the restaurant with the given name.
func (ds *Dataset) MenuByName(name string) ([]MenuItem, error) {
	r, err := ds.RestaurantByName(name)
	if err != nil {
		return nil, err
	}
	return r.Menus, nil
}

// MenuFor returns the menu items of the restaurant resolved by Lookup.
func (ds *Dataset) MenuFor(key string) ([]MenuItem, error) {
	r, err := ds.Lookup(key)
	if err != nil {
		return nil, err
	}
	return r.Menus, nil
}
