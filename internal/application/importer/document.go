package importer

import "github.com/shopspring/decimal"

// restaurantDocument is the root of an import payload
type restaurantDocument struct {
	Restaurants []restaurantEntry `json:"restaurants"`
}

type restaurantEntry struct {
	Name  string      `json:"name"`
	Menus []menuEntry `json:"menus"`
}

// menuEntry accepts its item collection under either "menu_items" or the
// legacy "dishes" key. Pointers distinguish an absent key from an empty
// array: a present "menu_items" wins even when empty.
type menuEntry struct {
	Name      string       `json:"name"`
	MenuItems *[]itemEntry `json:"menu_items"`
	Dishes    *[]itemEntry `json:"dishes"`
}

func (m menuEntry) items() []itemEntry {
	if m.MenuItems != nil {
		return *m.MenuItems
	}
	if m.Dishes != nil {
		return *m.Dishes
	}
	return nil
}

type itemEntry struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}
