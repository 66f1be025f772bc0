package importer

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
)

// memStore is an in-memory stand-in for the relational store. It enforces
// the same uniqueness rules the production schema does so resolver races and
// collisions behave identically in tests.
type memStore struct {
	restaurants []*dining.Restaurant
	menus       []*dining.Menu
	items       []*dining.MenuItem
	placements  []*dining.MenuItemPlacement
}

func newMemStore() *memStore {
	return &memStore{}
}

func (s *memStore) repos() dining.RepositorySet {
	return dining.RepositorySet{
		Restaurants: &memRestaurantRepo{store: s},
		Menus:       &memMenuRepo{store: s},
		MenuItems:   &memMenuItemRepo{store: s},
		Placements:  &memPlacementRepo{store: s},
	}
}

// memTxManager satisfies dining.TransactionManager without transactional
// semantics; rollback behavior is covered by the persistence tests.
type memTxManager struct {
	repos dining.RepositorySet
}

func (m *memTxManager) Transaction(_ context.Context, fn func(repos dining.RepositorySet) error) error {
	return fn(m.repos)
}

func sameName(stored, candidate string) bool {
	return strings.EqualFold(stored, dining.NormalizeName(candidate))
}

type memRestaurantRepo struct {
	store   *memStore
	findErr error
}

func (r *memRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*dining.Restaurant, error) {
	for _, restaurant := range r.store.restaurants {
		if restaurant.ID == id {
			clone := *restaurant
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memRestaurantRepo) FindByNormalizedName(_ context.Context, name string) (*dining.Restaurant, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, restaurant := range r.store.restaurants {
		if sameName(restaurant.Name, name) {
			clone := *restaurant
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memRestaurantRepo) FindAll(_ context.Context, _ shared.Filter) ([]dining.Restaurant, error) {
	out := make([]dining.Restaurant, 0, len(r.store.restaurants))
	for _, restaurant := range r.store.restaurants {
		out = append(out, *restaurant)
	}
	return out, nil
}

func (r *memRestaurantRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.store.restaurants)), nil
}

func (r *memRestaurantRepo) Save(_ context.Context, restaurant *dining.Restaurant) error {
	for _, existing := range r.store.restaurants {
		if existing.ID != restaurant.ID && strings.EqualFold(existing.Name, restaurant.Name) {
			return shared.ErrAlreadyExists
		}
	}
	clone := *restaurant
	for i, existing := range r.store.restaurants {
		if existing.ID == restaurant.ID {
			r.store.restaurants[i] = &clone
			return nil
		}
	}
	r.store.restaurants = append(r.store.restaurants, &clone)
	return nil
}

func (r *memRestaurantRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, existing := range r.store.restaurants {
		if existing.ID == id {
			r.store.restaurants = append(r.store.restaurants[:i], r.store.restaurants[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type memMenuRepo struct {
	store *memStore
}

func (r *memMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*dining.Menu, error) {
	for _, menu := range r.store.menus {
		if menu.ID == id {
			clone := *menu
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memMenuRepo) FindByIDForRestaurant(_ context.Context, restaurantID, id uuid.UUID) (*dining.Menu, error) {
	for _, menu := range r.store.menus {
		if menu.ID == id && menu.RestaurantID == restaurantID {
			clone := *menu
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memMenuRepo) FindByNormalizedName(_ context.Context, restaurantID uuid.UUID, name string) (*dining.Menu, error) {
	for _, menu := range r.store.menus {
		if menu.RestaurantID == restaurantID && sameName(menu.Name, name) {
			clone := *menu
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memMenuRepo) FindAllForRestaurant(_ context.Context, restaurantID uuid.UUID, _ shared.Filter) ([]dining.Menu, error) {
	var out []dining.Menu
	for _, menu := range r.store.menus {
		if menu.RestaurantID == restaurantID {
			out = append(out, *menu)
		}
	}
	return out, nil
}

func (r *memMenuRepo) CountForRestaurant(_ context.Context, restaurantID uuid.UUID, _ shared.Filter) (int64, error) {
	var count int64
	for _, menu := range r.store.menus {
		if menu.RestaurantID == restaurantID {
			count++
		}
	}
	return count, nil
}

func (r *memMenuRepo) Save(_ context.Context, menu *dining.Menu) error {
	for _, existing := range r.store.menus {
		if existing.ID != menu.ID && existing.RestaurantID == menu.RestaurantID && strings.EqualFold(existing.Name, menu.Name) {
			return shared.ErrAlreadyExists
		}
	}
	clone := *menu
	for i, existing := range r.store.menus {
		if existing.ID == menu.ID {
			r.store.menus[i] = &clone
			return nil
		}
	}
	r.store.menus = append(r.store.menus, &clone)
	return nil
}

func (r *memMenuRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, existing := range r.store.menus {
		if existing.ID == id {
			r.store.menus = append(r.store.menus[:i], r.store.menus[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type memMenuItemRepo struct {
	store *memStore
}

func (r *memMenuItemRepo) FindByID(_ context.Context, id uuid.UUID) (*dining.MenuItem, error) {
	for _, item := range r.store.items {
		if item.ID == id {
			clone := *item
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memMenuItemRepo) FindByNormalizedName(_ context.Context, name string) (*dining.MenuItem, error) {
	for _, item := range r.store.items {
		if sameName(item.Name, name) {
			clone := *item
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memMenuItemRepo) FindAll(_ context.Context, _ shared.Filter) ([]dining.MenuItem, error) {
	out := make([]dining.MenuItem, 0, len(r.store.items))
	for _, item := range r.store.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *memMenuItemRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.store.items)), nil
}

func (r *memMenuItemRepo) FindAllForRestaurant(_ context.Context, _ uuid.UUID, _ shared.Filter) ([]dining.MenuItem, error) {
	return nil, nil
}

func (r *memMenuItemRepo) CountForRestaurant(_ context.Context, _ uuid.UUID, _ shared.Filter) (int64, error) {
	return 0, nil
}

func (r *memMenuItemRepo) Save(_ context.Context, item *dining.MenuItem) error {
	for _, existing := range r.store.items {
		if existing.ID != item.ID && strings.EqualFold(existing.Name, item.Name) {
			return shared.ErrAlreadyExists
		}
	}
	clone := *item
	for i, existing := range r.store.items {
		if existing.ID == item.ID {
			r.store.items[i] = &clone
			return nil
		}
	}
	r.store.items = append(r.store.items, &clone)
	return nil
}

func (r *memMenuItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, existing := range r.store.items {
		if existing.ID == id {
			r.store.items = append(r.store.items[:i], r.store.items[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type memPlacementRepo struct {
	store *memStore
}

func (r *memPlacementRepo) FindByMenuAndItem(_ context.Context, menuID, menuItemID uuid.UUID) (*dining.MenuItemPlacement, error) {
	for _, placement := range r.store.placements {
		if placement.MenuID == menuID && placement.MenuItemID == menuItemID {
			clone := *placement
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memPlacementRepo) FindAllForMenu(_ context.Context, menuID uuid.UUID) ([]dining.MenuItemPlacement, error) {
	var out []dining.MenuItemPlacement
	for _, placement := range r.store.placements {
		if placement.MenuID == menuID {
			out = append(out, *placement)
		}
	}
	return out, nil
}

func (r *memPlacementRepo) Save(_ context.Context, placement *dining.MenuItemPlacement) error {
	for _, existing := range r.store.placements {
		if existing.ID != placement.ID && existing.MenuID == placement.MenuID && existing.MenuItemID == placement.MenuItemID {
			return shared.ErrAlreadyExists
		}
	}
	clone := *placement
	for i, existing := range r.store.placements {
		if existing.ID == placement.ID {
			r.store.placements[i] = &clone
			return nil
		}
	}
	r.store.placements = append(r.store.placements, &clone)
	return nil
}

func (r *memPlacementRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, existing := range r.store.placements {
		if existing.ID == id {
			r.store.placements = append(r.store.placements[:i], r.store.placements[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

func (r *memPlacementRepo) DeleteForMenuItem(_ context.Context, menuItemID uuid.UUID) error {
	kept := r.store.placements[:0]
	for _, placement := range r.store.placements {
		if placement.MenuItemID != menuItemID {
			kept = append(kept, placement)
		}
	}
	r.store.placements = kept
	return nil
}
