package dining

import (
	"context"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/shared"
)

// RestaurantRepository defines persistence operations for restaurants.
// Name lookups match the normalized name case-insensitively.
type RestaurantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Restaurant, error)
	FindByNormalizedName(ctx context.Context, name string) (*Restaurant, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Restaurant, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, restaurant *Restaurant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MenuRepository defines persistence operations for menus, scoped to their
// owning restaurant.
type MenuRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Menu, error)
	FindByIDForRestaurant(ctx context.Context, restaurantID, id uuid.UUID) (*Menu, error)
	FindByNormalizedName(ctx context.Context, restaurantID uuid.UUID, name string) (*Menu, error)
	FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]Menu, error)
	CountForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, menu *Menu) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MenuItemRepository defines persistence operations for globally shared items
type MenuItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItem, error)
	FindByNormalizedName(ctx context.Context, name string) (*MenuItem, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]MenuItem, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// FindAllForRestaurant returns the distinct items placed on any of the
	// restaurant's menus.
	FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]MenuItem, error)
	CountForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlacementRepository defines persistence operations for menu item placements
type PlacementRepository interface {
	FindByMenuAndItem(ctx context.Context, menuID, menuItemID uuid.UUID) (*MenuItemPlacement, error)
	FindAllForMenu(ctx context.Context, menuID uuid.UUID) ([]MenuItemPlacement, error)
	Save(ctx context.Context, placement *MenuItemPlacement) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteForMenuItem(ctx context.Context, menuItemID uuid.UUID) error
}

// RepositorySet bundles the dining repositories bound to one storage handle,
// either the root connection or a single transaction.
type RepositorySet struct {
	Restaurants RestaurantRepository
	Menus       MenuRepository
	MenuItems   MenuItemRepository
	Placements  PlacementRepository
}

// TransactionManager runs a function inside one storage transaction. The
// repositories handed to fn are bound to that transaction; returning an error
// rolls everything back.
type TransactionManager interface {
	Transaction(ctx context.Context, fn func(repos RepositorySet) error) error
}
