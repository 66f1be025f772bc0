package dining

import (
	"time"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateRestaurantRequest is the payload for creating a restaurant
type CreateRestaurantRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// UpdateRestaurantRequest is the payload for renaming a restaurant
type UpdateRestaurantRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// RestaurantResponse is the API representation of a restaurant
type RestaurantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRestaurantResponse converts a restaurant entity to its response
func ToRestaurantResponse(restaurant *dining.Restaurant) *RestaurantResponse {
	return &RestaurantResponse{
		ID:        restaurant.ID,
		Name:      restaurant.Name,
		CreatedAt: restaurant.CreatedAt,
		UpdatedAt: restaurant.UpdatedAt,
	}
}

// CreateMenuRequest is the payload for creating a menu
type CreateMenuRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// UpdateMenuRequest is the payload for renaming a menu
type UpdateMenuRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// MenuResponse is the API representation of a menu
type MenuResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToMenuResponse converts a menu entity to its response
func ToMenuResponse(menu *dining.Menu) *MenuResponse {
	return &MenuResponse{
		ID:           menu.ID,
		RestaurantID: menu.RestaurantID,
		Name:         menu.Name,
		CreatedAt:    menu.CreatedAt,
		UpdatedAt:    menu.UpdatedAt,
	}
}

// CreateMenuItemRequest is the payload for creating a menu item
type CreateMenuItemRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// UpdateMenuItemRequest is the payload for renaming a menu item
type UpdateMenuItemRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// MenuItemResponse is the API representation of a menu item
type MenuItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToMenuItemResponse converts a menu item entity to its response
func ToMenuItemResponse(item *dining.MenuItem) *MenuItemResponse {
	return &MenuItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// UpdatePlacementRequest is the payload for repricing a placement
type UpdatePlacementRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// PlacementResponse is the API representation of a menu item placement
type PlacementResponse struct {
	ID         uuid.UUID       `json:"id"`
	MenuID     uuid.UUID       `json:"menu_id"`
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToPlacementResponse converts a placement entity to its response
func ToPlacementResponse(placement *dining.MenuItemPlacement) *PlacementResponse {
	return &PlacementResponse{
		ID:         placement.ID,
		MenuID:     placement.MenuID,
		MenuItemID: placement.MenuItemID,
		Price:      placement.Price,
		CreatedAt:  placement.CreatedAt,
		UpdatedAt:  placement.UpdatedAt,
	}
}

// ListFilter carries list query options from the HTTP layer
type ListFilter struct {
	Page     int
	PageSize int
	Search   string
	SortBy   string
	SortDesc bool
}

func (f ListFilter) toDomainFilter() shared.Filter {
	filter := shared.DefaultFilter()

	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	filter.Search = f.Search

	if f.SortBy != "" {
		filter.OrderBy = f.SortBy
		if f.SortDesc {
			filter.OrderDir = "desc"
		} else {
			filter.OrderDir = "asc"
		}
	}

	return filter
}
