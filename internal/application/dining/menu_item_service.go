package dining

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
)

// MenuItemService handles business operations on globally shared menu items
type MenuItemService struct {
	itemRepo       dining.MenuItemRepository
	restaurantRepo dining.RestaurantRepository
}

// NewMenuItemService creates a new MenuItemService
func NewMenuItemService(itemRepo dining.MenuItemRepository, restaurantRepo dining.RestaurantRepository) *MenuItemService {
	return &MenuItemService{
		itemRepo:       itemRepo,
		restaurantRepo: restaurantRepo,
	}
}

// Create creates a new menu item with a globally unique normalized name
func (s *MenuItemService) Create(ctx context.Context, req CreateMenuItemRequest) (*MenuItemResponse, error) {
	if err := s.ensureNameAvailable(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	item, err := dining.NewMenuItem(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return ToMenuItemResponse(item), nil
}

// GetByID retrieves a menu item by ID
func (s *MenuItemService) GetByID(ctx context.Context, id uuid.UUID) (*MenuItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToMenuItemResponse(item), nil
}

// List retrieves menu items matching the filter
func (s *MenuItemService) List(ctx context.Context, filter ListFilter) ([]MenuItemResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	items, err := s.itemRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.itemRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]MenuItemResponse, len(items))
	for i, item := range items {
		responses[i] = *ToMenuItemResponse(&item)
	}
	return responses, total, nil
}

// ListForRestaurant retrieves the distinct items placed on a restaurant's menus
func (s *MenuItemService) ListForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter ListFilter) ([]MenuItemResponse, int64, error) {
	if _, err := s.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		return nil, 0, err
	}

	domainFilter := filter.toDomainFilter()

	items, err := s.itemRepo.FindAllForRestaurant(ctx, restaurantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.itemRepo.CountForRestaurant(ctx, restaurantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]MenuItemResponse, len(items))
	for i, item := range items {
		responses[i] = *ToMenuItemResponse(&item)
	}
	return responses, total, nil
}

// Update renames a menu item
func (s *MenuItemService) Update(ctx context.Context, id uuid.UUID, req UpdateMenuItemRequest) (*MenuItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, req.Name, id); err != nil {
		return nil, err
	}

	if err := item.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return ToMenuItemResponse(item), nil
}

// Delete removes a menu item and every placement referencing it
func (s *MenuItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.itemRepo.Delete(ctx, id)
}

func (s *MenuItemService) ensureNameAvailable(ctx context.Context, name string, selfID uuid.UUID) error {
	existing, err := s.itemRepo.FindByNormalizedName(ctx, name)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return shared.NewDomainError("ALREADY_EXISTS", "Menu item with this name already exists")
	}
	return nil
}
