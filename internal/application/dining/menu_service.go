package dining

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
)

// MenuService handles menu business operations scoped to a restaurant
type MenuService struct {
	menuRepo       dining.MenuRepository
	restaurantRepo dining.RestaurantRepository
	placementRepo  dining.PlacementRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(
	menuRepo dining.MenuRepository,
	restaurantRepo dining.RestaurantRepository,
	placementRepo dining.PlacementRepository,
) *MenuService {
	return &MenuService{
		menuRepo:       menuRepo,
		restaurantRepo: restaurantRepo,
		placementRepo:  placementRepo,
	}
}

// Create creates a menu under a restaurant
func (s *MenuService) Create(ctx context.Context, restaurantID uuid.UUID, req CreateMenuRequest) (*MenuResponse, error) {
	if _, err := s.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, restaurantID, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	menu, err := dining.NewMenu(restaurantID, req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.menuRepo.Save(ctx, menu); err != nil {
		return nil, err
	}

	return ToMenuResponse(menu), nil
}

// GetByID retrieves a menu within a restaurant
func (s *MenuService) GetByID(ctx context.Context, restaurantID, id uuid.UUID) (*MenuResponse, error) {
	menu, err := s.menuRepo.FindByIDForRestaurant(ctx, restaurantID, id)
	if err != nil {
		return nil, err
	}
	return ToMenuResponse(menu), nil
}

// List retrieves a restaurant's menus matching the filter
func (s *MenuService) List(ctx context.Context, restaurantID uuid.UUID, filter ListFilter) ([]MenuResponse, int64, error) {
	if _, err := s.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		return nil, 0, err
	}

	domainFilter := filter.toDomainFilter()

	menus, err := s.menuRepo.FindAllForRestaurant(ctx, restaurantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.menuRepo.CountForRestaurant(ctx, restaurantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]MenuResponse, len(menus))
	for i, menu := range menus {
		responses[i] = *ToMenuResponse(&menu)
	}
	return responses, total, nil
}

// Update renames a menu within a restaurant
func (s *MenuService) Update(ctx context.Context, restaurantID, id uuid.UUID, req UpdateMenuRequest) (*MenuResponse, error) {
	menu, err := s.menuRepo.FindByIDForRestaurant(ctx, restaurantID, id)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, restaurantID, req.Name, id); err != nil {
		return nil, err
	}

	if err := menu.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.menuRepo.Save(ctx, menu); err != nil {
		return nil, err
	}

	return ToMenuResponse(menu), nil
}

// Delete removes a menu and its placements
func (s *MenuService) Delete(ctx context.Context, restaurantID, id uuid.UUID) error {
	if _, err := s.menuRepo.FindByIDForRestaurant(ctx, restaurantID, id); err != nil {
		return err
	}
	return s.menuRepo.Delete(ctx, id)
}

// ListPlacements retrieves all placements on a menu
func (s *MenuService) ListPlacements(ctx context.Context, menuID uuid.UUID) ([]PlacementResponse, error) {
	if _, err := s.menuRepo.FindByID(ctx, menuID); err != nil {
		return nil, err
	}

	placements, err := s.placementRepo.FindAllForMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}

	responses := make([]PlacementResponse, len(placements))
	for i, placement := range placements {
		responses[i] = *ToPlacementResponse(&placement)
	}
	return responses, nil
}

// UpdatePlacementPrice reprices an item already placed on a menu
func (s *MenuService) UpdatePlacementPrice(ctx context.Context, menuID, menuItemID uuid.UUID, req UpdatePlacementRequest) (*PlacementResponse, error) {
	placement, err := s.placementRepo.FindByMenuAndItem(ctx, menuID, menuItemID)
	if err != nil {
		return nil, err
	}

	if err := placement.SetPrice(req.Price); err != nil {
		return nil, err
	}

	if err := s.placementRepo.Save(ctx, placement); err != nil {
		return nil, err
	}

	return ToPlacementResponse(placement), nil
}

func (s *MenuService) ensureNameAvailable(ctx context.Context, restaurantID uuid.UUID, name string, selfID uuid.UUID) error {
	existing, err := s.menuRepo.FindByNormalizedName(ctx, restaurantID, name)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return shared.NewDomainError("ALREADY_EXISTS", "Menu with this name already exists for this restaurant")
	}
	return nil
}
