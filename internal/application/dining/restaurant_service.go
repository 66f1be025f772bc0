package dining

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
)

// RestaurantService handles restaurant business operations
type RestaurantService struct {
	restaurantRepo dining.RestaurantRepository
}

// NewRestaurantService creates a new RestaurantService
func NewRestaurantService(restaurantRepo dining.RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurantRepo: restaurantRepo}
}

// Create creates a new restaurant, rejecting names that collide with an
// existing one after normalization.
func (s *RestaurantService) Create(ctx context.Context, req CreateRestaurantRequest) (*RestaurantResponse, error) {
	if err := s.ensureNameAvailable(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	restaurant, err := dining.NewRestaurant(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.Save(ctx, restaurant); err != nil {
		return nil, err
	}

	return ToRestaurantResponse(restaurant), nil
}

// GetByID retrieves a restaurant by ID
func (s *RestaurantService) GetByID(ctx context.Context, id uuid.UUID) (*RestaurantResponse, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRestaurantResponse(restaurant), nil
}

// List retrieves restaurants matching the filter
func (s *RestaurantService) List(ctx context.Context, filter ListFilter) ([]RestaurantResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	restaurants, err := s.restaurantRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.restaurantRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		responses[i] = *ToRestaurantResponse(&restaurant)
	}
	return responses, total, nil
}

// Update renames a restaurant
func (s *RestaurantService) Update(ctx context.Context, id uuid.UUID, req UpdateRestaurantRequest) (*RestaurantResponse, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, req.Name, id); err != nil {
		return nil, err
	}

	if err := restaurant.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.Save(ctx, restaurant); err != nil {
		return nil, err
	}

	return ToRestaurantResponse(restaurant), nil
}

// Delete removes a restaurant and, by cascade, its menus and placements
func (s *RestaurantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.restaurantRepo.Delete(ctx, id)
}

// ensureNameAvailable checks that no other restaurant holds the normalized
// name. selfID excludes the record being renamed.
func (s *RestaurantService) ensureNameAvailable(ctx context.Context, name string, selfID uuid.UUID) error {
	existing, err := s.restaurantRepo.FindByNormalizedName(ctx, name)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return shared.NewDomainError("ALREADY_EXISTS", "Restaurant with this name already exists")
	}
	return nil
}
