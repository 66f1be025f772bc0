package dining

import (
	"context"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockRestaurantRepository is a mock implementation of RestaurantRepository
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindByNormalizedName(ctx context.Context, name string) (*dining.Restaurant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]dining.Restaurant, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dining.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRestaurantRepository) Save(ctx context.Context, restaurant *dining.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMenuRepository is a mock implementation of MenuRepository
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.Menu), args.Error(1)
}

func (m *MockMenuRepository) FindByIDForRestaurant(ctx context.Context, restaurantID, id uuid.UUID) (*dining.Menu, error) {
	args := m.Called(ctx, restaurantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.Menu), args.Error(1)
}

func (m *MockMenuRepository) FindByNormalizedName(ctx context.Context, restaurantID uuid.UUID, name string) (*dining.Menu, error) {
	args := m.Called(ctx, restaurantID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.Menu), args.Error(1)
}

func (m *MockMenuRepository) FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]dining.Menu, error) {
	args := m.Called(ctx, restaurantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dining.Menu), args.Error(1)
}

func (m *MockMenuRepository) CountForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, restaurantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuRepository) Save(ctx context.Context, menu *dining.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMenuItemRepository is a mock implementation of MenuItemRepository
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindByNormalizedName(ctx context.Context, name string) (*dining.MenuItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]dining.MenuItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dining.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuItemRepository) FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]dining.MenuItem, error) {
	args := m.Called(ctx, restaurantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dining.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) CountForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, restaurantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuItemRepository) Save(ctx context.Context, item *dining.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlacementRepository is a mock implementation of PlacementRepository
type MockPlacementRepository struct {
	mock.Mock
}

func (m *MockPlacementRepository) FindByMenuAndItem(ctx context.Context, menuID, menuItemID uuid.UUID) (*dining.MenuItemPlacement, error) {
	args := m.Called(ctx, menuID, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dining.MenuItemPlacement), args.Error(1)
}

func (m *MockPlacementRepository) FindAllForMenu(ctx context.Context, menuID uuid.UUID) ([]dining.MenuItemPlacement, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dining.MenuItemPlacement), args.Error(1)
}

func (m *MockPlacementRepository) Save(ctx context.Context, placement *dining.MenuItemPlacement) error {
	args := m.Called(ctx, placement)
	return args.Error(0)
}

func (m *MockPlacementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlacementRepository) DeleteForMenuItem(ctx context.Context, menuItemID uuid.UUID) error {
	args := m.Called(ctx, menuItemID)
	return args.Error(0)
}
