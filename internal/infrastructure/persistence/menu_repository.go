package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GormMenuRepository
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// FindByID finds a menu by its ID
func (r *GormMenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.Menu, error) {
	var menu dining.Menu
	if err := r.db.WithContext(ctx).First(&menu, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &menu, nil
}

// FindByIDForRestaurant finds a menu by ID within a restaurant
func (r *GormMenuRepository) FindByIDForRestaurant(ctx context.Context, restaurantID, id uuid.UUID) (*dining.Menu, error) {
	var menu dining.Menu
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &menu, nil
}

// FindByNormalizedName finds a restaurant's menu matching the name case-insensitively
func (r *GormMenuRepository) FindByNormalizedName(ctx context.Context, restaurantID uuid.UUID, name string) (*dining.Menu, error) {
	var menu dining.Menu
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND LOWER(name) = LOWER(?)", restaurantID, dining.NormalizeName(name)).
		First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &menu, nil
}

// FindAllForRestaurant lists a restaurant's menus matching the filter
func (r *GormMenuRepository) FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]dining.Menu, error) {
	var menus []dining.Menu
	if err := applyListFilter(r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID), filter).
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// CountForRestaurant counts a restaurant's menus matching the filter
func (r *GormMenuRepository) CountForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := applySearch(r.db.WithContext(ctx).Model(&dining.Menu{}).Where("restaurant_id = ?", restaurantID), filter).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a menu
func (r *GormMenuRepository) Save(ctx context.Context, menu *dining.Menu) error {
	if err := r.db.WithContext(ctx).Save(menu).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete removes a menu together with its placements
func (r *GormMenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).
			Delete(&dining.MenuItemPlacement{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&dining.Menu{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormMenuRepository implements MenuRepository
var _ dining.MenuRepository = (*GormMenuRepository)(nil)
