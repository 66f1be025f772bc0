package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// FindByID finds a menu item by its ID
func (r *GormMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.MenuItem, error) {
	var item dining.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByNormalizedName finds a menu item whose name matches case-insensitively
func (r *GormMenuItemRepository) FindByNormalizedName(ctx context.Context, name string) (*dining.MenuItem, error) {
	var item dining.MenuItem
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", dining.NormalizeName(name)).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll lists menu items matching the filter
func (r *GormMenuItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]dining.MenuItem, error) {
	var items []dining.MenuItem
	if err := applyListFilter(r.db.WithContext(ctx), filter).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Count counts menu items matching the filter
func (r *GormMenuItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := applySearch(r.db.WithContext(ctx).Model(&dining.MenuItem{}), filter).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindAllForRestaurant lists the distinct items placed on any of the restaurant's menus
func (r *GormMenuItemRepository) FindAllForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) ([]dining.MenuItem, error) {
	var items []dining.MenuItem
	if err := applyListFilter(r.restaurantScope(ctx, restaurantID), filter).
		Distinct("menu_items.*").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountForRestaurant counts the distinct items placed on any of the restaurant's menus
func (r *GormMenuItemRepository) CountForRestaurant(ctx context.Context, restaurantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := applySearch(r.restaurantScope(ctx, restaurantID), filter).
		Distinct("menu_items.id").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormMenuItemRepository) restaurantScope(ctx context.Context, restaurantID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&dining.MenuItem{}).
		Joins("JOIN menu_item_placements ON menu_item_placements.menu_item_id = menu_items.id").
		Joins("JOIN menus ON menus.id = menu_item_placements.menu_id").
		Where("menus.restaurant_id = ?", restaurantID)
}

// Save creates or updates a menu item
func (r *GormMenuItemRepository) Save(ctx context.Context, item *dining.MenuItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete removes a menu item together with its placements
func (r *GormMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).
			Delete(&dining.MenuItemPlacement{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&dining.MenuItem{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormMenuItemRepository implements MenuItemRepository
var _ dining.MenuItemRepository = (*GormMenuItemRepository)(nil)
