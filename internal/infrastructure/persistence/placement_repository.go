package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPlacementRepository implements PlacementRepository using GORM
type GormPlacementRepository struct {
	db *gorm.DB
}

// NewGormPlacementRepository creates a new GormPlacementRepository
func NewGormPlacementRepository(db *gorm.DB) *GormPlacementRepository {
	return &GormPlacementRepository{db: db}
}

// FindByMenuAndItem finds the placement for a (menu, item) pair
func (r *GormPlacementRepository) FindByMenuAndItem(ctx context.Context, menuID, menuItemID uuid.UUID) (*dining.MenuItemPlacement, error) {
	var placement dining.MenuItemPlacement
	if err := r.db.WithContext(ctx).
		Where("menu_id = ? AND menu_item_id = ?", menuID, menuItemID).
		First(&placement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &placement, nil
}

// FindAllForMenu lists all placements on a menu
func (r *GormPlacementRepository) FindAllForMenu(ctx context.Context, menuID uuid.UUID) ([]dining.MenuItemPlacement, error) {
	var placements []dining.MenuItemPlacement
	if err := r.db.WithContext(ctx).
		Where("menu_id = ?", menuID).
		Order("created_at ASC").
		Find(&placements).Error; err != nil {
		return nil, err
	}
	return placements, nil
}

// Save creates or updates a placement
func (r *GormPlacementRepository) Save(ctx context.Context, placement *dining.MenuItemPlacement) error {
	if err := r.db.WithContext(ctx).Save(placement).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete removes a placement by ID
func (r *GormPlacementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&dining.MenuItemPlacement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteForMenuItem removes all placements referencing a menu item
func (r *GormPlacementRepository) DeleteForMenuItem(ctx context.Context, menuItemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		Delete(&dining.MenuItemPlacement{}).Error
}

// Ensure GormPlacementRepository implements PlacementRepository
var _ dining.PlacementRepository = (*GormPlacementRepository)(nil)
