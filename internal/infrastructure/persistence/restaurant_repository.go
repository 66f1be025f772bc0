package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GormRestaurantRepository
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// FindByID finds a restaurant by its ID
func (r *GormRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*dining.Restaurant, error) {
	var restaurant dining.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// FindByNormalizedName finds a restaurant whose name matches case-insensitively
func (r *GormRestaurantRepository) FindByNormalizedName(ctx context.Context, name string) (*dining.Restaurant, error) {
	var restaurant dining.Restaurant
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", dining.NormalizeName(name)).
		First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// FindAll lists restaurants matching the filter
func (r *GormRestaurantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]dining.Restaurant, error) {
	var restaurants []dining.Restaurant
	if err := applyListFilter(r.db.WithContext(ctx), filter).
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// Count counts restaurants matching the filter
func (r *GormRestaurantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := applySearch(r.db.WithContext(ctx).Model(&dining.Restaurant{}), filter).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a restaurant
func (r *GormRestaurantRepository) Save(ctx context.Context, restaurant *dining.Restaurant) error {
	if err := r.db.WithContext(ctx).Save(restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete removes a restaurant together with its menus and their placements
func (r *GormRestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		menuIDs := tx.Model(&dining.Menu{}).Select("id").Where("restaurant_id = ?", id)
		if err := tx.Where("menu_id IN (?)", menuIDs).
			Delete(&dining.MenuItemPlacement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&dining.Menu{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&dining.Restaurant{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// listSortFields whitelists columns clients may sort on. All listable
// entities share the same name/timestamp shape.
var listSortFields = map[string]bool{
	"name":       true,
	"created_at": true,
	"updated_at": true,
}

// applyListFilter applies search, ordering, and pagination to a list query
func applyListFilter(db *gorm.DB, filter shared.Filter) *gorm.DB {
	db = applySearch(db, filter)

	orderBy := ValidateSortField(filter.OrderBy, listSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)

	return db.Order(orderBy + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit())
}

// applySearch applies the case-insensitive name search to a query
func applySearch(db *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		db = db.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	return db
}

// Ensure GormRestaurantRepository implements RestaurantRepository
var _ dining.RestaurantRepository = (*GormRestaurantRepository)(nil)
