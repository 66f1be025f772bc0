package persistence

import (
	"context"

	"github.com/menuboard/backend/internal/domain/dining"
	"gorm.io/gorm"
)

// NewRepositorySet builds the dining repositories bound to a GORM handle
func NewRepositorySet(db *gorm.DB) dining.RepositorySet {
	return dining.RepositorySet{
		Restaurants: NewGormRestaurantRepository(db),
		Menus:       NewGormMenuRepository(db),
		MenuItems:   NewGormMenuItemRepository(db),
		Placements:  NewGormPlacementRepository(db),
	}
}

// GormTransactionManager implements dining.TransactionManager on top of GORM
// transactions. Every repository handed to the callback shares the same
// transaction; an error from the callback rolls the whole transaction back.
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a new GormTransactionManager
func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

// Transaction implements dining.TransactionManager
func (m *GormTransactionManager) Transaction(ctx context.Context, fn func(repos dining.RepositorySet) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositorySet(tx))
	})
}

// Ensure GormTransactionManager implements TransactionManager
var _ dining.TransactionManager = (*GormTransactionManager)(nil)
