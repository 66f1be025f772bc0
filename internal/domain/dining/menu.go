package dining

import (
	"time"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/shared"
)

// Menu represents a named menu belonging to one restaurant.
// Menu names are unique per restaurant, case-insensitively.
type Menu struct {
	shared.BaseEntity
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (Menu) TableName() string {
	return "menus"
}

// NewMenu creates a menu for a restaurant with a normalized name
func NewMenu(restaurantID uuid.UUID, name string) (*Menu, error) {
	if restaurantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RESTAURANT", "Menu must belong to a restaurant")
	}

	normalized, err := validateName(name)
	if err != nil {
		return nil, err
	}

	return &Menu{
		BaseEntity:   shared.NewBaseEntity(),
		RestaurantID: restaurantID,
		Name:         normalized,
	}, nil
}

// Rename updates the menu's name
func (m *Menu) Rename(name string) error {
	normalized, err := validateName(name)
	if err != nil {
		return err
	}

	m.Name = normalized
	m.UpdatedAt = time.Now()
	return nil
}
