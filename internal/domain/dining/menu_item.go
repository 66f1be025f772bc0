package dining

import (
	"time"

	"github.com/menuboard/backend/internal/domain/shared"
)

// MenuItem represents a globally shared dish. Items are independent of any
// restaurant and appear on menus through placements; the same item may carry
// a different price on each menu.
type MenuItem struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (MenuItem) TableName() string {
	return "menu_items"
}

// NewMenuItem creates a menu item with a normalized name
func NewMenuItem(name string) (*MenuItem, error) {
	normalized, err := validateName(name)
	if err != nil {
		return nil, err
	}

	return &MenuItem{
		BaseEntity: shared.NewBaseEntity(),
		Name:       normalized,
	}, nil
}

// Rename updates the item's name
func (i *MenuItem) Rename(name string) error {
	normalized, err := validateName(name)
	if err != nil {
		return err
	}

	i.Name = normalized
	i.UpdatedAt = time.Now()
	return nil
}
