package dining

import (
	"time"

	"github.com/google/uuid"
	"github.com/menuboard/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MenuItemPlacement links a menu item onto a menu with a placement-scoped
// price. At most one placement exists per (menu, item) pair.
type MenuItemPlacement struct {
	shared.BaseEntity
	MenuID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_placement_menu_item,priority:1"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_placement_menu_item,priority:2"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (MenuItemPlacement) TableName() string {
	return "menu_item_placements"
}

// NewMenuItemPlacement creates a placement with price defaulting to zero
func NewMenuItemPlacement(menuID, menuItemID uuid.UUID) (*MenuItemPlacement, error) {
	if menuID == uuid.Nil || menuItemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PLACEMENT", "Placement requires a menu and a menu item")
	}

	return &MenuItemPlacement{
		BaseEntity: shared.NewBaseEntity(),
		MenuID:     menuID,
		MenuItemID: menuItemID,
		Price:      decimal.Zero,
	}, nil
}

// SetPrice updates the placement price. Negative prices are rejected.
func (p *MenuItemPlacement) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price must be greater than or equal to 0")
	}

	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}
