package dining

import (
	"fmt"
	"time"

	"github.com/menuboard/backend/internal/domain/shared"
)

// MaxNameLength is the maximum length for restaurant, menu, and item names
const MaxNameLength = 255

// Restaurant represents a restaurant owning menus
type Restaurant struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (Restaurant) TableName() string {
	return "restaurants"
}

// NewRestaurant creates a restaurant with a normalized name
func NewRestaurant(name string) (*Restaurant, error) {
	normalized, err := validateName(name)
	if err != nil {
		return nil, err
	}

	return &Restaurant{
		BaseEntity: shared.NewBaseEntity(),
		Name:       normalized,
	}, nil
}

// Rename updates the restaurant's name
func (r *Restaurant) Rename(name string) error {
	normalized, err := validateName(name)
	if err != nil {
		return err
	}

	r.Name = normalized
	r.UpdatedAt = time.Now()
	return nil
}

// validateName normalizes a name and validates the result
func validateName(name string) (string, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return "", shared.NewDomainError("INVALID_NAME", "Name can't be blank")
	}
	if len(normalized) > MaxNameLength {
		return "", shared.NewDomainError("INVALID_NAME", fmt.Sprintf("Name cannot exceed %d characters", MaxNameLength))
	}
	return normalized, nil
}
