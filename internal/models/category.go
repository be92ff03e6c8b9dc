package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
)

// Category is a user-scoped label that transactions can be filed under.
// Each category belongs to exactly one owner and carries the same direction
// semantics as transactions (INCOME or EXPENSE).
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Icon      string    `gorm:"type:varchar(50)" json:"icon,omitempty"`
	Color     string    `gorm:"type:varchar(20)" json:"color,omitempty"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Owner Owner `gorm:"foreignKey:OwnerID" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("category name is required")
	}
	if c.OwnerID == 0 {
		return errors.New("category owner is required")
	}
	if !IsValidTransactionType(c.Type) {
		return ErrInvalidCategoryType
	}
	return nil
}

// BelongsTo reports whether the category is owned by the given owner.
func (c *Category) BelongsTo(ownerID uint) bool {
	return c.OwnerID == ownerID
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}
