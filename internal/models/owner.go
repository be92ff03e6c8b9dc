package models

import (
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"
)

var (
	ownerEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Owner is the account that transactions, categories and automation rules
// belong to. The pipeline only ever reads owners; they are provisioned by the
// surrounding system.
type Owner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Categories      []Category       `gorm:"foreignKey:OwnerID" json:"-"`
	Transactions    []Transaction    `gorm:"foreignKey:OwnerID" json:"-"`
	AutomationRules []AutomationRule `gorm:"foreignKey:OwnerID" json:"-"`
}

func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}
	return o.Validate()
}

// Validate validates the owner fields
func (o *Owner) Validate() error {
	if o.Name == "" {
		return errors.New("owner name is required")
	}
	if !ownerEmailRegex.MatchString(o.Email) {
		return errors.New("owner email is invalid")
	}
	return nil
}

// TableName returns the table name for Owner
func (o *Owner) TableName() string {
	return "owners"
}
