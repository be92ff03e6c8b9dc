package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Installment is the payment-schedule record mirroring one child transaction
// of an installment plan. Exactly one row exists per child transaction;
// deleting a plan must remove these rows explicitly together with the
// children rather than relying on the storage engine cascade alone.
type Installment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	TransactionID uint            `gorm:"not null;uniqueIndex" json:"transaction_id"`
	Number        int             `gorm:"not null" json:"number"`
	Total         int             `gorm:"not null" json:"total"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	DueDate       time.Time       `gorm:"type:date;not null" json:"due_date"`
	IsPaid        bool            `gorm:"not null;default:false" json:"is_paid"`
	PaidDate      *time.Time      `json:"paid_date,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`

	Transaction Transaction `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (i *Installment) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}
	return i.Validate()
}

// Validate validates the installment schedule fields
func (i *Installment) Validate() error {
	if i.TransactionID == 0 {
		return errors.New("installment transaction is required")
	}
	if i.Total < 1 {
		return errors.New("installment total must be positive")
	}
	if i.Number < 1 || i.Number > i.Total {
		return ErrInstallmentNumber
	}
	if i.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if i.DueDate.IsZero() {
		return errors.New("installment due date is required")
	}
	return nil
}

// TableName returns the table name for Installment
func (i *Installment) TableName() string {
	return "installments"
}
