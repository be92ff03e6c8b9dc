package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
	ErrPlanHeadAmount         = errors.New("installment plan head must have zero amount")
	ErrInstallmentNumber      = errors.New("installment number out of range")
	ErrOrphanInstallment      = errors.New("child transaction requires a parent transaction")
)

// Transaction represents a single financial movement. A transaction is either
// a standalone movement, the head of an installment plan (IsInstallment true,
// zero amount, installment number 0), or one dated child of such a plan
// (ParentTransactionID set, installment number in [1, TotalInstallments]).
type Transaction struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	Description         string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Type                string          `gorm:"type:varchar(10);not null" json:"type"`
	TransactionDate     time.Time       `gorm:"type:date;not null" json:"transaction_date"`
	DueDate             time.Time       `gorm:"type:date;not null" json:"due_date"`
	IsPaid              bool            `gorm:"not null;default:false" json:"is_paid"`
	PaidDate            *time.Time      `json:"paid_date,omitempty"`
	CategoryID          *uint           `gorm:"index" json:"category_id,omitempty"`
	OwnerID             uint            `gorm:"not null;index" json:"owner_id"`
	IsInstallment       bool            `gorm:"not null;default:false" json:"is_installment"`
	ParentTransactionID *uint           `gorm:"index" json:"parent_transaction_id,omitempty"`
	InstallmentNumber   int             `gorm:"not null;default:0" json:"installment_number"`
	TotalInstallments   int             `gorm:"not null;default:1" json:"total_installments"`
	CreatedAt           time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Owner    Owner     `gorm:"foreignKey:OwnerID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	if t.TotalInstallments == 0 {
		t.TotalInstallments = 1
	}
	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields and installment invariants
func (t *Transaction) Validate() error {
	if t.OwnerID == 0 {
		return errors.New("transaction owner is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.DueDate.IsZero() {
		return errors.New("transaction due date is required")
	}

	if t.IsInstallment {
		if !t.Amount.IsZero() {
			return ErrPlanHeadAmount
		}
		if t.InstallmentNumber != 0 {
			return ErrInstallmentNumber
		}
		if t.TotalInstallments < 2 {
			return errors.New("installment plan requires at least two installments")
		}
	}

	if t.ParentTransactionID != nil {
		if t.InstallmentNumber < 1 || t.InstallmentNumber > t.TotalInstallments {
			return ErrInstallmentNumber
		}
	} else if t.InstallmentNumber > 0 {
		return ErrOrphanInstallment
	}

	return nil
}

// IsPlanHead returns true for the zero-amount head of an installment plan
func (t *Transaction) IsPlanHead() bool {
	return t.IsInstallment
}

// IsPlanChild returns true for a dated child of an installment plan
func (t *Transaction) IsPlanChild() bool {
	return t.ParentTransactionID != nil
}

// MarkPaid marks the transaction paid as of now
func (t *Transaction) MarkPaid() {
	now := time.Now()
	t.IsPaid = true
	t.PaidDate = &now
}

// AssignCategory files the transaction under the given category
func (t *Transaction) AssignCategory(categoryID uint) {
	t.CategoryID = &categoryID
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction direction is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
