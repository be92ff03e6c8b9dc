package dto

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for calendar dates in the inbound envelope
const dateLayout = "2006-01-02"

// Date is a calendar date carried as "YYYY-MM-DD" on the wire
type Date struct {
	time.Time
}

// NewDate builds a Date from a year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON parses a quoted "YYYY-MM-DD" string; null leaves the zero date
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	s := string(bytes.Trim(data, `"`))
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected format %s", s, dateLayout)
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

// TransactionEvent is the inbound message envelope: one per log record
type TransactionEvent struct {
	Operation   string             `json:"operation" validate:"required"`
	OwnerID     uint               `json:"ownerId" validate:"required"`
	Transaction TransactionPayload `json:"transaction"`
}

// TransactionPayload carries the transaction to materialize
type TransactionPayload struct {
	Description       string          `json:"description" validate:"required"`
	Amount            decimal.Decimal `json:"amount" validate:"positive_amount"`
	Type              string          `json:"type" validate:"required,transaction_type"`
	TransactionDate   *Date           `json:"transactionDate,omitempty"`
	DueDate           Date            `json:"dueDate" validate:"required"`
	IsPaid            *bool           `json:"isPaid,omitempty"`
	Category          *CategoryRef    `json:"category,omitempty"`
	TotalInstallments *int            `json:"totalInstallments,omitempty"`
}

// CategoryRef is the optional category reference inside a payload
type CategoryRef struct {
	ID uint `json:"id" validate:"required"`
}

// EffectiveTransactionDate returns the transaction date, defaulting to the
// due date when absent
func (p *TransactionPayload) EffectiveTransactionDate() time.Time {
	if p.TransactionDate != nil && !p.TransactionDate.IsZero() {
		return p.TransactionDate.Time
	}
	return p.DueDate.Time
}

// EffectivePaid returns the paid flag, defaulting to false when absent
func (p *TransactionPayload) EffectivePaid() bool {
	return p.IsPaid != nil && *p.IsPaid
}

// InstallmentCount returns the number of installments, at least 1
func (p *TransactionPayload) InstallmentCount() int {
	if p.TotalInstallments == nil || *p.TotalInstallments < 1 {
		return 1
	}
	return *p.TotalInstallments
}

// RequiresExpansion reports whether the payload is the head of an
// installment plan
func (p *TransactionPayload) RequiresExpansion() bool {
	return p.InstallmentCount() > 1
}

// CategoryID returns the referenced category id, or 0 when absent
func (p *TransactionPayload) CategoryID() uint {
	if p.Category == nil {
		return 0
	}
	return p.Category.ID
}
