package models

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ConditionKind is the closed set of rule condition variants. Strings not in
// the set parse to ConditionNone, which never matches, so rules written for
// a newer vocabulary degrade to no-ops instead of failing.
type ConditionKind string

const (
	ConditionDescriptionContains ConditionKind = "DESCRIPTION_CONTAINS"
	ConditionAmountRange         ConditionKind = "AMOUNT_RANGE"
	ConditionMerchant            ConditionKind = "MERCHANT"
	ConditionNone                ConditionKind = "NONE"
)

// ActionKind is the closed set of rule action variants. Unknown strings parse
// to ActionNone, an explicit no-op.
type ActionKind string

const (
	ActionAutoCategorize ActionKind = "AUTO_CATEGORIZE"
	ActionAutoApprove    ActionKind = "AUTO_APPROVE"
	ActionNone           ActionKind = "NONE"
)

var (
	ErrRuleNameRequired  = errors.New("automation rule name is required")
	ErrRuleOwnerRequired = errors.New("automation rule owner is required")
)

// ParseConditionKind maps a stored condition type to its variant
func ParseConditionKind(s string) ConditionKind {
	switch ConditionKind(s) {
	case ConditionDescriptionContains, ConditionAmountRange, ConditionMerchant:
		return ConditionKind(s)
	default:
		return ConditionNone
	}
}

// ParseActionKind maps a stored action type to its variant
func ParseActionKind(s string) ActionKind {
	switch ActionKind(s) {
	case ActionAutoCategorize, ActionAutoApprove:
		return ActionKind(s)
	default:
		return ActionNone
	}
}

// AutomationRule is a priority-ordered condition→action binding owned by one
// account. Rules are created and edited elsewhere; the pipeline only reads
// them and appends execution bookkeeping.
type AutomationRule struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"type:varchar(100);not null" json:"name"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	ConditionType  string     `gorm:"type:varchar(30);not null" json:"condition_type"`
	ConditionValue string     `gorm:"type:varchar(255);not null" json:"condition_value"`
	ActionType     string     `gorm:"type:varchar(30);not null" json:"action_type"`
	ActionValue    string     `gorm:"type:varchar(255)" json:"action_value,omitempty"`
	IsActive       bool       `gorm:"not null;default:true;index" json:"is_active"`
	Priority       int        `gorm:"not null;default:0" json:"priority"`
	ExecutionCount int64      `gorm:"not null;default:0" json:"execution_count"`
	LastExecution  *time.Time `json:"last_execution,omitempty"`
	OwnerID        uint       `gorm:"not null;index" json:"owner_id"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`

	Owner Owner `gorm:"foreignKey:OwnerID" json:"-"`
}

func (r *AutomationRule) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
	return r.Validate()
}

func (r *AutomationRule) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}

// Validate validates the rule fields
func (r *AutomationRule) Validate() error {
	if r.Name == "" {
		return ErrRuleNameRequired
	}
	if r.OwnerID == 0 {
		return ErrRuleOwnerRequired
	}
	return nil
}

// Condition returns the pure matching predicate for this rule
func (r *AutomationRule) Condition() Condition {
	switch ParseConditionKind(r.ConditionType) {
	case ConditionDescriptionContains, ConditionMerchant:
		return descriptionContains{needle: r.ConditionValue}
	case ConditionAmountRange:
		return parseAmountRange(r.ConditionValue)
	default:
		return noCondition{}
	}
}

// Matches reports whether the rule's condition holds for the transaction.
// Pure: no persistence, no clock, no mutation.
func (r *AutomationRule) Matches(txn *Transaction) bool {
	if txn == nil {
		return false
	}
	return r.Condition().Matches(txn)
}

// Effect describes the state change the rule's action asks for. Planning an
// effect is pure; executing it (category lookup, persistence) is the rule
// engine's job.
type Effect struct {
	CategoryID *uint
	MarkPaid   bool
}

// IsNoop reports whether the effect changes nothing
func (e Effect) IsNoop() bool {
	return e.CategoryID == nil && !e.MarkPaid
}

// Effect plans the rule's action against a transaction. A malformed action
// value (e.g. a non-numeric category reference) plans a no-op.
func (r *AutomationRule) Effect() Effect {
	switch ParseActionKind(r.ActionType) {
	case ActionAutoCategorize:
		id, err := strconv.ParseUint(strings.TrimSpace(r.ActionValue), 10, 64)
		if err != nil || id == 0 {
			return Effect{}
		}
		categoryID := uint(id)
		return Effect{CategoryID: &categoryID}
	case ActionAutoApprove:
		return Effect{MarkPaid: true}
	default:
		return Effect{}
	}
}

// RecordExecution appends execution bookkeeping after a successful apply
func (r *AutomationRule) RecordExecution(at time.Time) {
	r.ExecutionCount++
	r.LastExecution = &at
}

// TableName returns the table name for AutomationRule
func (r *AutomationRule) TableName() string {
	return "automation_rules"
}

// Condition is the capability a condition variant offers: a pure check of a
// transaction against the rule's condition value.
type Condition interface {
	Matches(txn *Transaction) bool
}

// descriptionContains backs DESCRIPTION_CONTAINS and MERCHANT: both check the
// transaction description for a case-insensitive substring.
type descriptionContains struct {
	needle string
}

func (c descriptionContains) Matches(txn *Transaction) bool {
	if txn.Description == "" || c.needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(txn.Description), strings.ToLower(c.needle))
}

// amountRange backs AMOUNT_RANGE with inclusive, optionally unbounded limits
type amountRange struct {
	min *decimal.Decimal
	max *decimal.Decimal
}

func (c amountRange) Matches(txn *Transaction) bool {
	if c.min != nil && txn.Amount.LessThan(*c.min) {
		return false
	}
	if c.max != nil && txn.Amount.GreaterThan(*c.max) {
		return false
	}
	return true
}

// noCondition never matches
type noCondition struct{}

func (noCondition) Matches(*Transaction) bool { return false }

// parseAmountRange parses a "min:max" pair where either side may be empty
// meaning unbounded. Anything not in that two-part form never matches.
func parseAmountRange(value string) Condition {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return noCondition{}
	}

	var bounds amountRange
	if minPart := strings.TrimSpace(parts[0]); minPart != "" {
		min, err := decimal.NewFromString(minPart)
		if err != nil {
			return noCondition{}
		}
		bounds.min = &min
	}
	if maxPart := strings.TrimSpace(parts[1]); maxPart != "" {
		max, err := decimal.NewFromString(maxPart)
		if err != nil {
			return noCondition{}
		}
		bounds.max = &max
	}
	return bounds
}
