package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseWith(description string, amount float64) *Transaction {
	return &Transaction{
		Description: description,
		Amount:      decimal.NewFromFloat(amount),
		Type:        TransactionTypeExpense,
		DueDate:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		OwnerID:     1,
	}
}

func TestParseConditionKind(t *testing.T) {
	assert.Equal(t, ConditionDescriptionContains, ParseConditionKind("DESCRIPTION_CONTAINS"))
	assert.Equal(t, ConditionAmountRange, ParseConditionKind("AMOUNT_RANGE"))
	assert.Equal(t, ConditionMerchant, ParseConditionKind("MERCHANT"))
	assert.Equal(t, ConditionNone, ParseConditionKind("REGEX_MATCH"))
	assert.Equal(t, ConditionNone, ParseConditionKind(""))
}

func TestParseActionKind(t *testing.T) {
	assert.Equal(t, ActionAutoCategorize, ParseActionKind("AUTO_CATEGORIZE"))
	assert.Equal(t, ActionAutoApprove, ParseActionKind("AUTO_APPROVE"))
	assert.Equal(t, ActionNone, ParseActionKind("SEND_EMAIL"))
	assert.Equal(t, ActionNone, ParseActionKind(""))
}

func TestAutomationRule_Matches_DescriptionContains(t *testing.T) {
	tests := []struct {
		name        string
		needle      string
		description string
		want        bool
	}{
		{"exact substring", "market", "Supermarket run", true},
		{"case insensitive needle", "MARKET", "supermarket run", true},
		{"case insensitive description", "market", "SUPERMARKET RUN", true},
		{"no match", "pharmacy", "Supermarket run", false},
		{"empty description never matches", "market", "", false},
		{"empty needle never matches", "", "Supermarket run", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := AutomationRule{
				ConditionType:  string(ConditionDescriptionContains),
				ConditionValue: tt.needle,
			}
			txn := expenseWith(tt.description, 100)
			assert.Equal(t, tt.want, rule.Matches(txn))
		})
	}
}

func TestAutomationRule_Matches_Merchant(t *testing.T) {
	// MERCHANT shares the substring semantics of DESCRIPTION_CONTAINS
	rule := AutomationRule{
		ConditionType:  string(ConditionMerchant),
		ConditionValue: "netflix",
	}

	assert.True(t, rule.Matches(expenseWith("NETFLIX.COM subscription", 39.90)))
	assert.False(t, rule.Matches(expenseWith("Spotify subscription", 21.90)))
}

func TestAutomationRule_Matches_AmountRange(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		amount float64
		want   bool
	}{
		{"inside range", "10:100", 50, true},
		{"lower bound is inclusive", "10:100", 10, true},
		{"upper bound is inclusive", "10:100", 100, true},
		{"below range", "10:100", 9.99, false},
		{"above range", "10:100", 100.01, false},
		{"open lower bound", ":100", 0, true},
		{"open upper bound", "10:", 100000, true},
		{"both bounds open matches everything", ":", 42, true},
		{"missing separator never matches", "100", 100, false},
		{"garbage min never matches", "abc:100", 50, false},
		{"garbage max never matches", "10:xyz", 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := AutomationRule{
				ConditionType:  string(ConditionAmountRange),
				ConditionValue: tt.value,
			}
			txn := expenseWith("Anything", tt.amount)
			assert.Equal(t, tt.want, rule.Matches(txn))
		})
	}
}

func TestAutomationRule_Matches_UnknownConditionNeverMatches(t *testing.T) {
	rule := AutomationRule{
		ConditionType:  "REGEX_MATCH",
		ConditionValue: ".*",
	}

	assert.False(t, rule.Matches(expenseWith("Anything at all", 10)))
}

func TestAutomationRule_Matches_NilTransaction(t *testing.T) {
	rule := AutomationRule{
		ConditionType:  string(ConditionDescriptionContains),
		ConditionValue: "market",
	}

	assert.False(t, rule.Matches(nil))
}

func TestAutomationRule_Effect_AutoCategorize(t *testing.T) {
	rule := AutomationRule{
		ActionType:  string(ActionAutoCategorize),
		ActionValue: "42",
	}

	effect := rule.Effect()

	require.NotNil(t, effect.CategoryID)
	assert.Equal(t, uint(42), *effect.CategoryID)
	assert.False(t, effect.MarkPaid)
	assert.False(t, effect.IsNoop())
}

func TestAutomationRule_Effect_AutoApprove(t *testing.T) {
	rule := AutomationRule{ActionType: string(ActionAutoApprove)}

	effect := rule.Effect()

	assert.Nil(t, effect.CategoryID)
	assert.True(t, effect.MarkPaid)
	assert.False(t, effect.IsNoop())
}

func TestAutomationRule_Effect_MalformedValuePlansNoop(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"non numeric", "groceries"},
		{"empty", ""},
		{"zero id", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := AutomationRule{
				ActionType:  string(ActionAutoCategorize),
				ActionValue: tt.value,
			}
			assert.True(t, rule.Effect().IsNoop())
		})
	}
}

func TestAutomationRule_Effect_UnknownActionPlansNoop(t *testing.T) {
	rule := AutomationRule{
		ActionType:  "SEND_EMAIL",
		ActionValue: "someone@example.com",
	}

	assert.True(t, rule.Effect().IsNoop())
}

func TestAutomationRule_RecordExecution(t *testing.T) {
	rule := AutomationRule{ExecutionCount: 3}
	at := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	rule.RecordExecution(at)

	assert.Equal(t, int64(4), rule.ExecutionCount)
	require.NotNil(t, rule.LastExecution)
	assert.Equal(t, at, *rule.LastExecution)
}

func TestAutomationRule_Validate(t *testing.T) {
	valid := AutomationRule{Name: "Categorize groceries", OwnerID: 1}
	assert.NoError(t, valid.Validate())

	missingName := AutomationRule{OwnerID: 1}
	assert.ErrorIs(t, missingName.Validate(), ErrRuleNameRequired)

	missingOwner := AutomationRule{Name: "Categorize groceries"}
	assert.ErrorIs(t, missingOwner.Validate(), ErrRuleOwnerRequired)
}
