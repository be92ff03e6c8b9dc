package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"valid date", `"2026-03-15"`, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"null leaves zero date", `null`, time.Time{}, false},
		{"leap day", `"2024-02-29"`, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"wrong format", `"15/03/2026"`, time.Time{}, true},
		{"timestamp rejected", `"2026-03-15T10:00:00Z"`, time.Time{}, true},
		{"nonexistent day", `"2026-02-30"`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time), "got %v, want %v", d.Time, tt.want)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2026, time.March, 15)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-15"`, string(data))

	var zero Date
	data, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestTransactionEvent_Unmarshal(t *testing.T) {
	payload := `{
		"operation": "CREATE",
		"ownerId": 12,
		"transaction": {
			"description": "Supermarket",
			"amount": 120.50,
			"type": "EXPENSE",
			"dueDate": "2026-03-15",
			"isPaid": true,
			"category": {"id": 3},
			"totalInstallments": 4
		}
	}`

	var event TransactionEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &event))

	assert.Equal(t, "CREATE", event.Operation)
	assert.Equal(t, uint(12), event.OwnerID)
	assert.Equal(t, "Supermarket", event.Transaction.Description)
	assert.Equal(t, "120.5", event.Transaction.Amount.String())
	assert.Equal(t, "EXPENSE", event.Transaction.Type)
	assert.True(t, event.Transaction.EffectivePaid())
	assert.Equal(t, uint(3), event.Transaction.CategoryID())
	assert.Equal(t, 4, event.Transaction.InstallmentCount())
	assert.True(t, event.Transaction.RequiresExpansion())
}

func TestTransactionPayload_EffectiveTransactionDate(t *testing.T) {
	due := NewDate(2026, time.March, 15)
	explicit := NewDate(2026, time.March, 10)

	withDate := TransactionPayload{TransactionDate: &explicit, DueDate: due}
	assert.Equal(t, explicit.Time, withDate.EffectiveTransactionDate())

	withoutDate := TransactionPayload{DueDate: due}
	assert.Equal(t, due.Time, withoutDate.EffectiveTransactionDate())

	var zero Date
	withZeroDate := TransactionPayload{TransactionDate: &zero, DueDate: due}
	assert.Equal(t, due.Time, withZeroDate.EffectiveTransactionDate())
}

func TestTransactionPayload_EffectivePaid(t *testing.T) {
	paid := true
	unpaid := false

	assert.True(t, (&TransactionPayload{IsPaid: &paid}).EffectivePaid())
	assert.False(t, (&TransactionPayload{IsPaid: &unpaid}).EffectivePaid())
	assert.False(t, (&TransactionPayload{}).EffectivePaid())
}

func TestTransactionPayload_InstallmentCount(t *testing.T) {
	twelve := 12
	one := 1
	zero := 0

	assert.Equal(t, 12, (&TransactionPayload{TotalInstallments: &twelve}).InstallmentCount())
	assert.Equal(t, 1, (&TransactionPayload{TotalInstallments: &one}).InstallmentCount())
	assert.Equal(t, 1, (&TransactionPayload{TotalInstallments: &zero}).InstallmentCount())
	assert.Equal(t, 1, (&TransactionPayload{}).InstallmentCount())

	assert.False(t, (&TransactionPayload{TotalInstallments: &one}).RequiresExpansion())
	assert.True(t, (&TransactionPayload{TotalInstallments: &twelve}).RequiresExpansion())
}

func TestTransactionPayload_CategoryID(t *testing.T) {
	withRef := TransactionPayload{Category: &CategoryRef{ID: 9}}
	assert.Equal(t, uint(9), withRef.CategoryID())

	withoutRef := TransactionPayload{}
	assert.Equal(t, uint(0), withoutRef.CategoryID())
}
