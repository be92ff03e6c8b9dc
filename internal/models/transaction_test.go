package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	dueDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	parentID := uint(10)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     bool
		errMsg      string
	}{
		{
			name: "valid expense transaction",
			transaction: Transaction{
				Description: "Supermarket",
				Amount:      decimal.NewFromFloat(120.50),
				Type:        TransactionTypeExpense,
				DueDate:     dueDate,
				OwnerID:     1,
			},
			wantErr: false,
		},
		{
			name: "valid income transaction",
			transaction: Transaction{
				Description: "Salary",
				Amount:      decimal.NewFromFloat(5000.00),
				Type:        TransactionTypeIncome,
				DueDate:     dueDate,
				OwnerID:     1,
			},
			wantErr: false,
		},
		{
			name: "valid zero amount transaction",
			transaction: Transaction{
				Description: "Adjustment",
				Amount:      decimal.Zero,
				Type:        TransactionTypeExpense,
				DueDate:     dueDate,
				OwnerID:     1,
			},
			wantErr: false,
		},
		{
			name: "valid installment plan head",
			transaction: Transaction{
				Description:       "Laptop",
				Amount:            decimal.Zero,
				Type:              TransactionTypeExpense,
				DueDate:           dueDate,
				OwnerID:           1,
				IsInstallment:     true,
				InstallmentNumber: 0,
				TotalInstallments: 12,
			},
			wantErr: false,
		},
		{
			name: "valid installment child",
			transaction: Transaction{
				Description:         "Laptop (3/12)",
				Amount:              decimal.NewFromFloat(100.00),
				Type:                TransactionTypeExpense,
				DueDate:             dueDate,
				OwnerID:             1,
				ParentTransactionID: &parentID,
				InstallmentNumber:   3,
				TotalInstallments:   12,
			},
			wantErr: false,
		},
		{
			name: "missing owner",
			transaction: Transaction{
				Description: "Supermarket",
				Amount:      decimal.NewFromFloat(120.50),
				Type:        TransactionTypeExpense,
				DueDate:     dueDate,
			},
			wantErr: true,
			errMsg:  "transaction owner is required",
		},
		{
			name: "invalid type",
			transaction: Transaction{
				Description: "Supermarket",
				Amount:      decimal.NewFromFloat(120.50),
				Type:        "TRANSFER",
				DueDate:     dueDate,
				OwnerID:     1,
			},
			wantErr: true,
			errMsg:  "invalid transaction type",
		},
		{
			name: "lowercase type rejected",
			transaction: Transaction{
				Description: "Supermarket",
				Amount:      decimal.NewFromFloat(120.50),
				Type:        "expense",
				DueDate:     dueDate,
				OwnerID:     1,
			},
			wantErr: true,
			errMsg:  "invalid transaction type",
		},
		{
			name: "missing description",
			transaction: Transaction{
				Amount:  decimal.NewFromFloat(120.50),
				Type:    TransactionTypeExpense,
				DueDate: dueDate,
				OwnerID: 1,
			},
			wantErr: true,
			errMsg:  "transaction description is required",
		},
		{
			name: "negative amount",
			transaction: Transaction{
				Description: "Refund gone wrong",
				Amount:      decimal.NewFromFloat(-10.00),
				Type:        TransactionTypeExpense,
				DueDate:     dueDate,
				OwnerID:     1,
			},
			wantErr: true,
			errMsg:  "must not be negative",
		},
		{
			name: "missing due date",
			transaction: Transaction{
				Description: "Supermarket",
				Amount:      decimal.NewFromFloat(120.50),
				Type:        TransactionTypeExpense,
				OwnerID:     1,
			},
			wantErr: true,
			errMsg:  "transaction due date is required",
		},
		{
			name: "plan head with nonzero amount",
			transaction: Transaction{
				Description:       "Laptop",
				Amount:            decimal.NewFromFloat(1200.00),
				Type:              TransactionTypeExpense,
				DueDate:           dueDate,
				OwnerID:           1,
				IsInstallment:     true,
				TotalInstallments: 12,
			},
			wantErr: true,
			errMsg:  "zero amount",
		},
		{
			name: "plan head with installment number",
			transaction: Transaction{
				Description:       "Laptop",
				Amount:            decimal.Zero,
				Type:              TransactionTypeExpense,
				DueDate:           dueDate,
				OwnerID:           1,
				IsInstallment:     true,
				InstallmentNumber: 1,
				TotalInstallments: 12,
			},
			wantErr: true,
			errMsg:  "installment number out of range",
		},
		{
			name: "plan head with single installment",
			transaction: Transaction{
				Description:       "Laptop",
				Amount:            decimal.Zero,
				Type:              TransactionTypeExpense,
				DueDate:           dueDate,
				OwnerID:           1,
				IsInstallment:     true,
				TotalInstallments: 1,
			},
			wantErr: true,
			errMsg:  "at least two installments",
		},
		{
			name: "child with number above total",
			transaction: Transaction{
				Description:         "Laptop (13/12)",
				Amount:              decimal.NewFromFloat(100.00),
				Type:                TransactionTypeExpense,
				DueDate:             dueDate,
				OwnerID:             1,
				ParentTransactionID: &parentID,
				InstallmentNumber:   13,
				TotalInstallments:   12,
			},
			wantErr: true,
			errMsg:  "installment number out of range",
		},
		{
			name: "child with zero number",
			transaction: Transaction{
				Description:         "Laptop (0/12)",
				Amount:              decimal.NewFromFloat(100.00),
				Type:                TransactionTypeExpense,
				DueDate:             dueDate,
				OwnerID:             1,
				ParentTransactionID: &parentID,
				InstallmentNumber:   0,
				TotalInstallments:   12,
			},
			wantErr: true,
			errMsg:  "installment number out of range",
		},
		{
			name: "installment number without parent",
			transaction: Transaction{
				Description:       "Orphan",
				Amount:            decimal.NewFromFloat(100.00),
				Type:              TransactionTypeExpense,
				DueDate:           dueDate,
				OwnerID:           1,
				InstallmentNumber: 2,
				TotalInstallments: 12,
			},
			wantErr: true,
			errMsg:  "requires a parent transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_MarkPaid(t *testing.T) {
	txn := Transaction{
		Description: "Electric bill",
		Amount:      decimal.NewFromFloat(85.30),
		Type:        TransactionTypeExpense,
		DueDate:     time.Now(),
		OwnerID:     1,
	}

	require.False(t, txn.IsPaid)
	require.Nil(t, txn.PaidDate)

	txn.MarkPaid()

	assert.True(t, txn.IsPaid)
	require.NotNil(t, txn.PaidDate)
	assert.WithinDuration(t, time.Now(), *txn.PaidDate, time.Second)
}

func TestTransaction_AssignCategory(t *testing.T) {
	txn := Transaction{}

	txn.AssignCategory(7)

	require.NotNil(t, txn.CategoryID)
	assert.Equal(t, uint(7), *txn.CategoryID)
}

func TestTransaction_PlanHelpers(t *testing.T) {
	parentID := uint(5)

	head := Transaction{IsInstallment: true}
	child := Transaction{ParentTransactionID: &parentID, InstallmentNumber: 2}
	single := Transaction{}

	assert.True(t, head.IsPlanHead())
	assert.False(t, head.IsPlanChild())

	assert.False(t, child.IsPlanHead())
	assert.True(t, child.IsPlanChild())

	assert.False(t, single.IsPlanHead())
	assert.False(t, single.IsPlanChild())
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypeIncome))
	assert.True(t, IsValidTransactionType(TransactionTypeExpense))
	assert.False(t, IsValidTransactionType("income"))
	assert.False(t, IsValidTransactionType("TRANSFER"))
	assert.False(t, IsValidTransactionType(""))
}
