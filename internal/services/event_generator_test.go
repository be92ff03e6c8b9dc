package services

import (
	"encoding/json"
	"testing"

	"ledgerflow/internal/database"
	"ledgerflow/internal/models"
	"ledgerflow/internal/repositories"
	"ledgerflow/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventGenerator_GenerateAmountWithinCategoryRange(t *testing.T) {
	g := newSeededEventGenerator(1)

	for i := 0; i < 100; i++ {
		amount := g.GenerateAmount("Groceries")
		assert.True(t, amount.GreaterThanOrEqual(decimal.NewFromFloat(15.00)))
		assert.True(t, amount.LessThanOrEqual(decimal.NewFromFloat(250.00)))
	}
}

func TestEventGenerator_UnknownCategoryFallsBack(t *testing.T) {
	g := newSeededEventGenerator(1)

	amount := g.GenerateAmount("Unknown")
	assert.True(t, amount.GreaterThanOrEqual(decimal.NewFromFloat(10.00)))
	assert.True(t, amount.LessThanOrEqual(decimal.NewFromFloat(100.00)))
}

func TestEventGenerator_EnvelopesPassDecoding(t *testing.T) {
	g := newSeededEventGenerator(42)
	decoder := NewDecoder(validation.NewValidator())

	for i := 0; i < 50; i++ {
		envelope := g.GenerateEnvelope(7)
		payload, err := json.Marshal(envelope)
		require.NoError(t, err)

		decoded, err := decoder.Decode(payload)
		require.NoError(t, err, "generated envelope must decode: %s", payload)
		assert.Equal(t, uint(7), decoded.OwnerID)
		assert.Equal(t, models.OperationCreate, decoded.Operation)
	}
}

func TestEventGenerator_InstallmentPlansStayInBounds(t *testing.T) {
	g := newSeededEventGenerator(99)

	plans := 0
	for i := 0; i < 200; i++ {
		envelope := g.GenerateEnvelope(1)
		if envelope.Transaction.TotalInstallments == nil {
			continue
		}
		plans++
		assert.GreaterOrEqual(t, *envelope.Transaction.TotalInstallments, 2)
		assert.LessOrEqual(t, *envelope.Transaction.TotalInstallments, 12)
		assert.Equal(t, models.TransactionTypeExpense, envelope.Transaction.Type)
	}
	assert.Greater(t, plans, 0, "200 envelopes should include some installment plans")
}

func TestEventGenerator_SeedPartitionsSpreadsRoundRobin(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)
	eventLog := repositories.NewEventLogRepository(db)

	g := newSeededEventGenerator(7)
	require.NoError(t, g.SeedPartitions(eventLog, 1, 3, 9))

	for partition := 0; partition < 3; partition++ {
		batch, err := eventLog.FetchBatch(partition, 0, 10)
		require.NoError(t, err)
		assert.Len(t, batch, 3)
		for i, event := range batch {
			assert.Equal(t, int64(i), event.Offset)
		}
	}
}
