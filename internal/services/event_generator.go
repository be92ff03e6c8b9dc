package services

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"ledgerflow/internal/dto"
	"ledgerflow/internal/models"
	"ledgerflow/internal/repositories"

	"github.com/shopspring/decimal"
)

// merchantInfo pairs a merchant with the spending category its purchases
// describe
type merchantInfo struct {
	Name     string
	Category string
}

const (
	incomeProbability      = 0.15
	installmentProbability = 0.10
	maxInstallments        = 12
	dueDateSpreadDays      = 90
)

type eventGenerator struct {
	merchantPool []merchantInfo
	rng          *rand.Rand
}

// NewEventGenerator creates a generator of realistic inbound envelopes for
// demos and load tests
func NewEventGenerator() EventGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &eventGenerator{
		merchantPool: initializeMerchantPool(),
		rng:          rand.New(source),
	}
}

// newSeededEventGenerator keeps generated streams reproducible in tests
func newSeededEventGenerator(seed int64) *eventGenerator {
	return &eventGenerator{
		merchantPool: initializeMerchantPool(),
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func initializeMerchantPool() []merchantInfo {
	return []merchantInfo{
		// Groceries
		{"Walmart Supercenter", "Groceries"},
		{"Kroger", "Groceries"},
		{"Whole Foods Market", "Groceries"},
		{"Trader Joe's", "Groceries"},
		{"Costco Wholesale", "Groceries"},
		{"Aldi", "Groceries"},

		// Dining
		{"Starbucks", "Dining"},
		{"Chipotle Mexican Grill", "Dining"},
		{"Panera Bread", "Dining"},
		{"Olive Garden", "Dining"},
		{"Five Guys", "Dining"},

		// Transportation
		{"Uber", "Transportation"},
		{"Lyft", "Transportation"},
		{"Shell", "Transportation"},
		{"Chevron", "Transportation"},
		{"Metro Transit", "Transportation"},

		// Shopping
		{"Amazon.com", "Shopping"},
		{"Best Buy", "Shopping"},
		{"Home Depot", "Shopping"},
		{"IKEA", "Shopping"},
		{"Apple Store", "Shopping"},

		// Entertainment
		{"Netflix", "Entertainment"},
		{"Spotify", "Entertainment"},
		{"AMC Theaters", "Entertainment"},

		// Bills & utilities
		{"AT&T", "Bills"},
		{"Comcast Xfinity", "Bills"},
		{"PG&E", "Bills"},
		{"Water Department", "Bills"},

		// Healthcare
		{"CVS Pharmacy", "Healthcare"},
		{"Walgreens", "Healthcare"},

		// Travel
		{"Delta Air Lines", "Travel"},
		{"Marriott Hotels", "Travel"},
	}
}

// SelectRandomMerchant selects a random merchant from the pool
func (g *eventGenerator) SelectRandomMerchant() (string, string) {
	m := g.merchantPool[g.rng.Intn(len(g.merchantPool))]
	return m.Name, m.Category
}

// GenerateAmount generates a realistic amount for a spending category
func (g *eventGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := g.amountRange(category)
	amount := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(amount).Round(2)
}

func (g *eventGenerator) amountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		"Groceries":      {15.00, 250.00},
		"Dining":         {8.00, 120.00},
		"Transportation": {10.00, 80.00},
		"Shopping":       {25.00, 450.00},
		"Entertainment":  {10.00, 60.00},
		"Bills":          {50.00, 250.00},
		"Healthcare":     {20.00, 300.00},
		"Travel":         {100.00, 800.00},
		"Income":         {2000.00, 8000.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

// GenerateEnvelope builds one CREATE envelope for the owner. Most envelopes
// are single expenses; a slice are salary income, and a slice are installment
// plans.
func (g *eventGenerator) GenerateEnvelope(ownerID uint) *dto.TransactionEvent {
	due := g.generateDueDate()

	if g.rng.Float64() < incomeProbability {
		return &dto.TransactionEvent{
			Operation: models.OperationCreate,
			OwnerID:   ownerID,
			Transaction: dto.TransactionPayload{
				Description: "Direct Deposit - Salary Payment",
				Amount:      g.GenerateAmount("Income"),
				Type:        models.TransactionTypeIncome,
				DueDate:     due,
			},
		}
	}

	merchant, category := g.SelectRandomMerchant()
	payload := dto.TransactionPayload{
		Description: "Purchase at " + merchant,
		Amount:      g.GenerateAmount(category),
		Type:        models.TransactionTypeExpense,
		DueDate:     due,
	}

	if g.rng.Float64() < installmentProbability {
		total := 2 + g.rng.Intn(maxInstallments-1)
		payload.TotalInstallments = &total
	}

	return &dto.TransactionEvent{
		Operation:   models.OperationCreate,
		OwnerID:     ownerID,
		Transaction: payload,
	}
}

func (g *eventGenerator) generateDueDate() dto.Date {
	base := time.Now().UTC()
	offset := g.rng.Intn(dueDateSpreadDays)
	d := base.AddDate(0, 0, offset)
	return dto.NewDate(d.Year(), d.Month(), d.Day())
}

// SeedPartitions appends count generated envelopes to the inbound log,
// spreading them round-robin over the partitions
func (g *eventGenerator) SeedPartitions(eventLog repositories.EventLogRepositoryInterface, ownerID uint, partitions, count int) error {
	if partitions < 1 {
		partitions = 1
	}

	for i := 0; i < count; i++ {
		envelope := g.GenerateEnvelope(ownerID)
		payload, err := json.Marshal(envelope)
		if err != nil {
			return fmt.Errorf("failed to encode generated envelope: %w", err)
		}

		if _, err := eventLog.Append(i%partitions, string(payload)); err != nil {
			return fmt.Errorf("failed to append generated envelope: %w", err)
		}
	}

	return nil
}
