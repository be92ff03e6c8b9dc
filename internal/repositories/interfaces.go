package repositories

import (
	"ledgerflow/internal/models"

	"gorm.io/gorm"
)

// OwnerRepositoryInterface defines the read-only owner lookups the pipeline needs
type OwnerRepositoryInterface interface {
	GetByID(id uint) (*models.Owner, error)
}

// CategoryRepositoryInterface defines the read-only category lookups the pipeline needs
type CategoryRepositoryInterface interface {
	GetByID(id uint) (*models.Category, error)
	GetByIDForOwner(id, ownerID uint) (*models.Category, error)
}

// TransactionRepositoryInterface defines the contract for transaction persistence
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	Save(transaction *models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	GetByParentID(parentID uint) ([]models.Transaction, error)
	GetByOwnerID(ownerID uint, offset, limit int) ([]models.Transaction, int64, error)
	CreateBatch(transactions []models.Transaction) error
	DeleteWithChildren(id uint) error
}

// InstallmentRepositoryInterface defines the contract for installment schedule persistence
type InstallmentRepositoryInterface interface {
	CreateBatch(installments []models.Installment) error
	GetByTransactionID(transactionID uint) (*models.Installment, error)
	GetByTransactionIDs(transactionIDs []uint) ([]models.Installment, error)
}

// AutomationRuleRepositoryInterface defines the contract for automation rule access.
// GetActiveByOwner returns active rules ordered by priority descending with
// rule id ascending as the deterministic tie-break.
type AutomationRuleRepositoryInterface interface {
	GetActiveByOwner(ownerID uint) ([]models.AutomationRule, error)
	Save(rule *models.AutomationRule) error
}

// EventLogRepositoryInterface defines the contract for the durable partitioned
// inbound log and its per-partition consumer offsets
type EventLogRepositoryInterface interface {
	Append(partition int, payload string) (*models.InboundEvent, error)
	FetchBatch(partition int, fromOffset int64, limit int) ([]models.InboundEvent, error)
	CommittedOffset(partition int) (int64, error)
	CommitOffset(partition int, nextOffset int64) error
	Lag(partition int) (int64, error)
}

// Stores bundles the per-aggregate repositories the pipeline operates on.
// The delivery controller rebuilds the bundle from the transaction handle so
// every step of one message shares one persistence transaction.
type Stores struct {
	Owners       OwnerRepositoryInterface
	Categories   CategoryRepositoryInterface
	Transactions TransactionRepositoryInterface
	Installments InstallmentRepositoryInterface
	Rules        AutomationRuleRepositoryInterface
}

// NewStores builds a store bundle bound to the given database handle
func NewStores(db *gorm.DB) Stores {
	return Stores{
		Owners:       NewOwnerRepository(db),
		Categories:   NewCategoryRepository(db),
		Transactions: NewTransactionRepository(db),
		Installments: NewInstallmentRepository(db),
		Rules:        NewAutomationRuleRepository(db),
	}
}
