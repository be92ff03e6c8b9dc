package services

import (
	"context"
	"time"

	"ledgerflow/internal/dto"
	"ledgerflow/internal/models"
	"ledgerflow/internal/repositories"

	"github.com/shopspring/decimal"
)

// DecoderInterface parses and validates an inbound envelope. No side effects.
type DecoderInterface interface {
	Decode(payload []byte) (*dto.TransactionEvent, error)
}

// MaterializerInterface turns a decoded event into persisted transactions and
// returns the ones the rule engine should run on: the single transaction for
// a plain payload, or the generated children for an installment plan.
type MaterializerInterface interface {
	Materialize(ctx context.Context, stores repositories.Stores, event *dto.TransactionEvent) ([]*models.Transaction, error)
}

// ExpanderInterface generates and persists the dated children and schedule
// rows of an installment plan head.
type ExpanderInterface interface {
	Expand(ctx context.Context, stores repositories.Stores, head *models.Transaction, payload *dto.TransactionPayload) ([]*models.Transaction, error)
}

// RuleEngineInterface runs the owner's automation rules over one transaction.
// It returns the applied rule, if any. Evaluation failures are isolated
// inside the engine; only storage failures are returned, because those must
// abort the surrounding message transaction.
type RuleEngineInterface interface {
	ApplyRules(ctx context.Context, stores repositories.Stores, ownerID uint, txn *models.Transaction) (*models.AutomationRule, error)
}

// ConsumerInterface is the delivery controller: it drains the inbound log and
// controls when offsets are acknowledged.
type ConsumerInterface interface {
	Run(ctx context.Context)
	ProcessEvent(ctx context.Context, event *models.InboundEvent) error
}

// EventGeneratorInterface produces realistic inbound envelopes for local
// demos and load tests
type EventGeneratorInterface interface {
	SelectRandomMerchant() (name, category string)
	GenerateAmount(category string) decimal.Decimal
	GenerateEnvelope(ownerID uint) *dto.TransactionEvent
	SeedPartitions(eventLog repositories.EventLogRepositoryInterface, ownerID uint, partitions, count int) error
}

// MetricsRecorderInterface abstracts metric recording so services stay
// testable without a live registry
type MetricsRecorderInterface interface {
	IncrementCounter(name string, labels map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	SetGauge(name string, value float64, labels map[string]string)
}

// PipelineLoggerInterface emits the structured audit trail of message
// processing. Operators rely on it to tell "skipped, safe" outcomes apart
// from "will retry" outcomes.
type PipelineLoggerInterface interface {
	LogMessageReceived(ctx context.Context, partition int, offset int64)
	LogStateChange(ctx context.Context, partition int, offset int64, state string)
	LogMessageAcknowledged(ctx context.Context, partition int, offset int64)
	LogMessageRetained(ctx context.Context, partition int, offset int64, err error)
	LogUnsupportedOperation(ctx context.Context, operation string)
	LogTransactionMaterialized(ctx context.Context, txn *models.Transaction)
	LogPlanExpanded(ctx context.Context, headID uint, children int)
	LogCategorySkipped(ctx context.Context, categoryID, ownerID uint)
	LogRuleApplied(ctx context.Context, rule *models.AutomationRule, transactionID uint)
	LogRuleSkipped(ctx context.Context, ruleID uint, reason string)
	LogRuleEngineFailure(ctx context.Context, ownerID, transactionID uint, cause interface{})
}
