package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ledgerflow/internal/models"
)

// PipelineLogger emits the structured processing trail over slog. Every entry
// carries the correlation id from the processing context so one message's
// path through the pipeline can be followed end to end.
type PipelineLogger struct {
	logger *slog.Logger
}

// NewPipelineLogger creates a new pipeline logger
func NewPipelineLogger(logger *slog.Logger) PipelineLoggerInterface {
	return &PipelineLogger{logger: logger}
}

func (pl *PipelineLogger) LogMessageReceived(ctx context.Context, partition int, offset int64) {
	pl.logger.InfoContext(ctx, "message received",
		slog.String("event_type", "message_received"),
		slog.Int("partition", partition),
		slog.Int64("offset", offset),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogStateChange(ctx context.Context, partition int, offset int64, state string) {
	pl.logger.DebugContext(ctx, "delivery state change",
		slog.String("event_type", "delivery_state_change"),
		slog.Int("partition", partition),
		slog.Int64("offset", offset),
		slog.String("state", state),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogMessageAcknowledged(ctx context.Context, partition int, offset int64) {
	pl.logger.InfoContext(ctx, "message acknowledged",
		slog.String("event_type", "message_acknowledged"),
		slog.Int("partition", partition),
		slog.Int64("offset", offset),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogMessageRetained(ctx context.Context, partition int, offset int64, err error) {
	pl.logger.WarnContext(ctx, "message retained for redelivery",
		slog.String("event_type", "message_retained"),
		slog.Int("partition", partition),
		slog.Int64("offset", offset),
		slog.String("error", err.Error()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogUnsupportedOperation(ctx context.Context, operation string) {
	pl.logger.InfoContext(ctx, "unsupported operation acknowledged as no-op",
		slog.String("event_type", "unsupported_operation"),
		slog.String("operation", operation),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogTransactionMaterialized(ctx context.Context, txn *models.Transaction) {
	pl.logger.InfoContext(ctx, "transaction materialized",
		slog.String("event_type", "transaction_materialized"),
		slog.Uint64("transaction_id", uint64(txn.ID)),
		slog.Uint64("owner_id", uint64(txn.OwnerID)),
		slog.Bool("is_installment", txn.IsInstallment),
		slog.Int("total_installments", txn.TotalInstallments),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogPlanExpanded(ctx context.Context, headID uint, children int) {
	pl.logger.InfoContext(ctx, "installment plan expanded",
		slog.String("event_type", "plan_expanded"),
		slog.Uint64("head_id", uint64(headID)),
		slog.Int("children", children),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogCategorySkipped(ctx context.Context, categoryID, ownerID uint) {
	pl.logger.InfoContext(ctx, "category not resolvable, transaction left uncategorized",
		slog.String("event_type", "category_skipped"),
		slog.Uint64("category_id", uint64(categoryID)),
		slog.Uint64("owner_id", uint64(ownerID)),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogRuleApplied(ctx context.Context, rule *models.AutomationRule, transactionID uint) {
	pl.logger.InfoContext(ctx, "automation rule applied",
		slog.String("event_type", "rule_applied"),
		slog.Uint64("rule_id", uint64(rule.ID)),
		slog.String("action_type", rule.ActionType),
		slog.Int("priority", rule.Priority),
		slog.Uint64("transaction_id", uint64(transactionID)),
		slog.Int64("execution_count", rule.ExecutionCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogRuleSkipped(ctx context.Context, ruleID uint, reason string) {
	pl.logger.InfoContext(ctx, "automation rule action skipped",
		slog.String("event_type", "rule_skipped"),
		slog.Uint64("rule_id", uint64(ruleID)),
		slog.String("reason", reason),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (pl *PipelineLogger) LogRuleEngineFailure(ctx context.Context, ownerID, transactionID uint, cause interface{}) {
	pl.logger.ErrorContext(ctx, "rule evaluation failed, rule skipped",
		slog.String("event_type", "rule_engine_failure"),
		slog.Uint64("owner_id", uint64(ownerID)),
		slog.Uint64("transaction_id", uint64(transactionID)),
		slog.String("cause", fmt.Sprintf("%v", cause)),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}
