package services

import (
	"context"
	"time"

	apperrors "ledgerflow/internal/errors"
	"ledgerflow/internal/models"
	"ledgerflow/internal/repositories"
)

// RuleEngine runs an owner's active automation rules over one transaction.
// Rules are evaluated in priority order and only the first match is applied.
// Evaluation failures are isolated: a broken rule is logged and skipped, and
// can never abort the message's persistence transaction. Storage failures
// while applying an action are the one exception - they propagate so the
// whole message rolls back and is redelivered.
type RuleEngine struct {
	logger   PipelineLoggerInterface
	metrics  MetricsRecorderInterface
	now      func() time.Time
	evaluate func(rule *models.AutomationRule, txn *models.Transaction) bool
}

// NewRuleEngine creates a new automation rule engine
func NewRuleEngine(logger PipelineLoggerInterface, metrics MetricsRecorderInterface) RuleEngineInterface {
	return &RuleEngine{
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
		evaluate: func(rule *models.AutomationRule, txn *models.Transaction) bool {
			return rule.Matches(txn)
		},
	}
}

// ApplyRules fetches the owner's active rules ordered by descending priority
// (rule id ascending as tie-break), applies the action of the first rule
// whose condition matches, records the rule's execution bookkeeping and
// stops. No match leaves the transaction unmodified.
func (e *RuleEngine) ApplyRules(ctx context.Context, stores repositories.Stores, ownerID uint, txn *models.Transaction) (*models.AutomationRule, error) {
	rules, err := stores.Rules.GetActiveByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	for i := range rules {
		rule := &rules[i]

		if !e.matches(ctx, rule, txn) {
			continue
		}

		applied, err := e.execute(ctx, stores, rule, txn)
		if err != nil {
			return nil, err
		}
		if applied {
			e.metrics.IncrementCounter("pipeline.rules.applied", map[string]string{
				"action": rule.ActionType,
			})
			e.logger.LogRuleApplied(ctx, rule, txn.ID)
		}

		// First match wins: later matching rules are never applied in the
		// same invocation, even when this action was skipped.
		return rule, nil
	}

	return nil, nil
}

// matches evaluates one rule's condition, swallowing panics so a broken rule
// cannot take the pipeline down
func (e *RuleEngine) matches(ctx context.Context, rule *models.AutomationRule, txn *models.Transaction) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.LogRuleEngineFailure(ctx, rule.OwnerID, txn.ID, r)
			e.metrics.IncrementCounter("pipeline.rules.evaluation_failed", nil)
			matched = false
		}
	}()

	return e.evaluate(rule, txn)
}

// execute applies the matched rule's action and records its bookkeeping.
// Soft failures (no-op action, unresolvable category) are logged and
// skipped; the returned bool reports whether the transaction was modified.
func (e *RuleEngine) execute(ctx context.Context, stores repositories.Stores, rule *models.AutomationRule, txn *models.Transaction) (bool, error) {
	effect := rule.Effect()
	applied := false

	switch {
	case effect.CategoryID != nil:
		category, err := stores.Categories.GetByIDForOwner(*effect.CategoryID, txn.OwnerID)
		if err != nil {
			if !apperrors.IsNotFound(err) {
				return false, err
			}
			e.logger.LogRuleSkipped(ctx, rule.ID, "category not resolvable for owner")
			e.metrics.IncrementCounter("pipeline.rules.action_skipped", map[string]string{
				"reason": "category_unresolvable",
			})
		} else {
			txn.AssignCategory(category.ID)
			if err := stores.Transactions.Save(txn); err != nil {
				return false, err
			}
			applied = true
		}

	case effect.MarkPaid:
		txn.MarkPaid()
		if err := stores.Transactions.Save(txn); err != nil {
			return false, err
		}
		applied = true

	default:
		e.logger.LogRuleSkipped(ctx, rule.ID, "action plans no effect")
		e.metrics.IncrementCounter("pipeline.rules.action_skipped", map[string]string{
			"reason": "noop_action",
		})
	}

	rule.RecordExecution(e.now())
	if err := stores.Rules.Save(rule); err != nil {
		return false, err
	}

	return applied, nil
}
