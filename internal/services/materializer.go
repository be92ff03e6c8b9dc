package services

import (
	"context"
	"fmt"

	"ledgerflow/internal/dto"
	apperrors "ledgerflow/internal/errors"
	"ledgerflow/internal/models"
	"ledgerflow/internal/repositories"

	"github.com/shopspring/decimal"
)

// Materializer constructs the transaction aggregate from a decoded payload.
// A plain payload becomes one persisted transaction; a payload with more than
// one installment becomes a zero-amount plan head that is handed to the
// expander.
type Materializer struct {
	expander ExpanderInterface
	logger   PipelineLoggerInterface
	metrics  MetricsRecorderInterface
}

// NewMaterializer creates a new transaction materializer
func NewMaterializer(
	expander ExpanderInterface,
	logger PipelineLoggerInterface,
	metrics MetricsRecorderInterface,
) MaterializerInterface {
	return &Materializer{
		expander: expander,
		logger:   logger,
		metrics:  metrics,
	}
}

// Materialize resolves the owner and optional category, persists the
// transaction (or plan head plus children) and returns the transactions the
// rule engine should run on. A missing owner aborts processing; a missing or
// cross-owner category does not - the transaction is created uncategorized.
func (s *Materializer) Materialize(ctx context.Context, stores repositories.Stores, event *dto.TransactionEvent) ([]*models.Transaction, error) {
	owner, err := stores.Owners.GetByID(event.OwnerID)
	if err != nil {
		return nil, err
	}

	payload := &event.Transaction
	categoryID, err := s.resolveCategory(ctx, stores, payload, owner.ID)
	if err != nil {
		return nil, err
	}

	if !payload.RequiresExpansion() {
		txn := s.buildSingle(payload, owner.ID, categoryID)
		if err := stores.Transactions.Create(txn); err != nil {
			return nil, err
		}

		s.logger.LogTransactionMaterialized(ctx, txn)
		s.metrics.IncrementCounter("pipeline.transactions.materialized", map[string]string{
			"kind": "single",
		})

		return []*models.Transaction{txn}, nil
	}

	head := s.buildPlanHead(payload, owner.ID, categoryID)
	if err := stores.Transactions.Create(head); err != nil {
		return nil, err
	}

	s.logger.LogTransactionMaterialized(ctx, head)
	s.metrics.IncrementCounter("pipeline.transactions.materialized", map[string]string{
		"kind": "plan_head",
	})

	children, err := s.expander.Expand(ctx, stores, head, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to expand installment plan: %w", err)
	}

	return children, nil
}

// resolveCategory looks the referenced category up scoped to the owner.
// Absence is not an error: the transaction is simply created uncategorized.
// A genuine storage failure still propagates so the message is retried.
func (s *Materializer) resolveCategory(ctx context.Context, stores repositories.Stores, payload *dto.TransactionPayload, ownerID uint) (*uint, error) {
	id := payload.CategoryID()
	if id == 0 {
		return nil, nil
	}

	category, err := stores.Categories.GetByIDForOwner(id, ownerID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.logger.LogCategorySkipped(ctx, id, ownerID)
			return nil, nil
		}
		return nil, err
	}

	return &category.ID, nil
}

func (s *Materializer) buildSingle(payload *dto.TransactionPayload, ownerID uint, categoryID *uint) *models.Transaction {
	txn := &models.Transaction{
		Description:       payload.Description,
		Amount:            payload.Amount,
		Type:              payload.Type,
		TransactionDate:   payload.EffectiveTransactionDate(),
		DueDate:           payload.DueDate.Time,
		CategoryID:        categoryID,
		OwnerID:           ownerID,
		IsInstallment:     false,
		InstallmentNumber: 0,
		TotalInstallments: 1,
	}
	if payload.EffectivePaid() {
		txn.MarkPaid()
	}
	return txn
}

func (s *Materializer) buildPlanHead(payload *dto.TransactionPayload, ownerID uint, categoryID *uint) *models.Transaction {
	return &models.Transaction{
		Description:       payload.Description,
		Amount:            decimal.Zero,
		Type:              payload.Type,
		TransactionDate:   payload.EffectiveTransactionDate(),
		DueDate:           payload.DueDate.Time,
		IsPaid:            false,
		CategoryID:        categoryID,
		OwnerID:           ownerID,
		IsInstallment:     true,
		InstallmentNumber: 0,
		TotalInstallments: payload.InstallmentCount(),
	}
}
