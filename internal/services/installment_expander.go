package services

import (
	"context"
	"fmt"
	"time"

	"ledgerflow/internal/dto"
	"ledgerflow/internal/models"
	"ledgerflow/internal/repositories"
)

// InstallmentExpander deterministically generates the dated children of an
// installment plan head plus their schedule rows, and persists both as
// batches. The head must already be committed so the parent references are
// valid.
type InstallmentExpander struct {
	logger  PipelineLoggerInterface
	metrics MetricsRecorderInterface
}

// NewInstallmentExpander creates a new plan expander
func NewInstallmentExpander(logger PipelineLoggerInterface, metrics MetricsRecorderInterface) ExpanderInterface {
	return &InstallmentExpander{
		logger:  logger,
		metrics: metrics,
	}
}

// Expand generates child i (1..N) dated the plan's start date advanced by
// i-1 calendar months, month-end clamped. Every child copies the head's
// description, direction, category and owner; the amount is the payload's
// per-installment amount, applied identically to every child. One Installment
// row mirrors each child.
func (s *InstallmentExpander) Expand(ctx context.Context, stores repositories.Stores, head *models.Transaction, payload *dto.TransactionPayload) ([]*models.Transaction, error) {
	total := payload.InstallmentCount()
	start := head.DueDate

	children := make([]models.Transaction, 0, total)
	for i := 1; i <= total; i++ {
		due := addMonthsClamped(start, i-1)
		parentID := head.ID
		children = append(children, models.Transaction{
			Description:         head.Description,
			Amount:              payload.Amount,
			Type:                head.Type,
			TransactionDate:     due,
			DueDate:             due,
			IsPaid:              false,
			CategoryID:          head.CategoryID,
			OwnerID:             head.OwnerID,
			IsInstallment:       false,
			ParentTransactionID: &parentID,
			InstallmentNumber:   i,
			TotalInstallments:   total,
		})
	}

	if err := stores.Transactions.CreateBatch(children); err != nil {
		return nil, fmt.Errorf("failed to persist plan children: %w", err)
	}

	installments := make([]models.Installment, 0, total)
	for i := range children {
		installments = append(installments, models.Installment{
			TransactionID: children[i].ID,
			Number:        children[i].InstallmentNumber,
			Total:         total,
			Amount:        children[i].Amount,
			DueDate:       children[i].DueDate,
			IsPaid:        false,
		})
	}

	if err := stores.Installments.CreateBatch(installments); err != nil {
		return nil, fmt.Errorf("failed to persist installment schedule: %w", err)
	}

	s.logger.LogPlanExpanded(ctx, head.ID, len(children))
	s.metrics.IncrementCounter("pipeline.plans.expanded", nil)
	for range children {
		s.metrics.IncrementCounter("pipeline.installments.created", nil)
	}

	result := make([]*models.Transaction, 0, total)
	for i := range children {
		result = append(result, &children[i])
	}
	return result, nil
}

// addMonthsClamped advances a date by whole calendar months, clamping to the
// last day of the target month. time.Time.AddDate normalizes overflow
// (Jan 31 + 1 month = Mar 2/3) instead, which is not the calendar arithmetic
// installment schedules use.
func addMonthsClamped(t time.Time, months int) time.Time {
	if months == 0 {
		return t
	}

	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := t.Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
