package repositories

import (
	"errors"
	"fmt"

	apperrors "ledgerflow/internal/errors"
	"ledgerflow/internal/models"

	"gorm.io/gorm"
)

// installmentRepository implements InstallmentRepositoryInterface
type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new installment repository
func NewInstallmentRepository(db *gorm.DB) InstallmentRepositoryInterface {
	return &installmentRepository{db: db}
}

// CreateBatch creates the schedule rows of one plan in a single database transaction
func (r *installmentRepository) CreateBatch(installments []models.Installment) error {
	if len(installments) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&installments).Error; err != nil {
			return fmt.Errorf("failed to create batch installments: %w", err)
		}
		return nil
	})
}

// GetByTransactionID retrieves the schedule row mirroring one child transaction
func (r *installmentRepository) GetByTransactionID(transactionID uint) (*models.Installment, error) {
	var installment models.Installment
	err := r.db.Where("transaction_id = ?", transactionID).First(&installment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.TransactionNotFound, "installment for transaction", transactionID)
		}
		return nil, fmt.Errorf("failed to get installment: %w", err)
	}
	return &installment, nil
}

// GetByTransactionIDs retrieves schedule rows for a set of child transactions
// in installment order
func (r *installmentRepository) GetByTransactionIDs(transactionIDs []uint) ([]models.Installment, error) {
	if len(transactionIDs) == 0 {
		return nil, nil
	}

	var installments []models.Installment
	if err := r.db.Where("transaction_id IN ?", transactionIDs).
		Order("number ASC").
		Find(&installments).Error; err != nil {
		return nil, fmt.Errorf("failed to get installments: %w", err)
	}
	return installments, nil
}
