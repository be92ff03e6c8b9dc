package repositories

import (
	"errors"
	"fmt"

	apperrors "ledgerflow/internal/errors"
	"ledgerflow/internal/models"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// Save persists all fields of an existing transaction
func (r *transactionRepository) Save(transaction *models.Transaction) error {
	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.TransactionNotFound, "transaction", id)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByParentID retrieves the children of an installment plan head in
// installment order
func (r *transactionRepository) GetByParentID(parentID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("parent_transaction_id = ?", parentID).
		Order("installment_number ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get child transactions: %w", err)
	}
	return transactions, nil
}

// GetByOwnerID retrieves transactions for an owner with pagination
func (r *transactionRepository) GetByOwnerID(ownerID uint, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.db.Where("owner_id = ?", ownerID).
		Offset(offset).Limit(limit).
		Order("due_date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// DeleteWithChildren deletes a transaction together with its child
// transactions and their installment rows in one transaction. The explicit
// deletes are the application-level cascade rule; the storage engine's own
// cascade is not relied on.
func (r *transactionRepository) DeleteWithChildren(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var children []models.Transaction
		if err := tx.Where("parent_transaction_id = ?", id).Find(&children).Error; err != nil {
			return fmt.Errorf("failed to load child transactions: %w", err)
		}

		childIDs := make([]uint, 0, len(children))
		for _, child := range children {
			childIDs = append(childIDs, child.ID)
		}

		if len(childIDs) > 0 {
			if err := tx.Where("transaction_id IN ?", childIDs).
				Delete(&models.Installment{}).Error; err != nil {
				return fmt.Errorf("failed to delete installments: %w", err)
			}
			if err := tx.Where("id IN ?", childIDs).
				Delete(&models.Transaction{}).Error; err != nil {
				return fmt.Errorf("failed to delete child transactions: %w", err)
			}
		}

		if err := tx.Where("transaction_id = ?", id).
			Delete(&models.Installment{}).Error; err != nil {
			return fmt.Errorf("failed to delete installment: %w", err)
		}

		result := tx.Delete(&models.Transaction{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete transaction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError(apperrors.TransactionNotFound, "transaction", id)
		}
		return nil
	})
}
