package repositories

import (
	"errors"
	"fmt"

	apperrors "ledgerflow/internal/errors"
	"ledgerflow/internal/models"

	"gorm.io/gorm"
)

// ownerRepository implements OwnerRepositoryInterface
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *gorm.DB) OwnerRepositoryInterface {
	return &ownerRepository{db: db}
}

// GetByID retrieves an owner by ID
func (r *ownerRepository) GetByID(id uint) (*models.Owner, error) {
	var owner models.Owner
	if err := r.db.First(&owner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.OwnerNotFound, "owner", id)
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	return &owner, nil
}
