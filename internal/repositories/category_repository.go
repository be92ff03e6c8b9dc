package repositories

import (
	"errors"
	"fmt"

	apperrors "ledgerflow/internal/errors"
	"ledgerflow/internal/models"

	"gorm.io/gorm"
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.CategoryNotFound, "category", id)
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetByIDForOwner retrieves a category by ID scoped to its owning account.
// A category owned by a different account is reported as not found.
func (r *categoryRepository) GetByIDForOwner(id, ownerID uint) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.CategoryNotFound, "category", id)
		}
		return nil, fmt.Errorf("failed to get category for owner: %w", err)
	}
	return &category, nil
}
