package repositories

import (
	"fmt"

	"ledgerflow/internal/models"

	"gorm.io/gorm"
)

// automationRuleRepository implements AutomationRuleRepositoryInterface
type automationRuleRepository struct {
	db *gorm.DB
}

// NewAutomationRuleRepository creates a new automation rule repository
func NewAutomationRuleRepository(db *gorm.DB) AutomationRuleRepositoryInterface {
	return &automationRuleRepository{db: db}
}

// GetActiveByOwner retrieves the owner's active rules ordered by priority
// descending. Rule id ascending breaks priority ties so evaluation order is
// deterministic.
func (r *automationRuleRepository) GetActiveByOwner(ownerID uint) ([]models.AutomationRule, error) {
	var rules []models.AutomationRule
	if err := r.db.Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("priority DESC, id ASC").
		Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to get active rules: %w", err)
	}
	return rules, nil
}

// Save persists a rule's execution bookkeeping
func (r *automationRuleRepository) Save(rule *models.AutomationRule) error {
	if err := r.db.Save(rule).Error; err != nil {
		return fmt.Errorf("failed to save rule: %w", err)
	}
	return nil
}
