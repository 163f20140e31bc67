package repository

import (
	"docuflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoutingRuleRepository handles database operations for routing rules
type RoutingRuleRepository struct {
	db *gorm.DB
}

// NewRoutingRuleRepository creates a new routing rule repository
func NewRoutingRuleRepository(db *gorm.DB) *RoutingRuleRepository {
	return &RoutingRuleRepository{db: db}
}

// Create creates a new routing rule
func (r *RoutingRuleRepository) Create(rule *models.RoutingRule) error {
	return r.db.Create(rule).Error
}

// GetByID retrieves a routing rule by ID
func (r *RoutingRuleRepository) GetByID(id uuid.UUID) (*models.RoutingRule, error) {
	var rule models.RoutingRule
	err := r.db.First(&rule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetByOrganization retrieves an organization's routing rules in evaluation
// order: highest priority first, oldest first on ties.
func (r *RoutingRuleRepository) GetByOrganization(orgID uuid.UUID) ([]models.RoutingRule, error) {
	var rules []models.RoutingRule
	err := r.db.
		Where("organization_id = ?", orgID).
		Order("priority DESC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// CountActiveByOrganization counts the organization's active routing rules
func (r *RoutingRuleRepository) CountActiveByOrganization(orgID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.RoutingRule{}).
		Where("organization_id = ? AND is_active = ?", orgID, true).
		Count(&total).Error
	return total, err
}

// Update updates a routing rule
func (r *RoutingRuleRepository) Update(rule *models.RoutingRule) error {
	return r.db.Save(rule).Error
}

// UpdatePriorities applies a new priority to each rule in a single
// transaction so a reorder is all-or-nothing.
func (r *RoutingRuleRepository) UpdatePriorities(priorities map[uuid.UUID]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for id, priority := range priorities {
			if err := tx.Model(&models.RoutingRule{}).
				Where("id = ?", id).
				Update("priority", priority).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a routing rule
func (r *RoutingRuleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RoutingRule{}, "id = ?", id).Error
}
