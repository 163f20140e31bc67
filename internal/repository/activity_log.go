package repository

import (
	"docuflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogRepository handles database operations for activity log entries
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Create creates a new activity log entry
func (r *ActivityLogRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// ActivityFilter narrows GetByOrganization results
type ActivityFilter struct {
	Action     models.ActivityAction
	EntityType string
	ActorEmail string
}

// GetByOrganization retrieves an organization's activity entries with
// pagination, newest first
func (r *ActivityLogRepository) GetByOrganization(orgID uuid.UUID, filter ActivityFilter, limit, offset int) ([]models.ActivityLog, int64, error) {
	query := r.db.Model(&models.ActivityLog{}).Where("organization_id = ?", orgID)
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.ActorEmail != "" {
		query = query.Where("actor_email = ?", filter.ActorEmail)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.ActivityLog
	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
