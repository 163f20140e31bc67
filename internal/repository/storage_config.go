package repository

import (
	"docuflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StorageConfigRepository handles database operations for storage configs
type StorageConfigRepository struct {
	db *gorm.DB
}

// NewStorageConfigRepository creates a new storage config repository
func NewStorageConfigRepository(db *gorm.DB) *StorageConfigRepository {
	return &StorageConfigRepository{db: db}
}

// Create creates a new storage config
func (r *StorageConfigRepository) Create(sc *models.StorageConfig) error {
	return r.db.Create(sc).Error
}

// GetByID retrieves a storage config by ID
func (r *StorageConfigRepository) GetByID(id uuid.UUID) (*models.StorageConfig, error) {
	var sc models.StorageConfig
	err := r.db.First(&sc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// GetByOrganization retrieves all storage configs for an organization
func (r *StorageConfigRepository) GetByOrganization(orgID uuid.UUID) ([]models.StorageConfig, error) {
	var configs []models.StorageConfig
	err := r.db.Where("organization_id = ?", orgID).Order("created_at").Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}

// GetByName retrieves a storage config by name within an organization
func (r *StorageConfigRepository) GetByName(orgID uuid.UUID, name string) (*models.StorageConfig, error) {
	var sc models.StorageConfig
	err := r.db.First(&sc, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// GetDefault retrieves the organization's default storage config
func (r *StorageConfigRepository) GetDefault(orgID uuid.UUID) (*models.StorageConfig, error) {
	var sc models.StorageConfig
	err := r.db.First(&sc, "organization_id = ? AND is_default = ?", orgID, true).Error
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// SetDefault marks one config as the organization's default and clears the
// flag on every other config in the same transaction.
func (r *StorageConfigRepository) SetDefault(orgID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.StorageConfig{}).
			Where("organization_id = ? AND id <> ?", orgID, id).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.StorageConfig{}).
			Where("organization_id = ? AND id = ?", orgID, id).
			Update("is_default", true).Error
	})
}

// CountByOrganizationAndStatus counts configs in the given status
func (r *StorageConfigRepository) CountByOrganizationAndStatus(orgID uuid.UUID, status models.StorageStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.StorageConfig{}).
		Where("organization_id = ? AND status = ?", orgID, status).
		Count(&total).Error
	return total, err
}

// Update updates a storage config
func (r *StorageConfigRepository) Update(sc *models.StorageConfig) error {
	return r.db.Save(sc).Error
}

// Delete deletes a storage config
func (r *StorageConfigRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.StorageConfig{}, "id = ?", id).Error
}
