package repository

import (
	"strings"

	"docuflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailAccountRepository handles database operations for email accounts
type EmailAccountRepository struct {
	db *gorm.DB
}

// NewEmailAccountRepository creates a new email account repository
func NewEmailAccountRepository(db *gorm.DB) *EmailAccountRepository {
	return &EmailAccountRepository{db: db}
}

// Create creates a new email account
func (r *EmailAccountRepository) Create(account *models.EmailAccount) error {
	return r.db.Create(account).Error
}

// GetByID retrieves an email account by ID
func (r *EmailAccountRepository) GetByID(id uuid.UUID) (*models.EmailAccount, error) {
	var account models.EmailAccount
	err := r.db.First(&account, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByAddress retrieves an email account by address, across organizations.
// Inbound mail carries only the recipient address, so this is the ingest
// entry point for resolving the owning organization.
func (r *EmailAccountRepository) GetByAddress(address string) (*models.EmailAccount, error) {
	var account models.EmailAccount
	err := r.db.First(&account, "LOWER(address) = ?", strings.ToLower(address)).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByOrganization retrieves all email accounts for an organization
func (r *EmailAccountRepository) GetByOrganization(orgID uuid.UUID) ([]models.EmailAccount, error) {
	var accounts []models.EmailAccount
	err := r.db.Where("organization_id = ?", orgID).Order("created_at").Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetConnectedByOrganization retrieves accounts usable for sending mail
func (r *EmailAccountRepository) GetConnectedByOrganization(orgID uuid.UUID) ([]models.EmailAccount, error) {
	var accounts []models.EmailAccount
	err := r.db.
		Where("organization_id = ? AND status = ?", orgID, models.EmailAccountStatusConnected).
		Order("created_at").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Update updates an email account
func (r *EmailAccountRepository) Update(account *models.EmailAccount) error {
	return r.db.Save(account).Error
}

// Delete deletes an email account
func (r *EmailAccountRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.EmailAccount{}, "id = ?", id).Error
}
