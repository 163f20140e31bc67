package repository

import (
	"time"

	"docuflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document
func (r *DocumentRepository) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DocumentFilter narrows GetByOrganization results
type DocumentFilter struct {
	Status      models.DocumentStatus
	EmployeeID  *uuid.UUID
	RequestID   *uuid.UUID
	FileType    string
	SenderEmail string
}

// GetByOrganization retrieves an organization's documents with pagination,
// newest first
func (r *DocumentRepository) GetByOrganization(orgID uuid.UUID, filter DocumentFilter, limit, offset int) ([]models.Document, int64, error) {
	query := r.db.Model(&models.Document{}).Where("organization_id = ?", orgID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.RequestID != nil {
		query = query.Where("request_id = ?", *filter.RequestID)
	}
	if filter.FileType != "" {
		query = query.Where("file_type = ?", filter.FileType)
	}
	if filter.SenderEmail != "" {
		query = query.Where("sender_email = ?", filter.SenderEmail)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docs []models.Document
	err := query.Limit(limit).Offset(offset).Order("received_at DESC").Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// GetByRequest retrieves all documents attached to a request
func (r *DocumentRepository) GetByRequest(requestID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("request_id = ?", requestID).Order("received_at").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// CountByOrganizationSince counts stored documents received at or after since
func (r *DocumentRepository) CountByOrganizationSince(orgID uuid.UUID, since time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.Document{}).
		Where("organization_id = ? AND received_at >= ?", orgID, since).
		Count(&total).Error
	return total, err
}

// Update updates a document
func (r *DocumentRepository) Update(doc *models.Document) error {
	return r.db.Save(doc).Error
}

// Delete deletes a document
func (r *DocumentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Document{}, "id = ?", id).Error
}
