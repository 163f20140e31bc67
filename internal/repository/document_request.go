package repository

import (
	"time"

	"docuflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRequestRepository handles database operations for document requests
type DocumentRequestRepository struct {
	db *gorm.DB
}

// NewDocumentRequestRepository creates a new document request repository
func NewDocumentRequestRepository(db *gorm.DB) *DocumentRequestRepository {
	return &DocumentRequestRepository{db: db}
}

// Create creates a new document request
func (r *DocumentRequestRepository) Create(req *models.DocumentRequest) error {
	return r.db.Create(req).Error
}

// GetByID retrieves a document request by ID
func (r *DocumentRequestRepository) GetByID(id uuid.UUID) (*models.DocumentRequest, error) {
	var req models.DocumentRequest
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByIDWithEmployee retrieves a document request with its employee preloaded
func (r *DocumentRequestRepository) GetByIDWithEmployee(id uuid.UUID) (*models.DocumentRequest, error) {
	var req models.DocumentRequest
	err := r.db.Preload("Employee").First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// RequestFilter narrows GetByOrganization results
type RequestFilter struct {
	Status     models.RequestStatus
	EmployeeID *uuid.UUID
	// Overdue restricts to open requests whose due date has passed
	Overdue bool
}

// GetByOrganization retrieves an organization's document requests with
// pagination, newest first
func (r *DocumentRequestRepository) GetByOrganization(orgID uuid.UUID, filter RequestFilter, limit, offset int) ([]models.DocumentRequest, int64, error) {
	query := r.db.Model(&models.DocumentRequest{}).Where("organization_id = ?", orgID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Overdue {
		query = query.
			Where("status IN ?", []models.RequestStatus{
				models.RequestStatusPending,
				models.RequestStatusSent,
				models.RequestStatusPartiallyReceived,
				models.RequestStatusOverdue,
			}).
			Where("due_date IS NOT NULL AND due_date < ?", time.Now())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.DocumentRequest
	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// GetOpenByEmployee retrieves an employee's requests that can still receive
// documents, oldest first so the earliest ask is satisfied first.
func (r *DocumentRequestRepository) GetOpenByEmployee(employeeID uuid.UUID) ([]models.DocumentRequest, error) {
	var requests []models.DocumentRequest
	err := r.db.
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []models.RequestStatus{
			models.RequestStatusPending,
			models.RequestStatusSent,
			models.RequestStatusPartiallyReceived,
			models.RequestStatusOverdue,
		}).
		Order("created_at").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// CountOpenByOrganization counts requests still awaiting documents
func (r *DocumentRequestRepository) CountOpenByOrganization(orgID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.DocumentRequest{}).
		Where("organization_id = ?", orgID).
		Where("status IN ?", []models.RequestStatus{
			models.RequestStatusPending,
			models.RequestStatusSent,
			models.RequestStatusPartiallyReceived,
			models.RequestStatusOverdue,
		}).
		Count(&total).Error
	return total, err
}

// Update updates a document request
func (r *DocumentRequestRepository) Update(req *models.DocumentRequest) error {
	return r.db.Save(req).Error
}

// Delete deletes a document request
func (r *DocumentRequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DocumentRequest{}, "id = ?", id).Error
}
