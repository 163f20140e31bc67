package repository

import (
	"strings"

	"docuflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// CreateBatch inserts a batch of employees in one transaction
func (r *EmployeeRepository) CreateBatch(employees []models.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	return r.db.Create(&employees).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmail retrieves an employee by email within an organization
func (r *EmployeeRepository) GetByEmail(orgID uuid.UUID, email string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "organization_id = ? AND LOWER(email) = ?", orgID, strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// EmployeeFilter narrows GetByOrganization results
type EmployeeFilter struct {
	Search     string // matches name or email, case-insensitive substring
	Department string
	ActiveOnly bool
}

// GetByOrganization retrieves an organization's employees with pagination
func (r *EmployeeRepository) GetByOrganization(orgID uuid.UUID, filter EmployeeFilter, limit, offset int) ([]models.Employee, int64, error) {
	query := r.db.Model(&models.Employee{}).Where("organization_id = ?", orgID)
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []models.Employee
	err := query.Limit(limit).Offset(offset).Order("full_name").Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// GetEmailSet returns the lowercased emails of all non-deleted employees in
// the organization, for import duplicate checks.
func (r *EmployeeRepository) GetEmailSet(orgID uuid.UUID) (map[string]bool, error) {
	var emails []string
	err := r.db.Model(&models.Employee{}).
		Where("organization_id = ?", orgID).
		Pluck("LOWER(email)", &emails).Error
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(emails))
	for _, e := range emails {
		set[e] = true
	}
	return set, nil
}

// CountByOrganization returns the number of employees in the organization
func (r *EmployeeRepository) CountByOrganization(orgID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Employee{}).Where("organization_id = ?", orgID).Count(&total).Error
	return total, err
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete soft-deletes an employee
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}
