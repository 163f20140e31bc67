package service

import (
	"fmt"
	"strings"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateEmployeeRequest represents the data needed to create an employee
type CreateEmployeeRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	FullName       string    `json:"full_name" validate:"required,max=200"`
	FirstName      string    `json:"first_name" validate:"max=100"`
	LastName       string    `json:"last_name" validate:"max=100"`
	Email          string    `json:"email" validate:"required,email,max=255"`
	Department     string    `json:"department" validate:"max=100"`
	Role           *string   `json:"role" example:"employee" default:"employee"` // Optional: defaults to "employee". Valid values: employee, manager, contractor, external
	PhoneNumber    string    `json:"phone_number" validate:"max=30"`
	Skills         []string  `json:"skills"`
	IsActive       *bool     `json:"is_active" example:"true" default:"true"` // Optional: defaults to true
}

// UpdateEmployeeRequest represents the data needed to update an employee
type UpdateEmployeeRequest struct {
	FullName    *string  `json:"full_name" validate:"omitempty,max=200"`
	FirstName   *string  `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string  `json:"last_name" validate:"omitempty,max=100"`
	Email       *string  `json:"email" validate:"omitempty,email,max=255"`
	Department  *string  `json:"department" validate:"omitempty,max=100"`
	Role        *string  `json:"role"`
	PhoneNumber *string  `json:"phone_number" validate:"omitempty,max=30"`
	Skills      []string `json:"skills"`
	IsActive    *bool    `json:"is_active"`
}

// EmployeeResponse represents the response data for an employee
type EmployeeResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	FullName       string    `json:"full_name"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Department     string    `json:"department"`
	Role           string    `json:"role"`
	PhoneNumber    string    `json:"phone_number"`
	Skills         []string  `json:"skills,omitempty"`
	IsActive       bool      `json:"is_active"`
	Source         string    `json:"source"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// ListEmployeesOptions narrows the employee listing
type ListEmployeesOptions struct {
	Search     string
	Department string
	ActiveOnly bool
}

// Create creates a new employee
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if email already exists within the organization
	if _, err := s.repo.GetByEmail(req.OrganizationID, req.Email); err == nil {
		return nil, apperrors.ErrEmployeeExists
	}

	role := models.EmployeeRoleEmployee
	if req.Role != nil {
		role = models.EmployeeRole(*req.Role)
		if !models.ValidEmployeeRole(role) {
			return nil, apperrors.NewValidationError("role", "unknown role: "+*req.Role)
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	employee := &models.Employee{
		OrganizationID: req.OrganizationID,
		FullName:       req.FullName,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Department:     req.Department,
		Role:           role,
		PhoneNumber:    req.PhoneNumber,
		Skills:         encodeStringSlice(req.Skills),
		IsActive:       isActive,
		Source:         models.EmployeeSourceManual,
	}

	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.convertToResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrEmployeeNotFound
	}

	return s.convertToResponse(employee), nil
}

// GetByOrganization retrieves employees for an organization
func (s *EmployeeService) GetByOrganization(organizationID uuid.UUID, opts ListEmployeesOptions, limit, offset int) ([]EmployeeResponse, int64, error) {
	filter := repository.EmployeeFilter{
		Search:     opts.Search,
		Department: opts.Department,
		ActiveOnly: opts.ActiveOnly,
	}
	employees, total, err := s.repo.GetByOrganization(organizationID, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get employees: %w", err)
	}

	responses := make([]EmployeeResponse, len(employees))
	for i, employee := range employees {
		responses[i] = *s.convertToResponse(&employee)
	}

	return responses, total, nil
}

// Update updates an existing employee
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrEmployeeNotFound
	}

	// Check email uniqueness if email is being updated
	if req.Email != nil && !strings.EqualFold(*req.Email, employee.Email) {
		existing, err := s.repo.GetByEmail(employee.OrganizationID, *req.Email)
		if err == nil && existing.ID != id {
			return nil, apperrors.ErrEmployeeExists
		}
	}

	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Role != nil {
		role := models.EmployeeRole(*req.Role)
		if !models.ValidEmployeeRole(role) {
			return nil, apperrors.NewValidationError("role", "unknown role: "+*req.Role)
		}
		employee.Role = role
	}
	if req.PhoneNumber != nil {
		employee.PhoneNumber = *req.PhoneNumber
	}
	if req.Skills != nil {
		employee.Skills = encodeStringSlice(req.Skills)
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.convertToResponse(employee), nil
}

// Delete soft-deletes an employee
func (s *EmployeeService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrEmployeeNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

// convertToResponse converts an employee model to response
func (s *EmployeeService) convertToResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:             employee.ID,
		OrganizationID: employee.OrganizationID,
		FullName:       employee.FullName,
		FirstName:      employee.FirstName,
		LastName:       employee.LastName,
		Email:          employee.Email,
		Department:     employee.Department,
		Role:           string(employee.Role),
		PhoneNumber:    employee.PhoneNumber,
		Skills:         decodeStringSlice(employee.Skills),
		IsActive:       employee.IsActive,
		Source:         string(employee.Source),
		CreatedAt:      employee.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      employee.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
