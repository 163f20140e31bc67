package service

import (
	"encoding/json"
	"fmt"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the data needed to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" validate:"required,max=200"`
	Domain      string `json:"domain" validate:"required,max=100"`
	Description string `json:"description"`
}

// UpdateOrganizationRequest represents the data needed to update an organization
type UpdateOrganizationRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,max=200"`
	Description string `json:"description"`
}

// UpdateOrganizationSettingsRequest updates the tenant-level ingest settings
type UpdateOrganizationSettingsRequest struct {
	AllowedFileTypes  []string `json:"allowed_file_types" validate:"omitempty,dive,min=1,max=10"`
	MaxAttachmentMB   int      `json:"max_attachment_mb" validate:"omitempty,min=1,max=500"`
	ReminderAfterDays int      `json:"reminder_after_days" validate:"omitempty,min=1,max=90"`
}

// OrganizationResponse represents the response data for an organization
type OrganizationResponse struct {
	ID          uuid.UUID                   `json:"id"`
	Name        string                      `json:"name"`
	DisplayName string                      `json:"display_name"`
	Domain      string                      `json:"domain"`
	Description string                      `json:"description"`
	Settings    models.OrganizationSettings `json:"settings"`
	CreatedAt   string                      `json:"created_at"`
	UpdatedAt   string                      `json:"updated_at"`
}

// Create creates a new organization
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check name and domain uniqueness
	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrOrganizationExists
	}
	if _, err := s.repo.GetByDomain(req.Domain); err == nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Domain:      req.Domain,
		Description: req.Description,
	}

	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.convertToResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}

	return s.convertToResponse(org), nil
}

// GetByName retrieves an organization by name
func (s *OrganizationService) GetByName(name string) (*OrganizationResponse, error) {
	org, err := s.repo.GetByName(name)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}

	return s.convertToResponse(org), nil
}

// GetAll retrieves all organizations with pagination
func (s *OrganizationService) GetAll(limit, offset int) ([]OrganizationResponse, int64, error) {
	orgs, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.convertToResponse(&org)
	}

	return responses, total, nil
}

// Update updates an existing organization
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}

	if req.DisplayName != "" {
		org.DisplayName = req.DisplayName
	}
	if req.Description != "" {
		org.Description = req.Description
	}

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.convertToResponse(org), nil
}

// UpdateSettings merges the request into the organization's stored settings
func (s *OrganizationService) UpdateSettings(id uuid.UUID, req *UpdateOrganizationSettingsRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}

	settings := org.DecodeSettings()
	if len(req.AllowedFileTypes) > 0 {
		settings.AllowedFileTypes = req.AllowedFileTypes
	}
	if req.MaxAttachmentMB > 0 {
		settings.MaxAttachmentMB = req.MaxAttachmentMB
	}
	if req.ReminderAfterDays > 0 {
		settings.ReminderAfterDays = req.ReminderAfterDays
	}

	encoded, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	org.Settings = encoded

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.convertToResponse(org), nil
}

// Delete deletes an organization
func (s *OrganizationService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrOrganizationNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	return nil
}

// convertToResponse converts an organization model to response
func (s *OrganizationService) convertToResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		DisplayName: org.DisplayName,
		Domain:      org.Domain,
		Description: org.Description,
		Settings:    org.DecodeSettings(),
		CreatedAt:   org.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   org.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
