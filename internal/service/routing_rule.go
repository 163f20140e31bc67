package service

import (
	"fmt"
	"time"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/repository"
	"docuflow-backend/internal/routing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RoutingRuleService handles business logic for routing rules
type RoutingRuleService struct {
	repo      repository.RoutingRuleRepositoryInterface
	scRepo    repository.StorageConfigRepositoryInterface
	engine    *routing.Engine
	validator *validator.Validate
}

// NewRoutingRuleService creates a new routing rule service
func NewRoutingRuleService(repo repository.RoutingRuleRepositoryInterface, scRepo repository.StorageConfigRepositoryInterface, engine *routing.Engine, validator *validator.Validate) *RoutingRuleService {
	return &RoutingRuleService{
		repo:      repo,
		scRepo:    scRepo,
		engine:    engine,
		validator: validator,
	}
}

// CreateRoutingRuleRequest represents the data needed to create a routing rule
type CreateRoutingRuleRequest struct {
	OrganizationID  uuid.UUID `json:"organization_id" validate:"required"`
	Name            string    `json:"name" validate:"required,max=100"`
	Description     string    `json:"description" validate:"max=500"`
	Priority        int       `json:"priority"`
	IsActive        *bool     `json:"is_active" example:"true" default:"true"` // Optional: defaults to true
	SenderPattern   string    `json:"sender_pattern" validate:"max=500"`
	SubjectPattern  string    `json:"subject_pattern" validate:"max=500"`
	FileTypes       []string  `json:"file_types"`
	StorageConfigID uuid.UUID `json:"storage_config_id" validate:"required"`
	FolderTemplate  string    `json:"folder_template" validate:"required,max=500"`
}

// UpdateRoutingRuleRequest represents the data needed to update a routing rule
type UpdateRoutingRuleRequest struct {
	Name            *string    `json:"name" validate:"omitempty,max=100"`
	Description     *string    `json:"description" validate:"omitempty,max=500"`
	Priority        *int       `json:"priority"`
	IsActive        *bool      `json:"is_active"`
	SenderPattern   *string    `json:"sender_pattern" validate:"omitempty,max=500"`
	SubjectPattern  *string    `json:"subject_pattern" validate:"omitempty,max=500"`
	FileTypes       []string   `json:"file_types"`
	StorageConfigID *uuid.UUID `json:"storage_config_id"`
	FolderTemplate  *string    `json:"folder_template" validate:"omitempty,max=500"`
}

// ReorderRoutingRulesRequest assigns new priorities in one shot. Rules are
// listed highest-priority first.
type ReorderRoutingRulesRequest struct {
	RuleIDs []uuid.UUID `json:"rule_ids" validate:"required,min=1"`
}

// TestRoutingRequest is a dry-run message evaluated against the organization's
// rules without storing anything.
type TestRoutingRequest struct {
	SenderEmail string `json:"sender_email" validate:"required,email"`
	SenderName  string `json:"sender_name"`
	Subject     string `json:"subject"`
	FileName    string `json:"file_name" validate:"required"`
}

// TestRoutingResponse reports which rule would fire and where the file would land
type TestRoutingResponse struct {
	Matched    bool       `json:"matched"`
	RuleID     *uuid.UUID `json:"rule_id,omitempty"`
	RuleName   string     `json:"rule_name,omitempty"`
	FolderPath string     `json:"folder_path,omitempty"`
}

// RoutingRuleResponse represents the response data for a routing rule
type RoutingRuleResponse struct {
	ID              uuid.UUID `json:"id"`
	OrganizationID  uuid.UUID `json:"organization_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Priority        int       `json:"priority"`
	IsActive        bool      `json:"is_active"`
	SenderPattern   string    `json:"sender_pattern"`
	SubjectPattern  string    `json:"subject_pattern"`
	FileTypes       []string  `json:"file_types,omitempty"`
	StorageConfigID uuid.UUID `json:"storage_config_id"`
	FolderTemplate  string    `json:"folder_template"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// Create creates a new routing rule
func (s *RoutingRuleService) Create(req *CreateRoutingRuleRequest) (*RoutingRuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.validatePatterns(req.SenderPattern, req.SubjectPattern); err != nil {
		return nil, err
	}

	// The destination must exist and belong to the same organization
	sc, err := s.scRepo.GetByID(req.StorageConfigID)
	if err != nil || sc.OrganizationID != req.OrganizationID {
		return nil, apperrors.ErrStorageConfigNotFound
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	rule := &models.RoutingRule{
		OrganizationID:  req.OrganizationID,
		Name:            req.Name,
		Description:     req.Description,
		Priority:        req.Priority,
		IsActive:        isActive,
		SenderPattern:   req.SenderPattern,
		SubjectPattern:  req.SubjectPattern,
		FileTypes:       encodeStringSlice(req.FileTypes),
		StorageConfigID: req.StorageConfigID,
		FolderTemplate:  req.FolderTemplate,
	}

	if err := s.repo.Create(rule); err != nil {
		return nil, fmt.Errorf("failed to create routing rule: %w", err)
	}

	return s.convertToResponse(rule), nil
}

// GetByID retrieves a routing rule by ID
func (s *RoutingRuleService) GetByID(id uuid.UUID) (*RoutingRuleResponse, error) {
	rule, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrRoutingRuleNotFound
	}

	return s.convertToResponse(rule), nil
}

// GetByOrganization retrieves all routing rules in evaluation order
func (s *RoutingRuleService) GetByOrganization(orgID uuid.UUID) ([]RoutingRuleResponse, error) {
	rules, err := s.repo.GetByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get routing rules: %w", err)
	}

	responses := make([]RoutingRuleResponse, len(rules))
	for i, rule := range rules {
		responses[i] = *s.convertToResponse(&rule)
	}

	return responses, nil
}

// Update updates an existing routing rule
func (s *RoutingRuleService) Update(id uuid.UUID, req *UpdateRoutingRuleRequest) (*RoutingRuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rule, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrRoutingRuleNotFound
	}

	if req.SenderPattern != nil || req.SubjectPattern != nil {
		sender := rule.SenderPattern
		subject := rule.SubjectPattern
		if req.SenderPattern != nil {
			sender = *req.SenderPattern
		}
		if req.SubjectPattern != nil {
			subject = *req.SubjectPattern
		}
		if err := s.validatePatterns(sender, subject); err != nil {
			return nil, err
		}
	}

	if req.StorageConfigID != nil {
		sc, err := s.scRepo.GetByID(*req.StorageConfigID)
		if err != nil || sc.OrganizationID != rule.OrganizationID {
			return nil, apperrors.ErrStorageConfigNotFound
		}
		rule.StorageConfigID = *req.StorageConfigID
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.Description != nil {
		rule.Description = *req.Description
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if req.SenderPattern != nil {
		rule.SenderPattern = *req.SenderPattern
	}
	if req.SubjectPattern != nil {
		rule.SubjectPattern = *req.SubjectPattern
	}
	if req.FileTypes != nil {
		rule.FileTypes = encodeStringSlice(req.FileTypes)
	}
	if req.FolderTemplate != nil {
		rule.FolderTemplate = *req.FolderTemplate
	}

	if err := s.repo.Update(rule); err != nil {
		return nil, fmt.Errorf("failed to update routing rule: %w", err)
	}

	return s.convertToResponse(rule), nil
}

// Reorder assigns descending priorities following the given order, so the
// first listed rule is evaluated first.
func (s *RoutingRuleService) Reorder(orgID uuid.UUID, req *ReorderRoutingRulesRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	rules, err := s.repo.GetByOrganization(orgID)
	if err != nil {
		return fmt.Errorf("failed to get routing rules: %w", err)
	}

	known := make(map[uuid.UUID]bool, len(rules))
	for _, rule := range rules {
		known[rule.ID] = true
	}

	priorities := make(map[uuid.UUID]int, len(req.RuleIDs))
	for i, id := range req.RuleIDs {
		if !known[id] {
			return apperrors.ErrRoutingRuleNotFound
		}
		priorities[id] = len(req.RuleIDs) - i
	}

	if err := s.repo.UpdatePriorities(priorities); err != nil {
		return fmt.Errorf("failed to reorder routing rules: %w", err)
	}

	return nil
}

// Test dry-runs a message through the organization's rules
func (s *RoutingRuleService) Test(orgID uuid.UUID, req *TestRoutingRequest) (*TestRoutingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rules, err := s.repo.GetByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get routing rules: %w", err)
	}

	msg := routing.Message{
		SenderEmail: req.SenderEmail,
		SenderName:  req.SenderName,
		Subject:     req.Subject,
		FileName:    req.FileName,
	}

	rule, matched := s.engine.Match(rules, msg)
	if !matched {
		return &TestRoutingResponse{Matched: false}, nil
	}

	return &TestRoutingResponse{
		Matched:    true,
		RuleID:     &rule.ID,
		RuleName:   rule.Name,
		FolderPath: routing.RenderFolder(rule.FolderTemplate, msg, time.Now().UTC()),
	}, nil
}

// Delete deletes a routing rule
func (s *RoutingRuleService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrRoutingRuleNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete routing rule: %w", err)
	}

	return nil
}

// validatePatterns rejects rule conditions that will never compile
func (s *RoutingRuleService) validatePatterns(sender, subject string) error {
	if err := routing.ValidatePattern(sender); err != nil {
		return apperrors.NewValidationError("sender_pattern", err.Error())
	}
	if err := routing.ValidatePattern(subject); err != nil {
		return apperrors.NewValidationError("subject_pattern", err.Error())
	}
	return nil
}

// convertToResponse converts a routing rule model to response
func (s *RoutingRuleService) convertToResponse(rule *models.RoutingRule) *RoutingRuleResponse {
	return &RoutingRuleResponse{
		ID:              rule.ID,
		OrganizationID:  rule.OrganizationID,
		Name:            rule.Name,
		Description:     rule.Description,
		Priority:        rule.Priority,
		IsActive:        rule.IsActive,
		SenderPattern:   rule.SenderPattern,
		SubjectPattern:  rule.SubjectPattern,
		FileTypes:       rule.DecodeFileTypes(),
		StorageConfigID: rule.StorageConfigID,
		FolderTemplate:  rule.FolderTemplate,
		CreatedAt:       rule.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       rule.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
