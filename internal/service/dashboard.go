package service

import (
	"fmt"
	"time"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/repository"

	"github.com/google/uuid"
)

// DashboardService aggregates per-organization counters for the overview page
type DashboardService struct {
	orgRepo  repository.OrganizationRepositoryInterface
	empRepo  repository.EmployeeRepositoryInterface
	reqRepo  repository.DocumentRequestRepositoryInterface
	docRepo  repository.DocumentRepositoryInterface
	ruleRepo repository.RoutingRuleRepositoryInterface
	scRepo   repository.StorageConfigRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orgRepo repository.OrganizationRepositoryInterface,
	empRepo repository.EmployeeRepositoryInterface,
	reqRepo repository.DocumentRequestRepositoryInterface,
	docRepo repository.DocumentRepositoryInterface,
	ruleRepo repository.RoutingRuleRepositoryInterface,
	scRepo repository.StorageConfigRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		orgRepo:  orgRepo,
		empRepo:  empRepo,
		reqRepo:  reqRepo,
		docRepo:  docRepo,
		ruleRepo: ruleRepo,
		scRepo:   scRepo,
	}
}

// DashboardStatsResponse represents the organization overview counters
type DashboardStatsResponse struct {
	OrganizationID      uuid.UUID `json:"organization_id"`
	Employees           int64     `json:"employees"`
	OpenRequests        int64     `json:"open_requests"`
	DocumentsLast30Days int64     `json:"documents_last_30_days"`
	ActiveRoutingRules  int64     `json:"active_routing_rules"`
	StorageErrors       int64     `json:"storage_errors"`
}

// GetStats assembles the overview counters for an organization
func (s *DashboardService) GetStats(orgID uuid.UUID) (*DashboardStatsResponse, error) {
	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}

	employees, err := s.empRepo.CountByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	openRequests, err := s.reqRepo.CountOpenByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count open requests: %w", err)
	}

	since := time.Now().AddDate(0, 0, -30)
	documents, err := s.docRepo.CountByOrganizationSince(orgID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	rules, err := s.ruleRepo.CountActiveByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count routing rules: %w", err)
	}

	storageErrors, err := s.scRepo.CountByOrganizationAndStatus(orgID, models.StorageStatusError)
	if err != nil {
		return nil, fmt.Errorf("failed to count storage configs: %w", err)
	}

	return &DashboardStatsResponse{
		OrganizationID:      orgID,
		Employees:           employees,
		OpenRequests:        openRequests,
		DocumentsLast30Days: documents,
		ActiveRoutingRules:  rules,
		StorageErrors:       storageErrors,
	}, nil
}
