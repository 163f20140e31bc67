package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/repository"
	"docuflow-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// StorageFactoryInterface builds a storage provider client for a config.
// Satisfied by storage.Factory; faked in tests.
type StorageFactoryInterface interface {
	ForConfig(sc *models.StorageConfig, onTokenRefresh func(models.StorageCredentials)) (storage.Provider, error)
}

// StorageConfigService handles business logic for storage configs
type StorageConfigService struct {
	repo      repository.StorageConfigRepositoryInterface
	factory   StorageFactoryInterface
	activity  *ActivityService
	validator *validator.Validate
	log       *logger.Logger
}

// NewStorageConfigService creates a new storage config service
func NewStorageConfigService(repo repository.StorageConfigRepositoryInterface, factory StorageFactoryInterface, activity *ActivityService, validator *validator.Validate, log *logger.Logger) *StorageConfigService {
	return &StorageConfigService{
		repo:      repo,
		factory:   factory,
		activity:  activity,
		validator: validator,
		log:       log,
	}
}

// CreateStorageConfigRequest represents the data needed to create a storage config
type CreateStorageConfigRequest struct {
	OrganizationID uuid.UUID                 `json:"organization_id" validate:"required"`
	Name           string                    `json:"name" validate:"required,max=100"`
	Provider       string                    `json:"provider" validate:"required"`
	RootPath       string                    `json:"root_path" validate:"max=500"`
	Credentials    models.StorageCredentials `json:"credentials"`
	IsDefault      bool                      `json:"is_default"`
}

// UpdateStorageConfigRequest represents the data needed to update a storage config
type UpdateStorageConfigRequest struct {
	Name        *string                    `json:"name" validate:"omitempty,max=100"`
	RootPath    *string                    `json:"root_path" validate:"omitempty,max=500"`
	Credentials *models.StorageCredentials `json:"credentials"`
}

// StorageConfigResponse represents the response data for a storage config.
// Credentials are never included.
type StorageConfigResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Name           string     `json:"name"`
	Provider       string     `json:"provider"`
	RootPath       string     `json:"root_path"`
	IsDefault      bool       `json:"is_default"`
	Status         string     `json:"status"`
	LastVerifiedAt *time.Time `json:"last_verified_at,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// Create creates a new storage config
func (s *StorageConfigService) Create(req *CreateStorageConfigRequest) (*StorageConfigResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	provider := models.StorageProvider(req.Provider)
	if !models.ValidStorageProvider(provider) {
		return nil, apperrors.ErrUnsupportedProvider
	}

	// Check name uniqueness within the organization
	if _, err := s.repo.GetByName(req.OrganizationID, req.Name); err == nil {
		return nil, apperrors.ErrStorageConfigExists
	}

	credentials, err := json.Marshal(req.Credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credentials: %w", err)
	}

	sc := &models.StorageConfig{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Provider:       provider,
		RootPath:       req.RootPath,
		Credentials:    credentials,
		Status:         models.StorageStatusDisconnected,
	}

	if err := s.repo.Create(sc); err != nil {
		return nil, fmt.Errorf("failed to create storage config: %w", err)
	}

	// First config for the org, or explicit request, becomes the default
	if req.IsDefault {
		if err := s.repo.SetDefault(req.OrganizationID, sc.ID); err != nil {
			return nil, fmt.Errorf("failed to set default storage config: %w", err)
		}
		sc.IsDefault = true
	} else if _, err := s.repo.GetDefault(req.OrganizationID); err != nil {
		if err := s.repo.SetDefault(req.OrganizationID, sc.ID); err != nil {
			return nil, fmt.Errorf("failed to set default storage config: %w", err)
		}
		sc.IsDefault = true
	}

	return s.convertToResponse(sc), nil
}

// GetByID retrieves a storage config by ID
func (s *StorageConfigService) GetByID(id uuid.UUID) (*StorageConfigResponse, error) {
	sc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrStorageConfigNotFound
	}

	return s.convertToResponse(sc), nil
}

// GetByOrganization retrieves all storage configs for an organization
func (s *StorageConfigService) GetByOrganization(orgID uuid.UUID) ([]StorageConfigResponse, error) {
	configs, err := s.repo.GetByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage configs: %w", err)
	}

	responses := make([]StorageConfigResponse, len(configs))
	for i, sc := range configs {
		responses[i] = *s.convertToResponse(&sc)
	}

	return responses, nil
}

// Update updates an existing storage config
func (s *StorageConfigService) Update(id uuid.UUID, req *UpdateStorageConfigRequest) (*StorageConfigResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrStorageConfigNotFound
	}

	if req.Name != nil && *req.Name != sc.Name {
		if existing, err := s.repo.GetByName(sc.OrganizationID, *req.Name); err == nil && existing.ID != id {
			return nil, apperrors.ErrStorageConfigExists
		}
		sc.Name = *req.Name
	}
	if req.RootPath != nil {
		sc.RootPath = *req.RootPath
	}
	if req.Credentials != nil {
		credentials, err := json.Marshal(req.Credentials)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal credentials: %w", err)
		}
		sc.Credentials = credentials
		// New credentials invalidate the last verification
		sc.Status = models.StorageStatusDisconnected
		sc.LastVerifiedAt = nil
		sc.LastError = ""
	}

	if err := s.repo.Update(sc); err != nil {
		return nil, fmt.Errorf("failed to update storage config: %w", err)
	}

	return s.convertToResponse(sc), nil
}

// SetDefault marks the config as the organization's default destination
func (s *StorageConfigService) SetDefault(id uuid.UUID) (*StorageConfigResponse, error) {
	sc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrStorageConfigNotFound
	}

	if err := s.repo.SetDefault(sc.OrganizationID, sc.ID); err != nil {
		return nil, fmt.Errorf("failed to set default storage config: %w", err)
	}
	sc.IsDefault = true

	return s.convertToResponse(sc), nil
}

// TestConnection verifies the config against the live provider and records
// the outcome on the config row.
func (s *StorageConfigService) TestConnection(ctx context.Context, id uuid.UUID) (*StorageConfigResponse, error) {
	sc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrStorageConfigNotFound
	}

	provider, err := s.ProviderForConfig(sc)
	if err == nil {
		err = provider.Test(ctx)
	}

	now := time.Now()
	if err != nil {
		sc.Status = models.StorageStatusError
		sc.LastError = err.Error()
		s.log.WithError(err).WithField("storage_config_id", id.String()).Warn("storage connection test failed")
	} else {
		sc.Status = models.StorageStatusConnected
		sc.LastVerifiedAt = &now
		sc.LastError = ""
	}

	if updateErr := s.repo.Update(sc); updateErr != nil {
		return nil, fmt.Errorf("failed to record test result: %w", updateErr)
	}

	return s.convertToResponse(sc), nil
}

// Delete deletes a storage config
func (s *StorageConfigService) Delete(id uuid.UUID, actorEmail string) error {
	sc, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrStorageConfigNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete storage config: %w", err)
	}

	s.activity.Record(sc.OrganizationID, actorEmail, models.ActivityActionDisconnected, "storage_config", &sc.ID, map[string]any{
		"name":     sc.Name,
		"provider": string(sc.Provider),
	})

	return nil
}

// ProviderForConfig builds a live provider client for the config, persisting
// refreshed OAuth tokens back onto the config row.
func (s *StorageConfigService) ProviderForConfig(sc *models.StorageConfig) (storage.Provider, error) {
	return s.factory.ForConfig(sc, func(creds models.StorageCredentials) {
		encoded, err := json.Marshal(creds)
		if err != nil {
			return
		}
		sc.Credentials = encoded
		if err := s.repo.Update(sc); err != nil {
			s.log.WithError(err).WithField("storage_config_id", sc.ID.String()).Warn("failed to persist refreshed storage token")
		}
	})
}

// convertToResponse converts a storage config model to response
func (s *StorageConfigService) convertToResponse(sc *models.StorageConfig) *StorageConfigResponse {
	return &StorageConfigResponse{
		ID:             sc.ID,
		OrganizationID: sc.OrganizationID,
		Name:           sc.Name,
		Provider:       string(sc.Provider),
		RootPath:       sc.RootPath,
		IsDefault:      sc.IsDefault,
		Status:         string(sc.Status),
		LastVerifiedAt: sc.LastVerifiedAt,
		LastError:      sc.LastError,
		CreatedAt:      sc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      sc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
