package service

import (
	"context"
	"fmt"
	"time"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/repository"
	"docuflow-backend/internal/storage"

	"github.com/google/uuid"
)

// StorageProviderSource yields a live provider client for a stored config.
// Implemented by StorageConfigService.
type StorageProviderSource interface {
	ProviderForConfig(sc *models.StorageConfig) (storage.Provider, error)
}

// downloadURLExpiry bounds how long a generated document link stays valid
const downloadURLExpiry = 15 * time.Minute

// DocumentService handles business logic for received documents
type DocumentService struct {
	repo      repository.DocumentRepositoryInterface
	scRepo    repository.StorageConfigRepositoryInterface
	providers StorageProviderSource
	activity  *ActivityService
	log       *logger.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(repo repository.DocumentRepositoryInterface, scRepo repository.StorageConfigRepositoryInterface, providers StorageProviderSource, activity *ActivityService, log *logger.Logger) *DocumentService {
	return &DocumentService{
		repo:      repo,
		scRepo:    scRepo,
		providers: providers,
		activity:  activity,
		log:       log,
	}
}

// DocumentResponse represents the response data for a document
type DocumentResponse struct {
	ID              uuid.UUID  `json:"id"`
	OrganizationID  uuid.UUID  `json:"organization_id"`
	EmployeeID      *uuid.UUID `json:"employee_id,omitempty"`
	RequestID       *uuid.UUID `json:"request_id,omitempty"`
	RoutingRuleID   *uuid.UUID `json:"routing_rule_id,omitempty"`
	StorageConfigID *uuid.UUID `json:"storage_config_id,omitempty"`
	FileName        string     `json:"file_name"`
	FileType        string     `json:"file_type"`
	FileSize        int64      `json:"file_size"`
	MimeType        string     `json:"mime_type"`
	SenderEmail     string     `json:"sender_email"`
	SenderName      string     `json:"sender_name"`
	Subject         string     `json:"subject"`
	ReceivedAt      time.Time  `json:"received_at"`
	FolderPath      string     `json:"folder_path"`
	Status          string     `json:"status"`
	FailureReason   string     `json:"failure_reason,omitempty"`
	CreatedAt       string     `json:"created_at"`
}

// DownloadURLResponse carries a short-lived link to the stored file
type DownloadURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

// ListDocumentsOptions narrows the document listing
type ListDocumentsOptions struct {
	Status      string
	EmployeeID  *uuid.UUID
	RequestID   *uuid.UUID
	FileType    string
	SenderEmail string
}

// GetByID retrieves a document by ID
func (s *DocumentService) GetByID(id uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrDocumentNotFound
	}

	return s.convertToResponse(doc), nil
}

// GetByOrganization retrieves an organization's documents
func (s *DocumentService) GetByOrganization(orgID uuid.UUID, opts ListDocumentsOptions, limit, offset int) ([]DocumentResponse, int64, error) {
	filter := repository.DocumentFilter{
		Status:      models.DocumentStatus(opts.Status),
		EmployeeID:  opts.EmployeeID,
		RequestID:   opts.RequestID,
		FileType:    opts.FileType,
		SenderEmail: opts.SenderEmail,
	}
	docs, total, err := s.repo.GetByOrganization(orgID, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get documents: %w", err)
	}

	responses := make([]DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = *s.convertToResponse(&doc)
	}

	return responses, total, nil
}

// DownloadURL produces a short-lived link to the document's stored file
func (s *DocumentService) DownloadURL(ctx context.Context, id uuid.UUID) (*DownloadURLResponse, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrDocumentNotFound
	}
	if doc.Status != models.DocumentStatusStored || doc.StorageConfigID == nil {
		return nil, apperrors.NewValidationError("status", "document is not stored")
	}

	sc, err := s.scRepo.GetByID(*doc.StorageConfigID)
	if err != nil {
		return nil, apperrors.ErrStorageConfigNotFound
	}

	provider, err := s.providers.ProviderForConfig(sc)
	if err != nil {
		return nil, err
	}

	url, err := provider.DownloadURL(ctx, doc.StorageKey, downloadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to generate download link: %w", err)
	}

	return &DownloadURLResponse{
		URL:       url,
		ExpiresIn: int(downloadURLExpiry.Seconds()),
	}, nil
}

// Delete removes the document record and, when it was stored, the underlying
// file. A provider failure does not block the record delete.
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID, actorEmail string) error {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrDocumentNotFound
	}

	if doc.Status == models.DocumentStatusStored && doc.StorageConfigID != nil {
		if sc, err := s.scRepo.GetByID(*doc.StorageConfigID); err == nil {
			if provider, err := s.providers.ProviderForConfig(sc); err == nil {
				if err := provider.Delete(ctx, doc.StorageKey); err != nil {
					s.log.WithError(err).WithField("document_id", id.String()).Warn("failed to delete stored file")
				}
			}
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.activity.Record(doc.OrganizationID, actorEmail, models.ActivityActionDeleted, "document", &doc.ID, map[string]any{
		"file_name": doc.FileName,
	})

	return nil
}

// convertToResponse converts a document model to response
func (s *DocumentService) convertToResponse(doc *models.Document) *DocumentResponse {
	return documentToResponse(doc)
}

// documentToResponse is shared with the document request service, which embeds
// received documents in its responses.
func documentToResponse(doc *models.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:              doc.ID,
		OrganizationID:  doc.OrganizationID,
		EmployeeID:      doc.EmployeeID,
		RequestID:       doc.RequestID,
		RoutingRuleID:   doc.RoutingRuleID,
		StorageConfigID: doc.StorageConfigID,
		FileName:        doc.FileName,
		FileType:        doc.FileType,
		FileSize:        doc.FileSize,
		MimeType:        doc.MimeType,
		SenderEmail:     doc.SenderEmail,
		SenderName:      doc.SenderName,
		Subject:         doc.Subject,
		ReceivedAt:      doc.ReceivedAt,
		FolderPath:      doc.FolderPath,
		Status:          string(doc.Status),
		FailureReason:   doc.FailureReason,
		CreatedAt:       doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
