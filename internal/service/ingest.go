package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/repository"
	"docuflow-backend/internal/routing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// fallbackFolderTemplate places unrouted documents when no rule matches
const fallbackFolderTemplate = "{date}/{sender_email}"

// IngestService runs the inbound email pipeline: resolve the owning
// organization from the recipient mailbox, match the sender to an employee and
// any open document request, validate each attachment against the
// organization's limits, route it through the rule chain and store the file.
type IngestService struct {
	orgRepo     repository.OrganizationRepositoryInterface
	accountRepo repository.EmailAccountRepositoryInterface
	empRepo     repository.EmployeeRepositoryInterface
	reqRepo     repository.DocumentRequestRepositoryInterface
	docRepo     repository.DocumentRepositoryInterface
	ruleRepo    repository.RoutingRuleRepositoryInterface
	scRepo      repository.StorageConfigRepositoryInterface
	engine      *routing.Engine
	providers   StorageProviderSource
	activity    *ActivityService
	validator   *validator.Validate
	log         *logger.Logger
}

// NewIngestService creates a new ingest service
func NewIngestService(
	orgRepo repository.OrganizationRepositoryInterface,
	accountRepo repository.EmailAccountRepositoryInterface,
	empRepo repository.EmployeeRepositoryInterface,
	reqRepo repository.DocumentRequestRepositoryInterface,
	docRepo repository.DocumentRepositoryInterface,
	ruleRepo repository.RoutingRuleRepositoryInterface,
	scRepo repository.StorageConfigRepositoryInterface,
	engine *routing.Engine,
	providers StorageProviderSource,
	activity *ActivityService,
	validator *validator.Validate,
	log *logger.Logger,
) *IngestService {
	return &IngestService{
		orgRepo:     orgRepo,
		accountRepo: accountRepo,
		empRepo:     empRepo,
		reqRepo:     reqRepo,
		docRepo:     docRepo,
		ruleRepo:    ruleRepo,
		scRepo:      scRepo,
		engine:      engine,
		providers:   providers,
		activity:    activity,
		validator:   validator,
		log:         log,
	}
}

// InboundAttachment is one file from an inbound email
type InboundAttachment struct {
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content" validate:"required"`
}

// InboundEmailRequest represents an inbound email delivered to one of the
// organization's connected mailboxes
type InboundEmailRequest struct {
	RecipientAddress string              `json:"recipient_address" validate:"required,email"`
	SenderEmail      string              `json:"sender_email" validate:"required,email"`
	SenderName       string              `json:"sender_name"`
	Subject          string              `json:"subject" validate:"max=500"`
	ReceivedAt       *time.Time          `json:"received_at"`
	Attachments      []InboundAttachment `json:"attachments" validate:"required,min=1,dive"`
}

// AttachmentResult reports the outcome for one attachment
type AttachmentResult struct {
	DocumentID    uuid.UUID `json:"document_id"`
	FileName      string    `json:"file_name"`
	Status        string    `json:"status"`
	FolderPath    string    `json:"folder_path,omitempty"`
	FailureReason string    `json:"failure_reason,omitempty"`
}

// IngestResponse summarizes one processed inbound email
type IngestResponse struct {
	OrganizationID uuid.UUID          `json:"organization_id"`
	EmployeeID     *uuid.UUID         `json:"employee_id,omitempty"`
	RequestID      *uuid.UUID         `json:"request_id,omitempty"`
	Attachments    []AttachmentResult `json:"attachments"`
	Stored         int                `json:"stored"`
	Failed         int                `json:"failed"`
}

// Ingest processes one inbound email. Attachments are isolated from each
// other: a failed attachment is recorded as a failed document and the rest of
// the mail still goes through.
func (s *IngestService) Ingest(ctx context.Context, req *InboundEmailRequest) (*IngestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	account, err := s.accountRepo.GetByAddress(req.RecipientAddress)
	if err != nil {
		return nil, apperrors.ErrEmailAccountNotFound
	}

	org, err := s.orgRepo.GetByID(account.OrganizationID)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}
	settings := org.DecodeSettings()

	senderEmail := strings.ToLower(strings.TrimSpace(req.SenderEmail))
	var employee *models.Employee
	if e, err := s.empRepo.GetByEmail(org.ID, senderEmail); err == nil && e.IsActive {
		employee = e
	}

	var openRequests []models.DocumentRequest
	if employee != nil {
		openRequests, err = s.reqRepo.GetOpenByEmployee(employee.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get open requests: %w", err)
		}
	}

	rules, err := s.ruleRepo.GetByOrganization(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get routing rules: %w", err)
	}

	receivedAt := time.Now()
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}

	resp := &IngestResponse{
		OrganizationID: org.ID,
		Attachments:    make([]AttachmentResult, 0, len(req.Attachments)),
	}
	if employee != nil {
		resp.EmployeeID = &employee.ID
	}

	for i := range req.Attachments {
		att := &req.Attachments[i]
		result := s.processAttachment(ctx, org, settings, employee, openRequests, rules, req, att, receivedAt)
		if result.Status == string(models.DocumentStatusStored) {
			resp.Stored++
		} else {
			resp.Failed++
		}
		resp.Attachments = append(resp.Attachments, result)
	}

	// Report the request the first stored attachment landed on
	for _, r := range resp.Attachments {
		if r.Status == string(models.DocumentStatusStored) {
			if doc, err := s.docRepo.GetByID(r.DocumentID); err == nil && doc.RequestID != nil {
				resp.RequestID = doc.RequestID
				break
			}
		}
	}

	return resp, nil
}

// processAttachment runs one attachment through validate, route, store. The
// document row is created up front so failures leave an auditable record.
func (s *IngestService) processAttachment(
	ctx context.Context,
	org *models.Organization,
	settings models.OrganizationSettings,
	employee *models.Employee,
	openRequests []models.DocumentRequest,
	rules []models.RoutingRule,
	email *InboundEmailRequest,
	att *InboundAttachment,
	receivedAt time.Time,
) AttachmentResult {
	ext := routing.FileExtension(att.FileName)

	doc := &models.Document{
		OrganizationID: org.ID,
		FileName:       att.FileName,
		FileType:       ext,
		FileSize:       int64(len(att.Content)),
		MimeType:       att.ContentType,
		SenderEmail:    strings.ToLower(strings.TrimSpace(email.SenderEmail)),
		SenderName:     email.SenderName,
		Subject:        email.Subject,
		ReceivedAt:     receivedAt,
		Status:         models.DocumentStatusReceived,
	}
	if employee != nil {
		doc.EmployeeID = &employee.ID
	}

	if err := s.docRepo.Create(doc); err != nil {
		s.log.WithError(err).WithField("file_name", att.FileName).Error("failed to record inbound document")
		return AttachmentResult{
			FileName:      att.FileName,
			Status:        string(models.DocumentStatusFailed),
			FailureReason: "failed to record document",
		}
	}

	if err := s.validateAttachment(settings, att, ext); err != nil {
		return s.fail(doc, err.Error())
	}
	doc.Status = models.DocumentStatusValidated

	// An open request claims the attachment when its requested types allow it
	request := matchOpenRequest(openRequests, ext)
	if request != nil {
		doc.RequestID = &request.ID
	}

	msg := routing.Message{
		SenderEmail:  doc.SenderEmail,
		SenderName:   email.SenderName,
		Subject:      email.Subject,
		FileName:     att.FileName,
		DocumentType: ext,
		Organization: org.Name,
	}
	if employee != nil {
		msg.EmployeeName = employee.FullName
	}
	if request != nil {
		msg.RequestTitle = request.Title
	}

	var (
		sc     *models.StorageConfig
		folder string
	)
	if rule, matched := s.engine.Match(rules, msg); matched {
		config, err := s.scRepo.GetByID(rule.StorageConfigID)
		if err != nil {
			return s.fail(doc, "routing rule destination no longer exists")
		}
		sc = config
		folder = routing.RenderFolder(rule.FolderTemplate, msg, receivedAt)
		doc.RoutingRuleID = &rule.ID
	} else {
		config, err := s.scRepo.GetDefault(org.ID)
		if err != nil {
			return s.fail(doc, apperrors.ErrNoDefaultStorageConfig.Error())
		}
		sc = config
		folder = routing.RenderFolder(fallbackFolderTemplate, msg, receivedAt)
	}
	doc.StorageConfigID = &sc.ID
	doc.FolderPath = folder
	doc.Status = models.DocumentStatusRouted

	provider, err := s.providers.ProviderForConfig(sc)
	if err != nil {
		return s.fail(doc, err.Error())
	}

	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	uploaded, err := provider.Upload(ctx, folder, att.FileName, bytes.NewReader(att.Content), int64(len(att.Content)), contentType)
	if err != nil {
		return s.fail(doc, fmt.Sprintf("upload failed: %v", err))
	}

	doc.StorageKey = uploaded.Key
	doc.Status = models.DocumentStatusStored
	if err := s.docRepo.Update(doc); err != nil {
		s.log.WithError(err).WithField("document_id", doc.ID.String()).Error("failed to persist stored document")
	}

	if request != nil {
		s.advanceRequest(request)
	}

	s.activity.Record(org.ID, "", models.ActivityActionDocumentStore, "document", &doc.ID, map[string]any{
		"file_name":   doc.FileName,
		"sender":      doc.SenderEmail,
		"folder_path": folder,
	})

	return AttachmentResult{
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		Status:     string(doc.Status),
		FolderPath: folder,
	}
}

// validateAttachment enforces the organization's size and file-type limits
func (s *IngestService) validateAttachment(settings models.OrganizationSettings, att *InboundAttachment, ext string) error {
	if int64(len(att.Content)) > int64(settings.MaxAttachmentMB)*1024*1024 {
		return apperrors.ErrAttachmentTooLarge
	}

	allowed := false
	for _, t := range settings.AllowedFileTypes {
		if strings.EqualFold(strings.TrimPrefix(t, "."), ext) {
			allowed = true
			break
		}
	}
	if !allowed {
		return apperrors.ErrAttachmentTypeNotAllowed
	}
	return nil
}

// fail marks the document failed, records the reason and audits it
func (s *IngestService) fail(doc *models.Document, reason string) AttachmentResult {
	doc.Status = models.DocumentStatusFailed
	doc.FailureReason = reason
	if err := s.docRepo.Update(doc); err != nil {
		s.log.WithError(err).WithField("document_id", doc.ID.String()).Error("failed to persist failed document")
	}

	s.activity.Record(doc.OrganizationID, "", models.ActivityActionDocumentFail, "document", &doc.ID, map[string]any{
		"file_name": doc.FileName,
		"sender":    doc.SenderEmail,
		"reason":    reason,
	})

	return AttachmentResult{
		DocumentID:    doc.ID,
		FileName:      doc.FileName,
		Status:        string(doc.Status),
		FailureReason: reason,
	}
}

// matchOpenRequest returns the oldest open request that accepts the file type.
// A request with no requested types accepts anything.
func matchOpenRequest(requests []models.DocumentRequest, ext string) *models.DocumentRequest {
	for i := range requests {
		types := requests[i].DecodeDocumentTypes()
		if len(types) == 0 {
			return &requests[i]
		}
		for _, t := range types {
			if strings.EqualFold(strings.TrimPrefix(t, "."), ext) {
				return &requests[i]
			}
		}
	}
	return nil
}

// advanceRequest moves a request forward after a document was stored against
// it: partially_received until every requested type has arrived, completed
// once they all have.
func (s *IngestService) advanceRequest(request *models.DocumentRequest) {
	docs, err := s.docRepo.GetByRequest(request.ID)
	if err != nil {
		s.log.WithError(err).WithField("request_id", request.ID.String()).Warn("failed to load request documents")
		return
	}

	stored := make(map[string]bool)
	for _, doc := range docs {
		if doc.Status == models.DocumentStatusStored {
			stored[strings.ToLower(doc.FileType)] = true
		}
	}
	if len(stored) == 0 {
		return
	}

	complete := true
	for _, t := range request.DecodeDocumentTypes() {
		if !stored[strings.ToLower(strings.TrimPrefix(t, "."))] {
			complete = false
			break
		}
	}

	if complete {
		now := time.Now()
		request.Status = models.RequestStatusCompleted
		request.CompletedAt = &now
	} else {
		request.Status = models.RequestStatusPartiallyReceived
	}

	if err := s.reqRepo.Update(request); err != nil {
		s.log.WithError(err).WithField("request_id", request.ID.String()).Warn("failed to advance request status")
	}
}
