package service

import (
	"context"
	"fmt"
	"time"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DocumentRequestService handles business logic for document requests
type DocumentRequestService struct {
	repo         repository.DocumentRequestRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	docRepo      repository.DocumentRepositoryInterface
	accountRepo  repository.EmailAccountRepositoryInterface
	mail         MailSenderInterface
	activity     *ActivityService
	validator    *validator.Validate
}

// NewDocumentRequestService creates a new document request service
func NewDocumentRequestService(
	repo repository.DocumentRequestRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	docRepo repository.DocumentRepositoryInterface,
	accountRepo repository.EmailAccountRepositoryInterface,
	mail MailSenderInterface,
	activity *ActivityService,
	validator *validator.Validate,
) *DocumentRequestService {
	return &DocumentRequestService{
		repo:         repo,
		employeeRepo: employeeRepo,
		docRepo:      docRepo,
		accountRepo:  accountRepo,
		mail:         mail,
		activity:     activity,
		validator:    validator,
	}
}

// CreateDocumentRequestRequest represents the data needed to create a document request
type CreateDocumentRequestRequest struct {
	OrganizationID uuid.UUID  `json:"organization_id" validate:"required"`
	EmployeeID     uuid.UUID  `json:"employee_id" validate:"required"`
	Title          string     `json:"title" validate:"required,max=200"`
	Message        string     `json:"message" validate:"max=2000"`
	DocumentTypes  []string   `json:"document_types"`
	DueDate        *time.Time `json:"due_date"`
}

// UpdateDocumentRequestRequest represents the data needed to update a document request
type UpdateDocumentRequestRequest struct {
	Title         *string    `json:"title" validate:"omitempty,max=200"`
	Message       *string    `json:"message" validate:"omitempty,max=2000"`
	DocumentTypes []string   `json:"document_types"`
	DueDate       *time.Time `json:"due_date"`
}

// DocumentRequestResponse represents the response data for a document request
type DocumentRequestResponse struct {
	ID             uuid.UUID          `json:"id"`
	OrganizationID uuid.UUID          `json:"organization_id"`
	EmployeeID     uuid.UUID          `json:"employee_id"`
	Title          string             `json:"title"`
	Message        string             `json:"message"`
	DocumentTypes  []string           `json:"document_types,omitempty"`
	DueDate        *time.Time         `json:"due_date,omitempty"`
	Status         string             `json:"status"`
	SentAt         *time.Time         `json:"sent_at,omitempty"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty"`
	ReminderCount  int                `json:"reminder_count"`
	LastReminderAt *time.Time         `json:"last_reminder_at,omitempty"`
	Documents      []DocumentResponse `json:"documents,omitempty"`
	CreatedAt      string             `json:"created_at"`
}

// ListRequestsOptions narrows the request listing
type ListRequestsOptions struct {
	Status     string
	EmployeeID *uuid.UUID
	Overdue    bool
}

// Create creates a new document request in pending state. Nothing is emailed
// until Send is called.
func (s *DocumentRequestService) Create(req *CreateDocumentRequestRequest) (*DocumentRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.employeeRepo.GetByID(req.EmployeeID)
	if err != nil || employee.OrganizationID != req.OrganizationID {
		return nil, apperrors.ErrEmployeeNotFound
	}

	request := &models.DocumentRequest{
		OrganizationID: req.OrganizationID,
		EmployeeID:     req.EmployeeID,
		Title:          req.Title,
		Message:        req.Message,
		DocumentTypes:  encodeStringSlice(req.DocumentTypes),
		DueDate:        req.DueDate,
		Status:         models.RequestStatusPending,
	}

	if err := s.repo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create document request: %w", err)
	}

	return s.convertToResponse(request, nil), nil
}

// GetByID retrieves a document request with its received documents
func (s *DocumentRequestService) GetByID(id uuid.UUID) (*DocumentRequestResponse, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrDocumentRequestNotFound
	}

	docs, err := s.docRepo.GetByRequest(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get request documents: %w", err)
	}

	return s.convertToResponse(request, docs), nil
}

// GetByOrganization retrieves an organization's document requests
func (s *DocumentRequestService) GetByOrganization(orgID uuid.UUID, opts ListRequestsOptions, limit, offset int) ([]DocumentRequestResponse, int64, error) {
	filter := repository.RequestFilter{
		Status:     models.RequestStatus(opts.Status),
		EmployeeID: opts.EmployeeID,
		Overdue:    opts.Overdue,
	}
	requests, total, err := s.repo.GetByOrganization(orgID, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get document requests: %w", err)
	}

	responses := make([]DocumentRequestResponse, len(requests))
	for i, request := range requests {
		responses[i] = *s.convertToResponse(&request, nil)
	}

	return responses, total, nil
}

// Update updates a document request. Only open requests can change.
func (s *DocumentRequestService) Update(id uuid.UUID, req *UpdateDocumentRequestRequest) (*DocumentRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrDocumentRequestNotFound
	}
	if !request.IsOpen() {
		return nil, apperrors.ErrRequestNotOpen
	}

	if req.Title != nil {
		request.Title = *req.Title
	}
	if req.Message != nil {
		request.Message = *req.Message
	}
	if req.DocumentTypes != nil {
		request.DocumentTypes = encodeStringSlice(req.DocumentTypes)
	}
	if req.DueDate != nil {
		request.DueDate = req.DueDate
	}

	if err := s.repo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update document request: %w", err)
	}

	return s.convertToResponse(request, nil), nil
}

// Send emails the request to the employee through one of the organization's
// connected accounts and moves it from pending to sent.
func (s *DocumentRequestService) Send(ctx context.Context, id uuid.UUID, actorEmail string) (*DocumentRequestResponse, error) {
	request, err := s.repo.GetByIDWithEmployee(id)
	if err != nil {
		return nil, apperrors.ErrDocumentRequestNotFound
	}
	if request.Status == models.RequestStatusCompleted {
		return nil, apperrors.ErrRequestAlreadyCompleted
	}
	if !request.IsOpen() {
		return nil, apperrors.ErrRequestNotOpen
	}

	accounts, err := s.accountRepo.GetConnectedByOrganization(request.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get email accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, apperrors.ErrNoEmailAccountConnected
	}

	body := s.requestBody(request)
	if err := s.mail.Send(ctx, &accounts[0], request.Employee.Email, request.Title, body); err != nil {
		return nil, fmt.Errorf("failed to send request email: %w", err)
	}

	now := time.Now()
	if request.Status == models.RequestStatusPending {
		request.Status = models.RequestStatusSent
	}
	request.SentAt = &now
	if err := s.repo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update document request: %w", err)
	}

	s.activity.Record(request.OrganizationID, actorEmail, models.ActivityActionRequestSent, "document_request", &request.ID, map[string]any{
		"title":    request.Title,
		"employee": request.Employee.Email,
	})

	return s.convertToResponse(request, nil), nil
}

// Remind re-emails an open request and bumps its reminder counter
func (s *DocumentRequestService) Remind(ctx context.Context, id uuid.UUID, actorEmail string) (*DocumentRequestResponse, error) {
	request, err := s.repo.GetByIDWithEmployee(id)
	if err != nil {
		return nil, apperrors.ErrDocumentRequestNotFound
	}
	if request.Status == models.RequestStatusCompleted {
		return nil, apperrors.ErrRequestAlreadyCompleted
	}
	if !request.IsOpen() {
		return nil, apperrors.ErrRequestNotOpen
	}

	accounts, err := s.accountRepo.GetConnectedByOrganization(request.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get email accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, apperrors.ErrNoEmailAccountConnected
	}

	subject := "Reminder: " + request.Title
	if err := s.mail.Send(ctx, &accounts[0], request.Employee.Email, subject, s.requestBody(request)); err != nil {
		return nil, fmt.Errorf("failed to send reminder email: %w", err)
	}

	now := time.Now()
	request.ReminderCount++
	request.LastReminderAt = &now
	if err := s.repo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update document request: %w", err)
	}

	s.activity.Record(request.OrganizationID, actorEmail, models.ActivityActionReminderSent, "document_request", &request.ID, map[string]any{
		"title":          request.Title,
		"employee":       request.Employee.Email,
		"reminder_count": request.ReminderCount,
	})

	return s.convertToResponse(request, nil), nil
}

// Cancel closes an open request without completing it
func (s *DocumentRequestService) Cancel(id uuid.UUID) (*DocumentRequestResponse, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrDocumentRequestNotFound
	}
	if request.Status == models.RequestStatusCompleted {
		return nil, apperrors.ErrRequestAlreadyCompleted
	}
	if !request.IsOpen() {
		return nil, apperrors.ErrRequestNotOpen
	}

	request.Status = models.RequestStatusCancelled
	if err := s.repo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to cancel document request: %w", err)
	}

	return s.convertToResponse(request, nil), nil
}

// Delete deletes a document request
func (s *DocumentRequestService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrDocumentRequestNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete document request: %w", err)
	}

	return nil
}

// requestBody renders the plain-text email for a request
func (s *DocumentRequestService) requestBody(request *models.DocumentRequest) string {
	body := request.Message
	if body == "" {
		body = fmt.Sprintf("Please reply to this email with the requested document(s): %s.", request.Title)
	}
	if types := request.DecodeDocumentTypes(); len(types) > 0 {
		body += "\n\nAccepted file types: "
		for i, t := range types {
			if i > 0 {
				body += ", "
			}
			body += t
		}
	}
	if request.DueDate != nil {
		body += fmt.Sprintf("\n\nDue by: %s", request.DueDate.Format("January 2, 2006"))
	}
	return body
}

// convertToResponse converts a document request model to response
func (s *DocumentRequestService) convertToResponse(request *models.DocumentRequest, docs []models.Document) *DocumentRequestResponse {
	resp := &DocumentRequestResponse{
		ID:             request.ID,
		OrganizationID: request.OrganizationID,
		EmployeeID:     request.EmployeeID,
		Title:          request.Title,
		Message:        request.Message,
		DocumentTypes:  request.DecodeDocumentTypes(),
		DueDate:        request.DueDate,
		Status:         string(request.Status),
		SentAt:         request.SentAt,
		CompletedAt:    request.CompletedAt,
		ReminderCount:  request.ReminderCount,
		LastReminderAt: request.LastReminderAt,
		CreatedAt:      request.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if docs != nil {
		resp.Documents = make([]DocumentResponse, len(docs))
		for i, doc := range docs {
			resp.Documents[i] = *documentToResponse(&doc)
		}
	}
	return resp
}
