package handlers

import (
	"errors"
	"net/http"

	"docuflow-backend/internal/auth"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentRequestHandler handles HTTP requests for document requests
type DocumentRequestHandler struct {
	service service.DocumentRequestServiceInterface
}

// NewDocumentRequestHandler creates a new document request handler
func NewDocumentRequestHandler(service service.DocumentRequestServiceInterface) *DocumentRequestHandler {
	return &DocumentRequestHandler{service: service}
}

// CreateDocumentRequest handles POST /api/v1/document-requests
// @Summary Create a new document request
// @Description Create a document request for an employee. Nothing is emailed until the request is sent.
// @Tags document-requests
// @Accept json
// @Produce json
// @Param request body service.CreateDocumentRequestRequest true "Document request data"
// @Success 201 {object} service.DocumentRequestResponse "Successfully created document request"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Organization mismatch"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /document-requests [post]
func (h *DocumentRequestHandler) CreateDocumentRequest(c *gin.Context) {
	var req service.CreateDocumentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if !tenantMatches(c, req.OrganizationID) {
		return
	}

	request, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GetDocumentRequest handles GET /api/v1/document-requests/:id
// @Summary Get document request by ID
// @Description Get a specific document request including its received documents
// @Tags document-requests
// @Accept json
// @Produce json
// @Param id path string true "Document request ID (UUID)"
// @Success 200 {object} service.DocumentRequestResponse "Successfully retrieved document request"
// @Failure 400 {object} map[string]interface{} "Invalid document request ID"
// @Failure 404 {object} map[string]interface{} "Document request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /document-requests/{id} [get]
func (h *DocumentRequestHandler) GetDocumentRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document request ID"})
		return
	}

	request, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document request", "details": err.Error()})
		return
	}
	if tenantForbidden(c, request.OrganizationID, apperrors.ErrDocumentRequestNotFound) {
		return
	}

	c.JSON(http.StatusOK, request)
}

// ownsRequest verifies the target document request belongs to the caller's
// organization before acting on it
func (h *DocumentRequestHandler) ownsRequest(c *gin.Context, id uuid.UUID) bool {
	if _, authenticated := auth.GetAuthClaims(c); !authenticated {
		return true
	}
	request, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document request", "details": err.Error()})
		}
		return false
	}
	return !tenantForbidden(c, request.OrganizationID, apperrors.ErrDocumentRequestNotFound)
}

// ListDocumentRequests handles GET /api/v1/document-requests
// @Summary List document requests by organization
// @Description Get document requests of an organization with optional status, employee and overdue filters
// @Tags document-requests
// @Accept json
// @Produce json
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Param status query string false "Filter by request status"
// @Param employee_id query string false "Filter by employee ID"
// @Param overdue query bool false "Only requests past their due date"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved document requests"
// @Failure 400 {object} map[string]interface{} "Missing or invalid organization_id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /document-requests [get]
func (h *DocumentRequestHandler) ListDocumentRequests(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	page, pageSize, limit, offset := pagination(c)
	opts := service.ListRequestsOptions{
		Status:  c.Query("status"),
		Overdue: c.Query("overdue") == "true",
	}
	if empID, err := uuid.Parse(c.Query("employee_id")); err == nil {
		opts.EmployeeID = &empID
	}

	requests, total, err := h.service.GetByOrganization(orgID, opts, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document requests", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"document_requests": requests,
		"total":             total,
		"page":              page,
		"page_size":         pageSize,
	})
}

// UpdateDocumentRequest handles PUT /api/v1/document-requests/:id
// @Summary Update document request
// @Description Update an open document request. Completed and cancelled requests cannot change.
// @Tags document-requests
// @Accept json
// @Produce json
// @Param id path string true "Document request ID (UUID)"
// @Param request body service.UpdateDocumentRequestRequest true "Updated document request data"
// @Success 200 {object} service.DocumentRequestResponse "Successfully updated document request"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Document request not found"
// @Failure 409 {object} map[string]interface{} "Request is not open"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /document-requests/{id} [put]
func (h *DocumentRequestHandler) UpdateDocumentRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document request ID"})
		return
	}
	if !h.ownsRequest(c, id) {
		return
	}

	var req service.UpdateDocumentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	request, err := h.service.Update(id, &req)
	if err != nil {
		h.writeRequestError(c, err, "Failed to update document request")
		return
	}

	c.JSON(http.StatusOK, request)
}

// SendDocumentRequest handles POST /api/v1/document-requests/:id/send
// @Summary Send a document request
// @Description Email the request to the employee through the organization's connected mail account
// @Tags document-requests
// @Accept json
// @Produce json
// @Param id path string true "Document request ID (UUID)"
// @Success 200 {object} service.DocumentRequestResponse "Request sent"
// @Failure 400 {object} map[string]interface{} "Invalid document request ID"
// @Failure 404 {object} map[string]interface{} "Document request not found"
// @Failure 409 {object} map[string]interface{} "Request cannot be sent"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /document-requests/{id}/send [post]
func (h *DocumentRequestHandler) SendDocumentRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document request ID"})
		return
	}
	if !h.ownsRequest(c, id) {
		return
	}

	request, err := h.service.Send(c.Request.Context(), id, actorEmail(c))
	if err != nil {
		h.writeRequestError(c, err, "Failed to send document request")
		return
	}

	c.JSON(http.StatusOK, request)
}

// RemindDocumentRequest handles POST /api/v1/document-requests/:id/remind
// @Summary Send a reminder for a document request
// @Description Email a reminder to the employee for an open request
// @Tags document-requests
// @Accept json
// @Produce json
// @Param id path string true "Document request ID (UUID)"
// @Success 200 {object} service.DocumentRequestResponse "Reminder sent"
// @Failure 400 {object} map[string]interface{} "Invalid document request ID"
// @Failure 404 {object} map[string]interface{} "Document request not found"
// @Failure 409 {object} map[string]interface{} "Request cannot be reminded"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /document-requests/{id}/remind [post]
func (h *DocumentRequestHandler) RemindDocumentRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document request ID"})
		return
	}
	if !h.ownsRequest(c, id) {
		return
	}

	request, err := h.service.Remind(c.Request.Context(), id, actorEmail(c))
	if err != nil {
		h.writeRequestError(c, err, "Failed to send reminder")
		return
	}

	c.JSON(http.StatusOK, request)
}

// CancelDocumentRequest handles POST /api/v1/document-requests/:id/cancel
// @Summary Cancel a document request
// @Description Cancel an open document request so inbound documents no longer match it
// @Tags document-requests
// @Accept json
// @Produce json
// @Param id path string true "Document request ID (UUID)"
// @Success 200 {object} service.DocumentRequestResponse "Request cancelled"
// @Failure 400 {object} map[string]interface{} "Invalid document request ID"
// @Failure 404 {object} map[string]interface{} "Document request not found"
// @Failure 409 {object} map[string]interface{} "Request is not open"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /document-requests/{id}/cancel [post]
func (h *DocumentRequestHandler) CancelDocumentRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document request ID"})
		return
	}
	if !h.ownsRequest(c, id) {
		return
	}

	request, err := h.service.Cancel(id)
	if err != nil {
		h.writeRequestError(c, err, "Failed to cancel document request")
		return
	}

	c.JSON(http.StatusOK, request)
}

// DeleteDocumentRequest handles DELETE /api/v1/document-requests/:id
// @Summary Delete document request
// @Description Delete a document request by ID
// @Tags document-requests
// @Accept json
// @Produce json
// @Param id path string true "Document request ID (UUID)"
// @Success 204 "Successfully deleted document request"
// @Failure 400 {object} map[string]interface{} "Invalid document request ID"
// @Failure 404 {object} map[string]interface{} "Document request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /document-requests/{id} [delete]
func (h *DocumentRequestHandler) DeleteDocumentRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document request ID"})
		return
	}
	if !h.ownsRequest(c, id) {
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrDocumentRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document request", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DocumentRequestHandler) writeRequestError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrDocumentRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRequestNotOpen),
		errors.Is(err, apperrors.ErrRequestAlreadyCompleted),
		errors.Is(err, apperrors.ErrNoEmailAccountConnected),
		errors.Is(err, apperrors.ErrEmailAccountReauthNeeded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
