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

// DocumentHandler handles HTTP requests for received documents
type DocumentHandler struct {
	service service.DocumentServiceInterface
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service service.DocumentServiceInterface) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// GetDocument handles GET /api/v1/documents/:id
// @Summary Get document by ID
// @Description Get a specific document by its UUID
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DocumentResponse "Successfully retrieved document"
// @Failure 400 {object} map[string]interface{} "Invalid document ID"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	doc, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document", "details": err.Error()})
		return
	}
	if tenantForbidden(c, doc.OrganizationID, apperrors.ErrDocumentNotFound) {
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ownsDocument verifies the target document belongs to the caller's
// organization before acting on it
func (h *DocumentHandler) ownsDocument(c *gin.Context, id uuid.UUID) bool {
	if _, authenticated := auth.GetAuthClaims(c); !authenticated {
		return true
	}
	doc, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document", "details": err.Error()})
		}
		return false
	}
	return !tenantForbidden(c, doc.OrganizationID, apperrors.ErrDocumentNotFound)
}

// ListDocuments handles GET /api/v1/documents
// @Summary List documents by organization
// @Description Get documents of an organization with optional status, employee, request, file type and sender filters
// @Tags documents
// @Accept json
// @Produce json
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Param status query string false "Filter by document status"
// @Param employee_id query string false "Filter by employee ID"
// @Param request_id query string false "Filter by document request ID"
// @Param file_type query string false "Filter by file extension"
// @Param sender_email query string false "Filter by sender email"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved documents"
// @Failure 400 {object} map[string]interface{} "Missing or invalid organization_id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	page, pageSize, limit, offset := pagination(c)
	opts := service.ListDocumentsOptions{
		Status:      c.Query("status"),
		FileType:    c.Query("file_type"),
		SenderEmail: c.Query("sender_email"),
	}
	if empID, err := uuid.Parse(c.Query("employee_id")); err == nil {
		opts.EmployeeID = &empID
	}
	if reqID, err := uuid.Parse(c.Query("request_id")); err == nil {
		opts.RequestID = &reqID
	}

	docs, total, err := h.service.GetByOrganization(orgID, opts, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get documents", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": docs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDownloadURL handles GET /api/v1/documents/:id/download-url
// @Summary Get a document download link
// @Description Get a short-lived signed URL for downloading the stored file
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DownloadURLResponse "Signed download URL"
// @Failure 400 {object} map[string]interface{} "Invalid document ID"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /documents/{id}/download-url [get]
func (h *DocumentHandler) GetDownloadURL(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}
	if !h.ownsDocument(c, id) {
		return
	}

	resp, err := h.service.DownloadURL(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrStorageConfigNotFound) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create download URL", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteDocument handles DELETE /api/v1/documents/:id
// @Summary Delete document
// @Description Delete a document record and its stored file
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 204 "Successfully deleted document"
// @Failure 400 {object} map[string]interface{} "Invalid document ID"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}
	if !h.ownsDocument(c, id) {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, actorEmail(c)); err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
