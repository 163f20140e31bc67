package handlers

import (
	"errors"
	"net/http"

	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IngestHandler handles the inbound email webhook
type IngestHandler struct {
	service service.IngestServiceInterface
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(service service.IngestServiceInterface) *IngestHandler {
	return &IngestHandler{service: service}
}

// IngestEmail handles POST /api/v1/ingest/email
// @Summary Ingest an inbound email
// @Description Process an inbound email with attachments: resolve the organization and sender, validate, route and store each attachment. Attachment content is base64 in JSON.
// @Tags ingest
// @Accept json
// @Produce json
// @Param email body service.InboundEmailRequest true "Inbound email payload"
// @Success 200 {object} service.IngestResponse "Per-attachment outcome"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 404 {object} map[string]interface{} "Recipient address is not a connected account"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /ingest/email [post]
func (h *IngestHandler) IngestEmail(c *gin.Context) {
	var req service.InboundEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Ingest(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAccountNotFound) || errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to ingest email", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
