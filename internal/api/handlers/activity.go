package handlers

import (
	"net/http"

	"docuflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for the activity log
type ActivityHandler struct {
	service service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// ListActivity handles GET /api/v1/activity
// @Summary List activity log entries
// @Description Get the audit trail of an organization, newest first, with optional action, entity and actor filters
// @Tags activity
// @Accept json
// @Produce json
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Param action query string false "Filter by action"
// @Param entity_type query string false "Filter by entity type"
// @Param actor_email query string false "Filter by actor email"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved activity entries"
// @Failure 400 {object} map[string]interface{} "Missing or invalid organization_id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	page, pageSize, limit, offset := pagination(c)
	opts := service.ListActivityOptions{
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		ActorEmail: c.Query("actor_email"),
	}

	entries, total, err := h.service.GetByOrganization(orgID, opts, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get activity log", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity":  entries,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
