package handlers

import (
	"errors"
	"net/http"

	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler handles HTTP requests for the organization dashboard
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboardStats handles GET /api/v1/organizations/:id/dashboard
// @Summary Get dashboard counters
// @Description Get the overview counters for an organization: employees, open requests, recent documents, active rules, storage errors
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.DashboardStatsResponse "Dashboard counters"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/dashboard [get]
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}
	if tenantForbidden(c, id, apperrors.ErrOrganizationNotFound) {
		return
	}

	stats, err := h.service.GetStats(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dashboard stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
