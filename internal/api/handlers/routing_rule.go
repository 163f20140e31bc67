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

// RoutingRuleHandler handles HTTP requests for routing rules
type RoutingRuleHandler struct {
	service service.RoutingRuleServiceInterface
}

// NewRoutingRuleHandler creates a new routing rule handler
func NewRoutingRuleHandler(service service.RoutingRuleServiceInterface) *RoutingRuleHandler {
	return &RoutingRuleHandler{service: service}
}

// CreateRoutingRule handles POST /api/v1/routing-rules
// @Summary Create a new routing rule
// @Description Create a routing rule that decides where inbound attachments are filed
// @Tags routing-rules
// @Accept json
// @Produce json
// @Param rule body service.CreateRoutingRuleRequest true "Routing rule data"
// @Success 201 {object} service.RoutingRuleResponse "Successfully created routing rule"
// @Failure 400 {object} map[string]interface{} "Invalid request body or pattern"
// @Failure 403 {object} map[string]interface{} "Organization mismatch"
// @Failure 404 {object} map[string]interface{} "Storage config not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /routing-rules [post]
func (h *RoutingRuleHandler) CreateRoutingRule(c *gin.Context) {
	var req service.CreateRoutingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if !tenantMatches(c, req.OrganizationID) {
		return
	}

	rule, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create routing rule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// GetRoutingRule handles GET /api/v1/routing-rules/:id
func (h *RoutingRuleHandler) GetRoutingRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid routing rule ID"})
		return
	}

	rule, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoutingRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get routing rule", "details": err.Error()})
		return
	}
	if tenantForbidden(c, rule.OrganizationID, apperrors.ErrRoutingRuleNotFound) {
		return
	}

	c.JSON(http.StatusOK, rule)
}

// ownsRule verifies the target routing rule belongs to the caller's
// organization before acting on it
func (h *RoutingRuleHandler) ownsRule(c *gin.Context, id uuid.UUID) bool {
	if _, authenticated := auth.GetAuthClaims(c); !authenticated {
		return true
	}
	rule, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoutingRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get routing rule", "details": err.Error()})
		}
		return false
	}
	return !tenantForbidden(c, rule.OrganizationID, apperrors.ErrRoutingRuleNotFound)
}

// ListRoutingRules handles GET /api/v1/routing-rules
// @Summary List routing rules by organization
// @Description Get the routing rules of an organization ordered by priority
// @Tags routing-rules
// @Accept json
// @Produce json
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Success 200 {object} map[string]interface{} "Successfully retrieved routing rules"
// @Failure 400 {object} map[string]interface{} "Missing or invalid organization_id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /routing-rules [get]
func (h *RoutingRuleHandler) ListRoutingRules(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	rules, err := h.service.GetByOrganization(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get routing rules", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"routing_rules": rules, "total": len(rules)})
}

// UpdateRoutingRule handles PUT /api/v1/routing-rules/:id
func (h *RoutingRuleHandler) UpdateRoutingRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid routing rule ID"})
		return
	}
	if !h.ownsRule(c, id) {
		return
	}

	var req service.UpdateRoutingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	rule, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoutingRuleNotFound) || errors.Is(err, apperrors.ErrStorageConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update routing rule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rule)
}

// ReorderRoutingRules handles PUT /api/v1/routing-rules/reorder
// @Summary Reorder routing rules
// @Description Reassign rule priorities so they match the given order, first entry highest
// @Tags routing-rules
// @Accept json
// @Produce json
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Param order body service.ReorderRoutingRulesRequest true "Rule IDs in the desired order"
// @Success 204 "Successfully reordered routing rules"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Routing rule not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /routing-rules/reorder [put]
func (h *RoutingRuleHandler) ReorderRoutingRules(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	var req service.ReorderRoutingRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Reorder(orgID, &req); err != nil {
		if errors.Is(err, apperrors.ErrRoutingRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder routing rules", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// TestRoutingRules handles POST /api/v1/routing-rules/test
// @Summary Dry-run the routing rules
// @Description Evaluate a hypothetical inbound message against the organization's rules without storing anything
// @Tags routing-rules
// @Accept json
// @Produce json
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Param message body service.TestRoutingRequest true "Hypothetical message"
// @Success 200 {object} service.TestRoutingResponse "Match outcome"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /routing-rules/test [post]
func (h *RoutingRuleHandler) TestRoutingRules(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	var req service.TestRoutingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Test(orgID, &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to test routing rules", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteRoutingRule handles DELETE /api/v1/routing-rules/:id
func (h *RoutingRuleHandler) DeleteRoutingRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid routing rule ID"})
		return
	}
	if !h.ownsRule(c, id) {
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrRoutingRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete routing rule", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
