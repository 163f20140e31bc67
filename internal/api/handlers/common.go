package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"docuflow-backend/internal/auth"
	apperrors "docuflow-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// pagination parses page/page_size query parameters into limit and offset
func pagination(c *gin.Context) (page, pageSize, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

// organizationIDQuery parses the required organization_id query parameter
func organizationIDQuery(c *gin.Context) (uuid.UUID, bool) {
	idStr := c.Query("organization_id")
	if idStr == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// requireOrganizationID resolves the organization a request operates on.
// Authenticated sessions are pinned to the organization carried in their token
// claims and a conflicting organization_id query parameter is rejected;
// requests without a session must pass organization_id explicitly.
func requireOrganizationID(c *gin.Context) (uuid.UUID, bool) {
	queryOrg, hasQuery := organizationIDQuery(c)

	if _, authenticated := auth.GetAuthClaims(c); authenticated {
		claimsOrg, ok := auth.GetOrganizationID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "User is not associated with an organization"})
			return uuid.Nil, false
		}
		if hasQuery && queryOrg != claimsOrg {
			c.JSON(http.StatusForbidden, gin.H{"error": "organization_id does not match the authenticated organization"})
			return uuid.Nil, false
		}
		return claimsOrg, true
	}

	if !hasQuery {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id query parameter is required"})
		return uuid.Nil, false
	}
	return queryOrg, true
}

// tenantMatches verifies that a client-supplied organization ID belongs to the
// authenticated session before a write is accepted
func tenantMatches(c *gin.Context, orgID uuid.UUID) bool {
	if _, authenticated := auth.GetAuthClaims(c); !authenticated {
		return true
	}
	claimsOrg, ok := auth.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "User is not associated with an organization"})
		return false
	}
	if orgID != claimsOrg {
		c.JSON(http.StatusForbidden, gin.H{"error": "organization_id does not match the authenticated organization"})
		return false
	}
	return true
}

// tenantForbidden hides entities of other organizations behind a 404 so
// cross-tenant IDs are indistinguishable from missing ones
func tenantForbidden(c *gin.Context, ownerOrg uuid.UUID, notFound error) bool {
	if _, authenticated := auth.GetAuthClaims(c); !authenticated {
		return false
	}
	claimsOrg, ok := auth.GetOrganizationID(c)
	if ok && claimsOrg == ownerOrg {
		return false
	}
	c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	return true
}

// isValidationError reports whether err came from request validation, so the
// handler answers 400 instead of 500. Services wrap validator errors with a
// "validation failed" prefix.
func isValidationError(err error) bool {
	return apperrors.IsValidation(err) || strings.Contains(err.Error(), "validation failed")
}

// actorEmail returns the authenticated user's email set by the auth middleware
func actorEmail(c *gin.Context) string {
	return c.GetString("email")
}
