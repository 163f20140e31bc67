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

// StorageConfigHandler handles HTTP requests for storage configurations
type StorageConfigHandler struct {
	service service.StorageConfigServiceInterface
}

// NewStorageConfigHandler creates a new storage config handler
func NewStorageConfigHandler(service service.StorageConfigServiceInterface) *StorageConfigHandler {
	return &StorageConfigHandler{service: service}
}

// CreateStorageConfig handles POST /api/v1/storage-configs
// @Summary Create a new storage configuration
// @Description Register a storage destination for an organization. The first one becomes the default.
// @Tags storage-configs
// @Accept json
// @Produce json
// @Param config body service.CreateStorageConfigRequest true "Storage config data"
// @Success 201 {object} service.StorageConfigResponse "Successfully created storage config"
// @Failure 400 {object} map[string]interface{} "Invalid request body or provider"
// @Failure 403 {object} map[string]interface{} "Organization mismatch"
// @Failure 409 {object} map[string]interface{} "Storage config already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /storage-configs [post]
func (h *StorageConfigHandler) CreateStorageConfig(c *gin.Context) {
	var req service.CreateStorageConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if !tenantMatches(c, req.OrganizationID) {
		return
	}

	sc, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageConfigExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrUnsupportedProvider) || isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create storage config", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sc)
}

// GetStorageConfig handles GET /api/v1/storage-configs/:id
func (h *StorageConfigHandler) GetStorageConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid storage config ID"})
		return
	}

	sc, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get storage config", "details": err.Error()})
		return
	}
	if tenantForbidden(c, sc.OrganizationID, apperrors.ErrStorageConfigNotFound) {
		return
	}

	c.JSON(http.StatusOK, sc)
}

// ownsConfig verifies the target storage config belongs to the caller's
// organization before acting on it
func (h *StorageConfigHandler) ownsConfig(c *gin.Context, id uuid.UUID) bool {
	if _, authenticated := auth.GetAuthClaims(c); !authenticated {
		return true
	}
	sc, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get storage config", "details": err.Error()})
		}
		return false
	}
	return !tenantForbidden(c, sc.OrganizationID, apperrors.ErrStorageConfigNotFound)
}

// ListStorageConfigs handles GET /api/v1/storage-configs
// @Summary List storage configurations by organization
// @Description Get the storage destinations of an organization. Credentials are never returned.
// @Tags storage-configs
// @Accept json
// @Produce json
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Success 200 {object} map[string]interface{} "Successfully retrieved storage configs"
// @Failure 400 {object} map[string]interface{} "Missing or invalid organization_id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /storage-configs [get]
func (h *StorageConfigHandler) ListStorageConfigs(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	configs, err := h.service.GetByOrganization(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get storage configs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"storage_configs": configs, "total": len(configs)})
}

// UpdateStorageConfig handles PUT /api/v1/storage-configs/:id
func (h *StorageConfigHandler) UpdateStorageConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid storage config ID"})
		return
	}
	if !h.ownsConfig(c, id) {
		return
	}

	var req service.UpdateStorageConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	sc, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrStorageConfigExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update storage config", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sc)
}

// SetDefaultStorageConfig handles POST /api/v1/storage-configs/:id/set-default
// @Summary Set the default storage configuration
// @Description Make this config the organization's fallback destination when no routing rule matches
// @Tags storage-configs
// @Accept json
// @Produce json
// @Param id path string true "Storage config ID (UUID)"
// @Success 200 {object} service.StorageConfigResponse "Default updated"
// @Failure 400 {object} map[string]interface{} "Invalid storage config ID"
// @Failure 404 {object} map[string]interface{} "Storage config not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /storage-configs/{id}/set-default [post]
func (h *StorageConfigHandler) SetDefaultStorageConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid storage config ID"})
		return
	}
	if !h.ownsConfig(c, id) {
		return
	}

	sc, err := h.service.SetDefault(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default storage config", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sc)
}

// TestStorageConfig handles POST /api/v1/storage-configs/:id/test
// @Summary Test a storage configuration
// @Description Run a connectivity check against the destination and record the outcome
// @Tags storage-configs
// @Accept json
// @Produce json
// @Param id path string true "Storage config ID (UUID)"
// @Success 200 {object} service.StorageConfigResponse "Test outcome recorded on the config"
// @Failure 400 {object} map[string]interface{} "Invalid storage config ID"
// @Failure 404 {object} map[string]interface{} "Storage config not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /storage-configs/{id}/test [post]
func (h *StorageConfigHandler) TestStorageConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid storage config ID"})
		return
	}
	if !h.ownsConfig(c, id) {
		return
	}

	sc, err := h.service.TestConnection(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to test storage config", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sc)
}

// DeleteStorageConfig handles DELETE /api/v1/storage-configs/:id
func (h *StorageConfigHandler) DeleteStorageConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid storage config ID"})
		return
	}
	if !h.ownsConfig(c, id) {
		return
	}

	if err := h.service.Delete(id, actorEmail(c)); err != nil {
		if errors.Is(err, apperrors.ErrStorageConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete storage config", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
