package handlers

import (
	"errors"
	"net/http"
	"strings"

	"docuflow-backend/internal/auth"
	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmailAccountHandler handles HTTP requests for connected email accounts
type EmailAccountHandler struct {
	service service.EmailAccountServiceInterface
}

// NewEmailAccountHandler creates a new email account handler
func NewEmailAccountHandler(service service.EmailAccountServiceInterface) *EmailAccountHandler {
	return &EmailAccountHandler{service: service}
}

// ConnectEmailAccount handles POST /api/v1/email-accounts/connect
// @Summary Start connecting a mailbox
// @Description Build the OAuth consent URL for connecting a Gmail or Microsoft mailbox to an organization
// @Tags email-accounts
// @Accept json
// @Produce json
// @Param provider query string true "Mail provider" Enums(google, microsoft)
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Success 200 {object} service.ConnectStartResponse "Consent URL to redirect the user to"
// @Failure 400 {object} map[string]interface{} "Invalid provider or organization_id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /email-accounts/connect [post]
func (h *EmailAccountHandler) ConnectEmailAccount(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	provider := models.EmailProvider(c.Query("provider"))
	resp, err := h.service.ConnectStart(provider, orgID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedProvider) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start mailbox connection", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// EmailAccountCallback handles GET /api/v1/email-accounts/callback
// @Summary OAuth callback for mailbox connections
// @Description Exchange the authorization code and persist the connected account. State carries "provider:organization_id".
// @Tags email-accounts
// @Accept json
// @Produce json
// @Param state query string true "OAuth state (provider:organization_id)"
// @Param code query string true "Authorization code"
// @Success 200 {object} service.EmailAccountResponse "Connected account"
// @Failure 400 {object} map[string]interface{} "Invalid state or code"
// @Failure 409 {object} map[string]interface{} "Address already connected to another organization"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /email-accounts/callback [get]
func (h *EmailAccountHandler) EmailAccountCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code query parameter is required"})
		return
	}

	providerStr, orgIDStr, found := strings.Cut(c.Query("state"), ":")
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid OAuth state"})
		return
	}
	orgID, err := uuid.Parse(orgIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid OAuth state"})
		return
	}
	if !tenantMatches(c, orgID) {
		return
	}

	account, err := h.service.ConnectCallback(c.Request.Context(), models.EmailProvider(providerStr), orgID, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAccountExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrUnsupportedProvider) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect mailbox", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, account)
}

// GetEmailAccount handles GET /api/v1/email-accounts/:id
func (h *EmailAccountHandler) GetEmailAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email account ID"})
		return
	}

	account, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get email account", "details": err.Error()})
		return
	}
	if tenantForbidden(c, account.OrganizationID, apperrors.ErrEmailAccountNotFound) {
		return
	}

	c.JSON(http.StatusOK, account)
}

// ownsAccount verifies the target email account belongs to the caller's
// organization before acting on it
func (h *EmailAccountHandler) ownsAccount(c *gin.Context, id uuid.UUID) bool {
	if _, authenticated := auth.GetAuthClaims(c); !authenticated {
		return true
	}
	account, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get email account", "details": err.Error()})
		}
		return false
	}
	return !tenantForbidden(c, account.OrganizationID, apperrors.ErrEmailAccountNotFound)
}

// ListEmailAccounts handles GET /api/v1/email-accounts
// @Summary List email accounts by organization
// @Description Get the mailboxes connected to an organization. Tokens are never returned.
// @Tags email-accounts
// @Accept json
// @Produce json
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Success 200 {object} map[string]interface{} "Successfully retrieved email accounts"
// @Failure 400 {object} map[string]interface{} "Missing or invalid organization_id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /email-accounts [get]
func (h *EmailAccountHandler) ListEmailAccounts(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	accounts, err := h.service.GetByOrganization(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get email accounts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email_accounts": accounts, "total": len(accounts)})
}

// DisconnectEmailAccount handles POST /api/v1/email-accounts/:id/disconnect
// @Summary Disconnect a mailbox
// @Description Drop the stored tokens and mark the account disconnected. The row is kept for history.
// @Tags email-accounts
// @Accept json
// @Produce json
// @Param id path string true "Email account ID (UUID)"
// @Success 200 {object} service.EmailAccountResponse "Disconnected account"
// @Failure 400 {object} map[string]interface{} "Invalid email account ID"
// @Failure 404 {object} map[string]interface{} "Email account not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /email-accounts/{id}/disconnect [post]
func (h *EmailAccountHandler) DisconnectEmailAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email account ID"})
		return
	}
	if !h.ownsAccount(c, id) {
		return
	}

	account, err := h.service.Disconnect(id, actorEmail(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect email account", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, account)
}

// PollEmailAccount handles POST /api/v1/email-accounts/:id/poll
// @Summary Record a manual mailbox poll
// @Description Stamp last_polled_at on a connected account. Message delivery itself arrives through the ingest endpoint.
// @Tags email-accounts
// @Accept json
// @Produce json
// @Param id path string true "Email account ID (UUID)"
// @Success 200 {object} service.EmailAccountResponse "Polled account"
// @Failure 400 {object} map[string]interface{} "Invalid email account ID"
// @Failure 404 {object} map[string]interface{} "Email account not found"
// @Failure 409 {object} map[string]interface{} "Account is not connected"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /email-accounts/{id}/poll [post]
func (h *EmailAccountHandler) PollEmailAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email account ID"})
		return
	}
	if !h.ownsAccount(c, id) {
		return
	}

	account, err := h.service.PollNow(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrEmailAccountReauthNeeded) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to poll email account", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteEmailAccount handles DELETE /api/v1/email-accounts/:id
func (h *EmailAccountHandler) DeleteEmailAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email account ID"})
		return
	}
	if !h.ownsAccount(c, id) {
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrEmailAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete email account", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
