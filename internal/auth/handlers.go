package auth

import (
	"errors"
	"net/http"
	"strings"

	apperrors "docuflow-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the login, refresh and logout endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest represents the request for logout
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ValidateResponse represents the response from the token validation endpoint
type ValidateResponse struct {
	Valid  bool        `json:"valid"`
	Claims *AuthClaims `json:"claims,omitempty"`
}

// Start godoc
// @Summary Start OAuth login
// @Description Returns the provider authorization URL to redirect the user to
// @Tags auth
// @Produce json
// @Param provider path string true "Login provider (google or microsoft)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/auth/{provider}/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	provider := c.Param("provider")

	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start login", "details": err.Error()})
		return
	}

	url, err := h.service.AuthURL(provider, state)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "state": state})
}

// HandlerFrame godoc
// @Summary Complete OAuth login
// @Description Exchanges the authorization code and returns a JWT session
// @Tags auth
// @Produce json
// @Param provider path string true "Login provider (google or microsoft)"
// @Param code query string true "Authorization code"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string
// @Router /api/auth/{provider}/handler/frame [get]
func (h *AuthHandler) HandlerFrame(c *gin.Context) {
	provider := c.Param("provider")

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code query parameter is required"})
		return
	}

	session, err := h.service.HandleCallback(c.Request.Context(), provider, code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Login failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// Refresh godoc
// @Summary Refresh a session
// @Description Rotates the refresh token and issues a new JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	session, err := h.service.RefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRefreshToken) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	// Body is optional: a logout without a refresh token is still a logout
	_ = c.ShouldBindJSON(&req)

	h.service.Logout(req.RefreshToken)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ValidateToken godoc
// @Summary Validate an access token
// @Description Checks the Authorization bearer token and returns its claims
// @Tags auth
// @Produce json
// @Success 200 {object} ValidateResponse
// @Failure 401 {object} ValidateResponse
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, ValidateResponse{Valid: false})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ValidateResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{Valid: true, Claims: claims})
}
