package auth

import (
	"net/http"

	apperrors "menu-platform-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// CredentialsRequest is the email/password payload for signup and login
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Signup handles POST /api/auth/signup
// @Summary Register with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Email and password"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	resp, err := h.service.SignUp(req.Email, req.Password)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Email and password"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	resp, err := h.service.SignIn(req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// OAuthStart handles GET /api/auth/oauth/start
// @Summary Begin the OAuth sign-in flow
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Authorization URL and state"
// @Failure 500 {object} map[string]interface{} "Provider not configured"
// @Router /api/auth/oauth/start [get]
func (h *AuthHandler) OAuthStart(c *gin.Context) {
	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state"})
		return
	}

	url, err := h.service.OAuthURL(state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie("oauth_state", state, 600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"url": url, "state": state})
}

// OAuthCallback handles GET /api/auth/oauth/callback
// @Summary Complete the OAuth sign-in flow
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State from the start call"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Missing code or state mismatch"
// @Router /api/auth/oauth/callback [get]
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	if expected, err := c.Cookie("oauth_state"); err != nil || expected != c.Query("state") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State mismatch"})
		return
	}

	resp, err := h.service.HandleOAuthCallback(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OAuth sign-in failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Token claims"
// @Failure 401 {object} map[string]interface{} "Invalid token"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	claims, err := h.service.ValidateJWT(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "email": claims.Email, "expires_at": claims.ExpiresAt})
}
