package handlers

import (
	"net/http"

	"menu-platform-backend/internal/auth"
	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BusinessHandler handles HTTP requests for the caller's business
type BusinessHandler struct {
	service service.BusinessServiceInterface
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(service service.BusinessServiceInterface) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// callerBusinessID resolves the authenticated caller's business. Writes the
// error response and returns false when the session is missing or the user
// has no business yet.
func callerBusinessID(c *gin.Context, businessService service.BusinessServiceInterface) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return uuid.Nil, false
	}

	business, err := businessService.GetForUser(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no business for this user"})
			return uuid.Nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return uuid.Nil, false
	}

	return business.ID, true
}

// Onboard creates a business for the authenticated user
// @Summary Onboard a new business
// @Description Create a business with the caller as its owner; the slug becomes the tenant subdomain
// @Tags business
// @Accept json
// @Produce json
// @Param business body service.OnboardRequest true "Business data"
// @Success 201 {object} service.BusinessResponse "Successfully created business"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 409 {object} ErrorResponse "Slug already taken"
// @Security BearerAuth
// @Router /admin/business [post]
func (h *BusinessHandler) Onboard(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, err := h.service.Onboard(userID, &req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, business)
}

// GetBusiness returns the authenticated caller's business
// @Summary Get own business
// @Description Get the business the authenticated user administers
// @Tags business
// @Accept json
// @Produce json
// @Success 200 {object} service.BusinessResponse "Business"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "No business for this user"
// @Security BearerAuth
// @Router /admin/business [get]
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	business, err := h.service.GetForUser(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, business)
}

// GetBusinessBySlug returns a business's public profile by slug
// @Summary Get business by slug
// @Description Get the public profile of a business by its tenant slug
// @Tags business
// @Accept json
// @Produce json
// @Param slug path string true "Business slug"
// @Success 200 {object} service.BusinessResponse "Business"
// @Failure 404 {object} ErrorResponse "Business not found"
// @Router /businesses/by-slug/{slug} [get]
func (h *BusinessHandler) GetBusinessBySlug(c *gin.Context) {
	business, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, business)
}

// UpdateBusiness updates the caller's business settings
// @Summary Update business settings
// @Description Update name, theme, logo and contact details of the caller's business
// @Tags business
// @Accept json
// @Produce json
// @Param business body service.UpdateBusinessRequest true "Updated settings"
// @Success 200 {object} service.BusinessResponse "Successfully updated business"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not a business admin"
// @Security BearerAuth
// @Router /admin/business [put]
func (h *BusinessHandler) UpdateBusiness(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	business, err := h.service.UpdateSettings(userID, &req)
	if err != nil {
		switch {
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, business)
}
