package handlers

import (
	"errors"
	"net/http"

	apperrors "menu-platform-backend/internal/errors"
	"menu-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MenuHandler serves the public, unauthenticated menu endpoints
type MenuHandler struct {
	service service.MenuServiceInterface
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service service.MenuServiceInterface) *MenuHandler {
	return &MenuHandler{service: service}
}

// GetMenu retrieves the full menu for a business by slug
// @Summary Get public menu by slug
// @Description Get a business profile with its categories and available items, ordered for display
// @Tags menu
// @Accept json
// @Produce json
// @Param slug path string true "Business slug"
// @Success 200 {object} service.MenuResponse "Full menu"
// @Failure 404 {object} ErrorResponse "Business not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /menu/{slug} [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	menu, err := h.service.LoadMenu(c.Param("slug"))
	if err != nil {
		if errors.Is(err, apperrors.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, menu)
}

// ResolveMenu resolves the tenant from the request host and returns its menu
// @Summary Resolve tenant and get menu
// @Description Resolve the tenant from the Host header (or the host query parameter) and return its menu, or a landing marker when the host addresses no tenant
// @Tags menu
// @Accept json
// @Produce json
// @Param host query string false "Hostname override, defaults to the Host header"
// @Success 200 {object} service.ResolvedMenuResponse "Resolved menu or landing marker"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /menu [get]
func (h *MenuHandler) ResolveMenu(c *gin.Context) {
	host := c.Query("host")
	if host == "" {
		host = c.Request.Host
	}

	// Unknown tenants resolve to the landing payload, never a 404
	resolved, err := h.service.ResolveAndLoad(host)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resolved)
}
