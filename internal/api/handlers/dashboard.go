package handlers

import (
	"net/http"

	"menu-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the admin dashboard
type DashboardHandler struct {
	service         service.DashboardServiceInterface
	businessService service.BusinessServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface, businessService service.BusinessServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service, businessService: businessService}
}

// GetStats returns the menu health counters for the caller's business
// @Summary Get dashboard statistics
// @Description Get category and item totals plus items missing an image or hidden from the public menu
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} service.DashboardStatsResponse "Dashboard statistics"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "No business for this user"
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	businessID, ok := callerBusinessID(c, h.businessService)
	if !ok {
		return
	}

	stats, err := h.service.Stats(businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
