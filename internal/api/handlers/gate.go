package handlers

import (
	"net/http"

	"menu-platform-backend/internal/auth"
	"menu-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GateHandler serves the admin access gate. It runs behind OptionalAuth:
// requests without a valid token still get a decision (unauthenticated)
// rather than a 401.
type GateHandler struct {
	service service.GateServiceInterface
}

// NewGateHandler creates a new gate handler
func NewGateHandler(service service.GateServiceInterface) *GateHandler {
	return &GateHandler{service: service}
}

// Evaluate returns the gate decision for the current session and host
// @Summary Evaluate the admin access gate
// @Description Decide whether the admin surface may render for the current session: unauthenticated, no-business (redirect to onboarding) or ready with the business payload
// @Tags gate
// @Accept json
// @Produce json
// @Param host query string false "Hostname override, defaults to the Host header"
// @Success 200 {object} service.GateDecision "Gate decision"
// @Security BearerAuth
// @Router /admin/gate [get]
func (h *GateHandler) Evaluate(c *gin.Context) {
	host := c.Query("host")
	if host == "" {
		host = c.Request.Host
	}

	userID, hasUser := auth.GetUserID(c)
	decision := h.service.Evaluate(userID, hasUser, host)

	c.JSON(http.StatusOK, decision)
}
