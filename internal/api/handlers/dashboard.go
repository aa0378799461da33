package handlers

import (
	"net/http"

	"feedback-hub-backend/internal/auth"
	"feedback-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboard service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetStats handles GET /api/v1/dashboard/stats
// @Summary Get dashboard statistics for the caller
// @Description Managers get stats over their direct reports, owners and admins over the whole organization.
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardStatsResponse "Dashboard statistics"
// @Failure 403 {object} map[string]interface{} "Role has no dashboard"
// @Security BearerAuth
// @Router /v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.dashboard.Stats(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
