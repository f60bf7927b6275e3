package handlers

import (
	"net/http"

	"voice-sales-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the analytics dashboard
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard handles GET /analytics/dashboard
// @Summary Dashboard metrics
// @Description Lead and call totals, conversion rate, average call duration, breakdowns and the latest calls
// @Tags analytics
// @Produce json
// @Success 200 {object} service.DashboardMetrics "Dashboard metrics"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /analytics/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	metrics, err := h.dashboardService.GetMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
