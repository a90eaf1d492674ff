package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sdiallo/projecthub-api/internal/dto"
	apierrors "github.com/sdiallo/projecthub-api/internal/errors"
	"github.com/sdiallo/projecthub-api/internal/services"
)

// DashboardHandler serves the read-only rollup.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns counts, projects with time_left, and the project task
// list. With ?mine=1 the task list is restricted to the actor's tasks.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	mineOnly := c.Query("mine") == "1"

	summary, err := h.dashboardService.GetSummary(actor, mineOnly)
	if err != nil {
		apierrors.InternalError(c, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardDTO(*summary, time.Now()))
}
