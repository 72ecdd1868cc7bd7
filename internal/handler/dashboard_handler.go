package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/attraction-heatmap/internal/models"
	"github.com/jengzang/attraction-heatmap/internal/service"
	"github.com/jengzang/attraction-heatmap/pkg/response"
)

// DashboardHandler handles HTTP requests for the attraction dashboard
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetOptions handles GET /api/v1/dashboard/options
func (h *DashboardHandler) GetOptions(c *gin.Context) {
	options, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to load dataset", err)
		return
	}

	response.Success(c, options)
}

// GetCharts handles GET /api/v1/dashboard/charts
func (h *DashboardHandler) GetCharts(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	charts, err := h.service.GetCharts(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, "Failed to build charts", err)
		return
	}

	response.Success(c, charts)
}

// GetMap handles GET /api/v1/dashboard/map
func (h *DashboardHandler) GetMap(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	view, err := h.service.GetMap(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, "Failed to build map", err)
		return
	}

	response.Success(c, view)
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	view, err := h.service.GetDashboard(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, "Failed to render dashboard", err)
		return
	}

	response.Success(c, view)
}

// GetDataset handles GET /api/v1/dataset
func (h *DashboardHandler) GetDataset(c *gin.Context) {
	info, err := h.service.GetDatasetInfo(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to load dataset", err)
		return
	}

	response.Success(c, info)
}

// RefreshDataset handles POST /api/v1/dataset/refresh
func (h *DashboardHandler) RefreshDataset(c *gin.Context) {
	info, err := h.service.RefreshDataset(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to refresh dataset", err)
		return
	}

	response.Success(c, info)
}

func bindFilter(c *gin.Context) (models.DashboardFilter, bool) {
	var filter models.DashboardFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return filter, false
	}
	return filter, true
}
