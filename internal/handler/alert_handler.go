package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minesight/rockfall-backend-go/internal/models"
	"github.com/minesight/rockfall-backend-go/internal/service"
	"github.com/minesight/rockfall-backend-go/pkg/response"
)

// AlertHandler handles HTTP requests for alerts
type AlertHandler struct {
	alertService *service.AlertService
	statsService *service.StatsService
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertService *service.AlertService, statsService *service.StatsService) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
		statsService: statsService,
	}
}

// List handles GET /alerts/
func (h *AlertHandler) List(c *gin.Context) {
	var filter models.AlertFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.alertService.List(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetByID handles GET /alerts/:id/
func (h *AlertHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid alert ID")
		return
	}

	alert, err := h.alertService.GetByID(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if alert == nil {
		response.NotFound(c, "Alert not found")
		return
	}

	response.Success(c, alert)
}

// Create handles POST /alerts/
func (h *AlertHandler) Create(c *gin.Context) {
	var alert models.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		response.BadRequest(c, "Invalid alert payload")
		return
	}

	if err := h.alertService.Create(&alert); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, alert)
}

// Update handles PUT /alerts/:id/
func (h *AlertHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid alert ID")
		return
	}

	var alert models.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		response.BadRequest(c, "Invalid alert payload")
		return
	}
	alert.ID = id

	if err := h.alertService.Update(&alert); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "Alert not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, alert)
}

// Delete handles DELETE /alerts/:id/
func (h *AlertHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid alert ID")
		return
	}

	if err := h.alertService.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "Alert not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "Alert deleted"})
}

// DashboardStats handles GET /alerts/dashboard_stats/
func (h *AlertHandler) DashboardStats(c *gin.Context) {
	stats, err := h.statsService.DashboardStats()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, stats)
}
