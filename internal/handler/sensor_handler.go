package handler

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/minesight/rockfall-backend-go/internal/models"
	"github.com/minesight/rockfall-backend-go/internal/service"
	"github.com/minesight/rockfall-backend-go/pkg/response"
)

// SensorHandler handles HTTP requests for sensor readings
type SensorHandler struct {
	sensorService  *service.SensorService
	ingestService  *service.IngestService
	statsService   *service.StatsService
	maxUploadBytes int64
}

// NewSensorHandler creates a new sensor handler
func NewSensorHandler(sensorService *service.SensorService, ingestService *service.IngestService, statsService *service.StatsService, maxUploadBytes int64) *SensorHandler {
	return &SensorHandler{
		sensorService:  sensorService,
		ingestService:  ingestService,
		statsService:   statsService,
		maxUploadBytes: maxUploadBytes,
	}
}

// List handles GET /sensors/
func (h *SensorHandler) List(c *gin.Context) {
	var filter models.SensorReadingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.sensorService.List(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetByID handles GET /sensors/:id/
func (h *SensorHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid sensor reading ID")
		return
	}

	reading, err := h.sensorService.GetByID(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if reading == nil {
		response.NotFound(c, "Sensor reading not found")
		return
	}

	response.Success(c, reading)
}

// Create handles POST /sensors/
func (h *SensorHandler) Create(c *gin.Context) {
	var reading models.SensorReading
	if err := c.ShouldBindJSON(&reading); err != nil {
		response.BadRequest(c, "Invalid sensor reading payload")
		return
	}

	if err := h.sensorService.Create(&reading); err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, reading)
}

// Update handles PUT /sensors/:id/
func (h *SensorHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid sensor reading ID")
		return
	}

	var reading models.SensorReading
	if err := c.ShouldBindJSON(&reading); err != nil {
		response.BadRequest(c, "Invalid sensor reading payload")
		return
	}
	reading.ID = id

	if err := h.sensorService.Update(&reading); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "Sensor reading not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, reading)
}

// Delete handles DELETE /sensors/:id/
func (h *SensorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid sensor reading ID")
		return
	}

	if err := h.sensorService.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "Sensor reading not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "Sensor reading deleted"})
}

// Statistics handles GET /sensors/statistics/
func (h *SensorHandler) Statistics(c *gin.Context) {
	stats, err := h.statsService.SensorStatistics()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, stats)
}

// ZoneSummary handles GET /sensors/zone_summary/
func (h *SensorHandler) ZoneSummary(c *gin.Context) {
	summaries, err := h.statsService.ZoneSummaries()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  summaries,
		"count": len(summaries),
	})
}

// Nearby handles GET /sensors/nearby/?lat=&lon=&radius_m=
func (h *SensorHandler) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lat parameter")
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lon parameter")
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius_m", "1000"), 64)
	if err != nil || radius <= 0 {
		response.BadRequest(c, "Invalid radius_m parameter")
		return
	}

	sensors, err := h.sensorService.Nearby(lat, lon, radius)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  sensors,
		"count": len(sensors),
	})
}

// UploadCSV handles POST /sensors/upload_csv/
func (h *SensorHandler) UploadCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file provided")
		return
	}

	if !strings.HasSuffix(fileHeader.Filename, ".csv") {
		response.BadRequest(c, "File must be CSV")
		return
	}

	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		response.BadRequest(c, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "Failed to open uploaded file: "+err.Error())
		return
	}
	defer file.Close()

	result, err := h.ingestService.ProcessCSV(file)
	if err != nil {
		response.InternalError(c, "Failed to process CSV: "+err.Error())
		return
	}

	response.Created(c, result)
}

// ClearAll handles DELETE /sensors/clear_all/. Admin role is enforced by
// route middleware.
func (h *SensorHandler) ClearAll(c *gin.Context) {
	result, err := h.sensorService.ClearAll()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}
