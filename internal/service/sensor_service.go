package service

import (
	"math"
	"sort"

	"github.com/minesight/rockfall-backend-go/internal/models"
	"github.com/minesight/rockfall-backend-go/internal/repository"
	"github.com/minesight/rockfall-backend-go/internal/spatial"
)

// SensorService handles business logic for sensor readings
type SensorService struct {
	sensorRepo *repository.SensorRepository
}

// NewSensorService creates a new sensor service
func NewSensorService(sensorRepo *repository.SensorRepository) *SensorService {
	return &SensorService{
		sensorRepo: sensorRepo,
	}
}

// List returns a page of readings matching the filter
func (s *SensorService) List(filter models.SensorReadingFilter) (*models.SensorReadingsResponse, error) {
	readings, total, err := s.sensorRepo.List(filter)
	if err != nil {
		return nil, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))
	return &models.SensorReadingsResponse{
		Data:       readings,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetByID returns one reading or nil
func (s *SensorService) GetByID(id int64) (*models.SensorReading, error) {
	return s.sensorRepo.GetByID(id)
}

// Create persists a directly submitted reading. Direct creation never derives
// alerts; only CSV ingestion does.
func (s *SensorService) Create(reading *models.SensorReading) error {
	if reading.SensorStatus == "" {
		reading.SensorStatus = models.SensorStatusActive
	}
	if reading.DataQualityFlag == "" {
		reading.DataQualityFlag = models.DataQualityGood
	}
	if reading.RockfallSizeCategory == "" {
		reading.RockfallSizeCategory = "NONE"
	}
	return s.sensorRepo.Create(reading)
}

// Update replaces an existing reading
func (s *SensorService) Update(reading *models.SensorReading) error {
	return s.sensorRepo.Update(reading)
}

// Delete removes a reading; its alerts cascade
func (s *SensorService) Delete(id int64) error {
	return s.sensorRepo.Delete(id)
}

// ClearAll wipes alerts and readings atomically, returning the pre-wipe
// counts. The caller enforces the admin-only restriction.
func (s *SensorService) ClearAll() (*models.ClearAllResult, error) {
	sensorCount, alertCount, err := s.sensorRepo.ClearAll()
	if err != nil {
		return nil, err
	}

	return &models.ClearAllResult{
		Message:        "All data cleared",
		SensorsDeleted: sensorCount,
		AlertsDeleted:  alertCount,
	}, nil
}

// Nearby returns each sensor's latest reading within radiusMeters of a point,
// closest first
func (s *SensorService) Nearby(lat, lon, radiusMeters float64) ([]models.NearbySensor, error) {
	latest, err := s.sensorRepo.LatestPerSensor()
	if err != nil {
		return nil, err
	}

	var result []models.NearbySensor
	for _, reading := range latest {
		distance := spatial.HaversineDistance(lat, lon, reading.Latitude, reading.Longitude)
		if distance <= radiusMeters {
			result = append(result, models.NearbySensor{
				SensorID:       reading.SensorID,
				DistanceMeters: math.Round(distance*10) / 10,
				LatestReading:  reading,
			})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceMeters < result[j].DistanceMeters
	})

	return result, nil
}
