package service

import (
	"fmt"
	"math"

	"github.com/minesight/rockfall-backend-go/internal/models"
	"github.com/minesight/rockfall-backend-go/internal/repository"
)

// AlertService handles business logic for alerts
type AlertService struct {
	alertRepo  *repository.AlertRepository
	sensorRepo *repository.SensorRepository
}

// NewAlertService creates a new alert service
func NewAlertService(alertRepo *repository.AlertRepository, sensorRepo *repository.SensorRepository) *AlertService {
	return &AlertService{
		alertRepo:  alertRepo,
		sensorRepo: sensorRepo,
	}
}

// List returns a page of alerts matching the filter
func (s *AlertService) List(filter models.AlertFilter) (*models.AlertsResponse, error) {
	alerts, total, err := s.alertRepo.List(filter)
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
	return &models.AlertsResponse{
		Data:       alerts,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetByID returns one alert or nil
func (s *AlertService) GetByID(id int64) (*models.Alert, error) {
	return s.alertRepo.GetByID(id)
}

// Create persists a directly submitted alert after checking its owning reading
// exists and its enum fields are valid
func (s *AlertService) Create(alert *models.Alert) error {
	if err := validateAlertEnums(alert); err != nil {
		return err
	}

	reading, err := s.sensorRepo.GetByID(alert.SensorReadingID)
	if err != nil {
		return err
	}
	if reading == nil {
		return fmt.Errorf("sensor reading %d not found", alert.SensorReadingID)
	}

	if alert.Status == "" {
		alert.Status = models.AlertStatusActive
	}

	return s.alertRepo.Create(alert)
}

// Update applies changes to an alert; status transitions (ACTIVE -> RESOLVED)
// happen through this path
func (s *AlertService) Update(alert *models.Alert) error {
	if err := validateAlertEnums(alert); err != nil {
		return err
	}
	return s.alertRepo.Update(alert)
}

// Delete removes a single alert
func (s *AlertService) Delete(id int64) error {
	return s.alertRepo.Delete(id)
}

func validateAlertEnums(alert *models.Alert) error {
	switch alert.AlertType {
	case models.AlertTypeCritical, models.AlertTypeHigh, models.AlertTypeMedium, models.AlertTypeLow:
	default:
		return fmt.Errorf("invalid alert_type %q", alert.AlertType)
	}

	switch alert.Status {
	case "", models.AlertStatusActive, models.AlertStatusResolved:
	default:
		return fmt.Errorf("invalid status %q", alert.Status)
	}

	return nil
}
