package alerting

import (
	"fmt"

	"github.com/minesight/rockfall-backend-go/internal/models"
)

// Risk score thresholds on the 0-100 scale
const (
	CriticalThreshold = 75.0
	HighThreshold     = 50.0
)

// RecommendedAction is the fixed action text attached to every derived alert
const RecommendedAction = "Monitor closely and restrict access."

// Derive maps a freshly created sensor reading to at most one alert.
// Scores below 50 never produce an alert. The alert's risk score is a copy
// of the reading's score at creation time.
func Derive(reading *models.SensorReading) *models.Alert {
	score := reading.RockfallRiskScore
	if score < HighThreshold {
		return nil
	}

	alertType := models.AlertTypeHigh
	if score >= CriticalThreshold {
		alertType = models.AlertTypeCritical
	}

	return &models.Alert{
		AlertID:           fmt.Sprintf("ALERT-%s-%d", reading.SensorID, reading.ID),
		SensorReadingID:   reading.ID,
		AlertType:         alertType,
		Status:            models.AlertStatusActive,
		ZoneName:          reading.SlopeZone,
		RiskScore:         reading.RockfallRiskScore,
		RecommendedAction: RecommendedAction,
	}
}
