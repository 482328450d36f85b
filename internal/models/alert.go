package models

import "time"

// Alert represents a derived risk notification tied to one sensor reading
type Alert struct {
	ID              int64     `json:"id" db:"id"`
	AlertID         string    `json:"alert_id" db:"alert_id"`
	SensorReadingID int64     `json:"sensor_reading_id" db:"sensor_reading_id"`
	AlertType       string    `json:"alert_type" db:"alert_type"`
	Status          string    `json:"status" db:"status"`
	ZoneName        string    `json:"zone_name" db:"zone_name"`

	// Copied from the triggering reading at creation time; never re-synced
	RiskScore float64 `json:"risk_score" db:"risk_score"`

	RecommendedAction string    `json:"recommended_action" db:"recommended_action"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`

	// Embedded owning reading, populated on reads
	SensorReading *SensorReading `json:"sensor_reading,omitempty" db:"-"`
}

// AlertsResponse represents a paginated response of alerts
type AlertsResponse struct {
	Data       []Alert `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}

// AlertFilter represents filter parameters for querying alerts
type AlertFilter struct {
	Status    string `form:"status"`
	AlertType string `form:"alert_type"`
	ZoneName  string `form:"zone_name"`
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
}

// AlertType constants
const (
	AlertTypeCritical = "CRITICAL"
	AlertTypeHigh     = "HIGH"
	AlertTypeMedium   = "MEDIUM"
	AlertTypeLow      = "LOW"
)

// AlertStatus constants
const (
	AlertStatusActive   = "ACTIVE"
	AlertStatusResolved = "RESOLVED"
)
