package models

// SensorStatistics is the payload of GET /sensors/statistics/
type SensorStatistics struct {
	TotalSensors   int64 `json:"total_sensors"`
	TotalReadings  int64 `json:"total_readings"`
	RockfallEvents int64 `json:"rockfall_events"`
	HighRiskCount  int64 `json:"high_risk_count"`
}

// DashboardStats is the payload of GET /alerts/dashboard_stats/
type DashboardStats struct {
	TotalAlerts    int64 `json:"total_alerts"`
	ActiveAlerts   int64 `json:"active_alerts"`
	CriticalAlerts int64 `json:"critical_alerts"`
	HighAlerts     int64 `json:"high_alerts"`
}

// ZoneSummary aggregates risk statistics for one slope zone
type ZoneSummary struct {
	ZoneName     string  `json:"zone_name"`
	ReadingCount int64   `json:"reading_count"`
	MeanRisk     float64 `json:"mean_risk"`
	MaxRisk      float64 `json:"max_risk"`
	P95Risk      float64 `json:"p95_risk"`
}

// UploadResult summarizes one CSV ingestion batch
type UploadResult struct {
	Message        string   `json:"message"`
	Created        int      `json:"created"`
	Errors         int      `json:"errors"`
	TotalProcessed int      `json:"total_processed"`
	ErrorSamples   []string `json:"error_samples,omitempty"`
}

// ClearAllResult reports the admin bulk wipe counts
type ClearAllResult struct {
	Message        string `json:"message"`
	SensorsDeleted int64  `json:"sensors_deleted"`
	AlertsDeleted  int64  `json:"alerts_deleted"`
}

// NearbySensor is one entry of GET /sensors/nearby/
type NearbySensor struct {
	SensorID       string        `json:"sensor_id"`
	DistanceMeters float64       `json:"distance_meters"`
	LatestReading  SensorReading `json:"latest_reading"`
}
