package repository

import (
	"database/sql"
	"fmt"

	"github.com/minesight/rockfall-backend-go/internal/models"
)

// StatsRepository runs the aggregate queries behind the statistics endpoints
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// SensorStatistics computes the sensor dashboard counters
func (r *StatsRepository) SensorStatistics() (*models.SensorStatistics, error) {
	stats := &models.SensorStatistics{}

	queries := []struct {
		query string
		dest  *int64
	}{
		{"SELECT COUNT(DISTINCT sensor_id) FROM sensor_readings", &stats.TotalSensors},
		{"SELECT COUNT(*) FROM sensor_readings", &stats.TotalReadings},
		{"SELECT COUNT(*) FROM sensor_readings WHERE rockfall_occurred = 1", &stats.RockfallEvents},
		{"SELECT COUNT(*) FROM sensor_readings WHERE rockfall_risk_score >= 75", &stats.HighRiskCount},
	}

	for _, q := range queries {
		if err := r.db.QueryRow(q.query).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("failed to compute sensor statistics: %w", err)
		}
	}

	return stats, nil
}

// DashboardStats computes the alert dashboard counters
func (r *StatsRepository) DashboardStats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	queries := []struct {
		query string
		args  []interface{}
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM alerts", nil, &stats.TotalAlerts},
		{"SELECT COUNT(*) FROM alerts WHERE status = ?", []interface{}{models.AlertStatusActive}, &stats.ActiveAlerts},
		{"SELECT COUNT(*) FROM alerts WHERE status = ? AND alert_type = ?",
			[]interface{}{models.AlertStatusActive, models.AlertTypeCritical}, &stats.CriticalAlerts},
		{"SELECT COUNT(*) FROM alerts WHERE status = ? AND alert_type = ?",
			[]interface{}{models.AlertStatusActive, models.AlertTypeHigh}, &stats.HighAlerts},
	}

	for _, q := range queries {
		if err := r.db.QueryRow(q.query, q.args...).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
		}
	}

	return stats, nil
}

// RiskScoresByZone returns every reading's risk score grouped by slope zone
func (r *StatsRepository) RiskScoresByZone() (map[string][]float64, error) {
	rows, err := r.db.Query("SELECT slope_zone, rockfall_risk_score FROM sensor_readings ORDER BY slope_zone")
	if err != nil {
		return nil, fmt.Errorf("failed to query risk scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[string][]float64)
	for rows.Next() {
		var zone string
		var score float64
		if err := rows.Scan(&zone, &score); err != nil {
			return nil, fmt.Errorf("failed to scan risk score: %w", err)
		}
		scores[zone] = append(scores[zone], score)
	}

	return scores, rows.Err()
}
