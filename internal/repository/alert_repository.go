package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/minesight/rockfall-backend-go/internal/models"
)

// AlertRepository handles database operations for alerts
type AlertRepository struct {
	db *sql.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

const alertColumns = "id, alert_id, sensor_reading_id, alert_type, status, zone_name, risk_score, recommended_action, created_at"

func scanAlert(scanner interface{ Scan(...interface{}) error }) (*models.Alert, error) {
	var a models.Alert
	var createdAt string

	err := scanner.Scan(
		&a.ID, &a.AlertID, &a.SensorReadingID, &a.AlertType, &a.Status,
		&a.ZoneName, &a.RiskScore, &a.RecommendedAction, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if t, err := time.Parse(timeLayout, createdAt); err == nil {
		a.CreatedAt = t
	}

	return &a, nil
}

// Create inserts an alert and fills in its assigned id. A duplicate alert_id
// violates the unique constraint and surfaces as an error.
func (r *AlertRepository) Create(alert *models.Alert) error {
	query := `INSERT INTO alerts (alert_id, sensor_reading_id, alert_type, status, zone_name, risk_score, recommended_action)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.Exec(query,
		alert.AlertID, alert.SensorReadingID, alert.AlertType, alert.Status,
		alert.ZoneName, alert.RiskScore, alert.RecommendedAction,
	)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get alert id: %w", err)
	}
	alert.ID = id

	return nil
}

// GetByID retrieves a single alert with its owning reading; nil when not found
func (r *AlertRepository) GetByID(id int64) (*models.Alert, error) {
	alert, err := scanAlert(r.db.QueryRow("SELECT "+alertColumns+" FROM alerts WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	reading, err := scanSensorReading(r.db.QueryRow(selectSensorQuery()+" WHERE id = ?", alert.SensorReadingID))
	if err == nil {
		alert.SensorReading = reading
	} else if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to load alert reading: %w", err)
	}

	return alert, nil
}

// List retrieves alerts with filtering and pagination, newest first, each with
// its owning sensor reading embedded
func (r *AlertRepository) List(filter models.AlertFilter) ([]models.Alert, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.AlertType != "" {
		conditions = append(conditions, "alert_type = ?")
		args = append(args, filter.AlertType)
	}
	if filter.ZoneName != "" {
		conditions = append(conditions, "zone_name = ?")
		args = append(args, filter.ZoneName)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM alerts"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
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
	offset := (filter.Page - 1) * filter.PageSize

	query := "SELECT " + alertColumns + " FROM alerts" + where + " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, *alert)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range alerts {
		reading, err := scanSensorReading(r.db.QueryRow(selectSensorQuery()+" WHERE id = ?", alerts[i].SensorReadingID))
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load alert reading: %w", err)
		}
		alerts[i].SensorReading = reading
	}

	return alerts, total, nil
}

// Update replaces the mutable columns of an alert (status transitions included)
func (r *AlertRepository) Update(alert *models.Alert) error {
	query := `UPDATE alerts SET alert_type = ?, status = ?, zone_name = ?, risk_score = ?, recommended_action = ?
		WHERE id = ?`

	result, err := r.db.Exec(query,
		alert.AlertType, alert.Status, alert.ZoneName, alert.RiskScore, alert.RecommendedAction, alert.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete removes a single alert
func (r *AlertRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM alerts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Count returns the total number of alerts
func (r *AlertRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM alerts").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	return total, nil
}
