package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/minesight/rockfall-backend-go/internal/database"
	"github.com/minesight/rockfall-backend-go/internal/models"
)

// timeLayout is the storage format for timestamps in sqlite TEXT columns
const timeLayout = "2006-01-02 15:04:05"

// sensorColumns lists every column of sensor_readings except id, in insert order
var sensorColumns = []string{
	"timestamp", "year", "month", "day_of_year", "hour", "shift",
	"sensor_id", "latitude", "longitude", "elevation_ft",
	"weather_station_id", "sensor_status", "data_quality_flag",
	"temperature_f", "precipitation_in", "humidity_pct", "wind_speed_mph", "barometric_pressure_inhg",
	"slope_zone", "slope_angle_deg", "bench_height_ft",
	"rock_type", "rock_mass_rating", "joint_spacing_ft", "joint_orientation_deg",
	"depth_to_water_ft", "pore_pressure_psi",
	"blast_frequency_7days", "distance_to_blast_ft", "blast_magnitude_lbs",
	"equipment_passes_per_shift",
	"microseismic_events_daily", "max_seismic_magnitude",
	"displacement_rate_mm_per_day", "cumulative_displacement_mm",
	"tiltmeter_microradians", "strain_gauge_microstrain", "vibration_ppv_mm_per_s",
	"rockfall_risk_score", "rockfall_occurred", "rockfall_size_category",
}

// SensorRepository handles database operations for sensor readings
type SensorRepository struct {
	db *sql.DB
}

// NewSensorRepository creates a new sensor repository
func NewSensorRepository(db *sql.DB) *SensorRepository {
	return &SensorRepository{db: db}
}

func sensorValues(r *models.SensorReading) []interface{} {
	return []interface{}{
		r.Timestamp.Format(timeLayout), r.Year, r.Month, r.DayOfYear, r.Hour, r.Shift,
		r.SensorID, r.Latitude, r.Longitude, r.ElevationFt,
		r.WeatherStationID, r.SensorStatus, r.DataQualityFlag,
		r.TemperatureF, r.PrecipitationIn, r.HumidityPct, r.WindSpeedMph, r.BarometricPressureInhg,
		r.SlopeZone, r.SlopeAngleDeg, r.BenchHeightFt,
		r.RockType, r.RockMassRating, r.JointSpacingFt, r.JointOrientationDeg,
		r.DepthToWaterFt, r.PorePressurePsi,
		r.BlastFrequency7Days, r.DistanceToBlastFt, r.BlastMagnitudeLbs,
		r.EquipmentPassesPerShift,
		r.MicroseismicEventsDaily, r.MaxSeismicMagnitude,
		r.DisplacementRateMmPerDay, r.CumulativeDisplacementMm,
		r.TiltmeterMicroradians, r.StrainGaugeMicrostrain, r.VibrationPpvMmPerS,
		r.RockfallRiskScore, r.RockfallOccurred, r.RockfallSizeCategory,
	}
}

func scanSensorReading(scanner interface{ Scan(...interface{}) error }) (*models.SensorReading, error) {
	var r models.SensorReading
	var timestamp, createdAt string

	err := scanner.Scan(
		&r.ID, &timestamp, &r.Year, &r.Month, &r.DayOfYear, &r.Hour, &r.Shift,
		&r.SensorID, &r.Latitude, &r.Longitude, &r.ElevationFt,
		&r.WeatherStationID, &r.SensorStatus, &r.DataQualityFlag,
		&r.TemperatureF, &r.PrecipitationIn, &r.HumidityPct, &r.WindSpeedMph, &r.BarometricPressureInhg,
		&r.SlopeZone, &r.SlopeAngleDeg, &r.BenchHeightFt,
		&r.RockType, &r.RockMassRating, &r.JointSpacingFt, &r.JointOrientationDeg,
		&r.DepthToWaterFt, &r.PorePressurePsi,
		&r.BlastFrequency7Days, &r.DistanceToBlastFt, &r.BlastMagnitudeLbs,
		&r.EquipmentPassesPerShift,
		&r.MicroseismicEventsDaily, &r.MaxSeismicMagnitude,
		&r.DisplacementRateMmPerDay, &r.CumulativeDisplacementMm,
		&r.TiltmeterMicroradians, &r.StrainGaugeMicrostrain, &r.VibrationPpvMmPerS,
		&r.RockfallRiskScore, &r.RockfallOccurred, &r.RockfallSizeCategory,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if r.Timestamp, err = time.Parse(timeLayout, timestamp); err != nil {
		return nil, fmt.Errorf("failed to parse stored timestamp: %w", err)
	}
	if t, err := time.Parse(timeLayout, createdAt); err == nil {
		r.CreatedAt = t
	}

	return &r, nil
}

func selectSensorQuery() string {
	return "SELECT id, " + strings.Join(sensorColumns, ", ") + ", created_at FROM sensor_readings"
}

// Create inserts a reading and fills in its assigned id
func (r *SensorRepository) Create(reading *models.SensorReading) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(sensorColumns)), ", ")
	query := fmt.Sprintf("INSERT INTO sensor_readings (%s) VALUES (%s)",
		strings.Join(sensorColumns, ", "), placeholders)

	result, err := r.db.Exec(query, sensorValues(reading)...)
	if err != nil {
		return fmt.Errorf("failed to create sensor reading: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get sensor reading id: %w", err)
	}
	reading.ID = id

	return nil
}

// GetByID retrieves a single reading; returns nil when not found
func (r *SensorRepository) GetByID(id int64) (*models.SensorReading, error) {
	reading, err := scanSensorReading(r.db.QueryRow(selectSensorQuery()+" WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sensor reading: %w", err)
	}
	return reading, nil
}

// List retrieves readings with filtering and pagination, newest first
func (r *SensorRepository) List(filter models.SensorReadingFilter) ([]models.SensorReading, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.SensorID != "" {
		conditions = append(conditions, "sensor_id = ?")
		args = append(args, filter.SensorID)
	}
	if filter.SlopeZone != "" {
		conditions = append(conditions, "slope_zone = ?")
		args = append(args, filter.SlopeZone)
	}
	if filter.StartTime != "" {
		conditions = append(conditions, "timestamp >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime != "" {
		conditions = append(conditions, "timestamp <= ?")
		args = append(args, filter.EndTime)
	}
	if filter.MinRiskScore > 0 {
		conditions = append(conditions, "rockfall_risk_score >= ?")
		args = append(args, filter.MinRiskScore)
	}
	if filter.RockfallOccurred != nil {
		conditions = append(conditions, "rockfall_occurred = ?")
		args = append(args, *filter.RockfallOccurred)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM sensor_readings"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sensor readings: %w", err)
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

	query := selectSensorQuery() + where + " ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sensor readings: %w", err)
	}
	defer rows.Close()

	var readings []models.SensorReading
	for rows.Next() {
		reading, err := scanSensorReading(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sensor reading: %w", err)
		}
		readings = append(readings, *reading)
	}

	return readings, total, rows.Err()
}

// Update replaces every mutable column of a reading
func (r *SensorRepository) Update(reading *models.SensorReading) error {
	assignments := make([]string, len(sensorColumns))
	for i, col := range sensorColumns {
		assignments[i] = col + " = ?"
	}
	query := fmt.Sprintf("UPDATE sensor_readings SET %s WHERE id = ?", strings.Join(assignments, ", "))

	args := append(sensorValues(reading), reading.ID)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update sensor reading: %w", err)
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

// Delete removes a reading; dependent alerts cascade via foreign key
func (r *SensorRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM sensor_readings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete sensor reading: %w", err)
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

// Count returns the total number of readings
func (r *SensorRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM sensor_readings").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count sensor readings: %w", err)
	}
	return total, nil
}

// ClearAll wipes alerts and readings in one transaction, returning the
// pre-wipe counts. Counting and deleting share the transaction so the counts
// cannot drift from what was actually removed.
func (r *SensorRepository) ClearAll() (sensorsDeleted, alertsDeleted int64, err error) {
	err = database.Transaction(r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRow("SELECT COUNT(*) FROM sensor_readings").Scan(&sensorsDeleted); err != nil {
			return fmt.Errorf("failed to count sensor readings: %w", err)
		}
		if err := tx.QueryRow("SELECT COUNT(*) FROM alerts").Scan(&alertsDeleted); err != nil {
			return fmt.Errorf("failed to count alerts: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM alerts"); err != nil {
			return fmt.Errorf("failed to delete alerts: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM sensor_readings"); err != nil {
			return fmt.Errorf("failed to delete sensor readings: %w", err)
		}
		return nil
	})
	return sensorsDeleted, alertsDeleted, err
}

// LatestPerSensor returns the most recent reading for every sensor
func (r *SensorRepository) LatestPerSensor() ([]models.SensorReading, error) {
	query := selectSensorQuery() + ` WHERE id IN (
		SELECT MAX(id) FROM sensor_readings GROUP BY sensor_id
	)`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest readings: %w", err)
	}
	defer rows.Close()

	var readings []models.SensorReading
	for rows.Next() {
		reading, err := scanSensorReading(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sensor reading: %w", err)
		}
		readings = append(readings, *reading)
	}

	return readings, rows.Err()
}
