package ingest

import (
	"fmt"
	"strings"

	"github.com/minesight/rockfall-backend-go/internal/models"
)

// Row is one data row of an uploaded CSV, keyed by header column name.
// Number is 1-indexed counting the header as row 1, so the first data row is 2.
type Row struct {
	Number int
	fields map[string]string
}

// NewRow builds a Row from the header and a raw record. Records shorter than
// the header simply lack the trailing columns; the missing-column error is
// raised lazily when the column is first read.
func NewRow(number int, header, record []string) Row {
	fields := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(record) {
			fields[name] = record[i]
		}
	}
	return Row{Number: number, fields: fields}
}

func (r Row) get(column string) (string, error) {
	value, ok := r.fields[column]
	if !ok {
		return "", fmt.Errorf("Missing column '%s'", column)
	}
	return value, nil
}

func (r Row) getString(column string) (string, error) {
	value, err := r.get(column)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (r Row) getDecimal(column string) (float64, error) {
	value, err := r.get(column)
	if err != nil {
		return 0, err
	}
	return safeDecimal(column, value)
}

func (r Row) getInt(column string) (int, error) {
	value, err := r.get(column)
	if err != nil {
		return 0, err
	}
	return safeInt(column, value)
}

// ParseRow coerces one CSV row into a SensorReading. Any coercion failure
// aborts only this row; the caller records the error and moves on.
func ParseRow(row Row) (*models.SensorReading, error) {
	reading := &models.SensorReading{}

	tsValue, err := row.get("timestamp")
	if err != nil {
		return nil, err
	}
	if reading.Timestamp, err = parseTimestamp(tsValue); err != nil {
		return nil, err
	}

	intFields := []struct {
		column string
		dest   *int
	}{
		{"year", &reading.Year},
		{"month", &reading.Month},
		{"day_of_year", &reading.DayOfYear},
		{"hour", &reading.Hour},
		{"rock_mass_rating", &reading.RockMassRating},
		{"blast_frequency_7days", &reading.BlastFrequency7Days},
		{"equipment_passes_per_shift", &reading.EquipmentPassesPerShift},
		{"microseismic_events_daily", &reading.MicroseismicEventsDaily},
	}
	for _, f := range intFields {
		if *f.dest, err = row.getInt(f.column); err != nil {
			return nil, err
		}
	}

	decimalFields := []struct {
		column string
		dest   *float64
	}{
		{"latitude", &reading.Latitude},
		{"longitude", &reading.Longitude},
		{"elevation_ft", &reading.ElevationFt},
		{"temperature_f", &reading.TemperatureF},
		{"precipitation_in", &reading.PrecipitationIn},
		{"humidity_pct", &reading.HumidityPct},
		{"wind_speed_mph", &reading.WindSpeedMph},
		{"barometric_pressure_inhg", &reading.BarometricPressureInhg},
		{"slope_angle_deg", &reading.SlopeAngleDeg},
		{"bench_height_ft", &reading.BenchHeightFt},
		{"joint_spacing_ft", &reading.JointSpacingFt},
		{"joint_orientation_deg", &reading.JointOrientationDeg},
		{"depth_to_water_ft", &reading.DepthToWaterFt},
		{"pore_pressure_psi", &reading.PorePressurePsi},
		{"distance_to_blast_ft", &reading.DistanceToBlastFt},
		{"blast_magnitude_lbs", &reading.BlastMagnitudeLbs},
		{"max_seismic_magnitude", &reading.MaxSeismicMagnitude},
		{"displacement_rate_mm_per_day", &reading.DisplacementRateMmPerDay},
		{"cumulative_displacement_mm", &reading.CumulativeDisplacementMm},
		{"tiltmeter_microradians", &reading.TiltmeterMicroradians},
		{"strain_gauge_microstrain", &reading.StrainGaugeMicrostrain},
		{"vibration_ppv_mm_per_s", &reading.VibrationPpvMmPerS},
		{"rockfall_risk_score", &reading.RockfallRiskScore},
	}
	for _, f := range decimalFields {
		if *f.dest, err = row.getDecimal(f.column); err != nil {
			return nil, err
		}
	}

	stringFields := []struct {
		column string
		dest   *string
	}{
		{"shift", &reading.Shift},
		{"sensor_id", &reading.SensorID},
		{"weather_station_id", &reading.WeatherStationID},
		{"sensor_status", &reading.SensorStatus},
		{"data_quality_flag", &reading.DataQualityFlag},
		{"slope_zone", &reading.SlopeZone},
		{"rockfall_size_category", &reading.RockfallSizeCategory},
	}
	for _, f := range stringFields {
		if *f.dest, err = row.getString(f.column); err != nil {
			return nil, err
		}
	}

	// rock_type is the only field normalized beyond trimming
	rockType, err := row.getString("rock_type")
	if err != nil {
		return nil, err
	}
	reading.RockType = strings.ToUpper(rockType)

	occurred, err := row.get("rockfall_occurred")
	if err != nil {
		return nil, err
	}
	reading.RockfallOccurred = safeBool(occurred)

	return reading, nil
}
