package ingest

import (
	"strings"
	"testing"
	"time"
)

// baseRowValues is a complete, well-formed CSV row keyed by column name
func baseRowValues() map[string]string {
	return map[string]string{
		"timestamp":                    "2024-03-15 08:30:00",
		"year":                         "2024",
		"month":                        "3",
		"day_of_year":                  "75",
		"hour":                         "8",
		"shift":                        "DAY",
		"sensor_id":                    "SENSOR-001",
		"latitude":                     "46.51",
		"longitude":                    "-112.03",
		"elevation_ft":                 "5280",
		"slope_zone":                   "North Wall",
		"rock_type":                    "granite",
		"rock_mass_rating":             "62",
		"weather_station_id":           "WS-01",
		"temperature_f":                "48.2",
		"precipitation_in":             "0.3",
		"humidity_pct":                 "71",
		"wind_speed_mph":               "12.5",
		"barometric_pressure_inhg":     "29.92",
		"slope_angle_deg":              "55",
		"bench_height_ft":              "40",
		"joint_spacing_ft":             "2.5",
		"joint_orientation_deg":        "120",
		"depth_to_water_ft":            "18",
		"pore_pressure_psi":            "22.4",
		"blast_frequency_7days":        "3",
		"distance_to_blast_ft":         "450",
		"blast_magnitude_lbs":          "1200",
		"equipment_passes_per_shift":   "14",
		"microseismic_events_daily":    "5",
		"max_seismic_magnitude":        "1.8",
		"displacement_rate_mm_per_day": "2.1",
		"cumulative_displacement_mm":   "34.6",
		"tiltmeter_microradians":       "180",
		"strain_gauge_microstrain":     "95",
		"vibration_ppv_mm_per_s":       "4.2",
		"rockfall_risk_score":          "63.5",
		"rockfall_occurred":            "false",
		"rockfall_size_category":       "NONE",
		"sensor_status":                "ACTIVE",
		"data_quality_flag":            "GOOD",
	}
}

func rowFromValues(t *testing.T, values map[string]string) Row {
	t.Helper()

	header := make([]string, 0, len(values))
	record := make([]string, 0, len(values))
	for name, value := range values {
		header = append(header, name)
		record = append(record, value)
	}
	return NewRow(2, header, record)
}

func TestParseRowWellFormed(t *testing.T) {
	reading, err := ParseRow(rowFromValues(t, baseRowValues()))
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}

	want := time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
	if !reading.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", reading.Timestamp, want)
	}
	if reading.SensorID != "SENSOR-001" {
		t.Errorf("SensorID = %q, want %q", reading.SensorID, "SENSOR-001")
	}
	if reading.Year != 2024 || reading.Month != 3 || reading.Hour != 8 {
		t.Errorf("date parts = %d/%d/%d, want 2024/3/8", reading.Year, reading.Month, reading.Hour)
	}
	if reading.RockfallRiskScore != 63.5 {
		t.Errorf("RockfallRiskScore = %v, want 63.5", reading.RockfallRiskScore)
	}
	if reading.RockfallOccurred {
		t.Error("RockfallOccurred = true, want false")
	}
	if reading.SlopeZone != "North Wall" {
		t.Errorf("SlopeZone = %q, want %q", reading.SlopeZone, "North Wall")
	}
}

func TestParseRowUppercasesRockType(t *testing.T) {
	values := baseRowValues()
	values["rock_type"] = "  limestone "

	reading, err := ParseRow(rowFromValues(t, values))
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}
	if reading.RockType != "LIMESTONE" {
		t.Errorf("RockType = %q, want %q", reading.RockType, "LIMESTONE")
	}
}

func TestParseRowBlankNumericsBecomeZero(t *testing.T) {
	values := baseRowValues()
	values["rockfall_risk_score"] = ""
	values["pore_pressure_psi"] = "   "
	values["microseismic_events_daily"] = ""

	reading, err := ParseRow(rowFromValues(t, values))
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}
	if reading.RockfallRiskScore != 0 {
		t.Errorf("RockfallRiskScore = %v, want 0", reading.RockfallRiskScore)
	}
	if reading.PorePressurePsi != 0 {
		t.Errorf("PorePressurePsi = %v, want 0", reading.PorePressurePsi)
	}
	if reading.MicroseismicEventsDaily != 0 {
		t.Errorf("MicroseismicEventsDaily = %d, want 0", reading.MicroseismicEventsDaily)
	}
}

func TestParseRowBadTimestampFails(t *testing.T) {
	values := baseRowValues()
	values["timestamp"] = "2024-13-40"

	if _, err := ParseRow(rowFromValues(t, values)); err == nil {
		t.Fatal("ParseRow succeeded with invalid timestamp, want error")
	}
}

func TestParseRowBadDecimalFails(t *testing.T) {
	values := baseRowValues()
	values["slope_angle_deg"] = "steep"

	if _, err := ParseRow(rowFromValues(t, values)); err == nil {
		t.Fatal("ParseRow succeeded with invalid decimal, want error")
	}
}

func TestParseRowMissingColumnFails(t *testing.T) {
	values := baseRowValues()
	delete(values, "sensor_id")

	_, err := ParseRow(rowFromValues(t, values))
	if err == nil {
		t.Fatal("ParseRow succeeded with missing column, want error")
	}
	if !strings.Contains(err.Error(), "Missing column 'sensor_id'") {
		t.Errorf("error = %q, want it to name the missing column", err)
	}
}

func TestNewRowShortRecord(t *testing.T) {
	header := []string{"timestamp", "sensor_id", "slope_zone"}
	record := []string{"2024-03-15"}

	row := NewRow(2, header, record)
	if _, err := row.get("timestamp"); err != nil {
		t.Errorf("present column errored: %v", err)
	}
	if _, err := row.get("slope_zone"); err == nil {
		t.Error("truncated column returned no error")
	}
}
