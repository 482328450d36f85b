package models

import "time"

// SensorReading represents a single rockfall-risk observation from one sensor
type SensorReading struct {
	ID int64 `json:"id" db:"id"`

	// Temporal fields. year/month/day_of_year/hour/shift arrive as independent
	// input and are stored as given, never recomputed from timestamp.
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Year      int       `json:"year" db:"year"`
	Month     int       `json:"month" db:"month"`
	DayOfYear int       `json:"day_of_year" db:"day_of_year"`
	Hour      int       `json:"hour" db:"hour"`
	Shift     string    `json:"shift" db:"shift"`

	// Sensor identity and location
	SensorID    string  `json:"sensor_id" db:"sensor_id"`
	Latitude    float64 `json:"latitude" db:"latitude"`
	Longitude   float64 `json:"longitude" db:"longitude"`
	ElevationFt float64 `json:"elevation_ft" db:"elevation_ft"`

	// Metadata
	WeatherStationID string `json:"weather_station_id" db:"weather_station_id"`
	SensorStatus     string `json:"sensor_status" db:"sensor_status"`
	DataQualityFlag  string `json:"data_quality_flag" db:"data_quality_flag"`

	// Weather
	TemperatureF           float64 `json:"temperature_f" db:"temperature_f"`
	PrecipitationIn        float64 `json:"precipitation_in" db:"precipitation_in"`
	HumidityPct            float64 `json:"humidity_pct" db:"humidity_pct"`
	WindSpeedMph           float64 `json:"wind_speed_mph" db:"wind_speed_mph"`
	BarometricPressureInhg float64 `json:"barometric_pressure_inhg" db:"barometric_pressure_inhg"`

	// Slope geometry
	SlopeZone     string  `json:"slope_zone" db:"slope_zone"`
	SlopeAngleDeg float64 `json:"slope_angle_deg" db:"slope_angle_deg"`
	BenchHeightFt float64 `json:"bench_height_ft" db:"bench_height_ft"`

	// Rock mechanics
	RockType            string  `json:"rock_type" db:"rock_type"`
	RockMassRating      int     `json:"rock_mass_rating" db:"rock_mass_rating"`
	JointSpacingFt      float64 `json:"joint_spacing_ft" db:"joint_spacing_ft"`
	JointOrientationDeg float64 `json:"joint_orientation_deg" db:"joint_orientation_deg"`

	// Hydrogeology
	DepthToWaterFt  float64 `json:"depth_to_water_ft" db:"depth_to_water_ft"`
	PorePressurePsi float64 `json:"pore_pressure_psi" db:"pore_pressure_psi"`

	// Blast activity
	BlastFrequency7Days int     `json:"blast_frequency_7days" db:"blast_frequency_7days"`
	DistanceToBlastFt   float64 `json:"distance_to_blast_ft" db:"distance_to_blast_ft"`
	BlastMagnitudeLbs   float64 `json:"blast_magnitude_lbs" db:"blast_magnitude_lbs"`

	// Equipment usage
	EquipmentPassesPerShift int `json:"equipment_passes_per_shift" db:"equipment_passes_per_shift"`

	// Seismic activity
	MicroseismicEventsDaily int     `json:"microseismic_events_daily" db:"microseismic_events_daily"`
	MaxSeismicMagnitude     float64 `json:"max_seismic_magnitude" db:"max_seismic_magnitude"`

	// Deformation / displacement
	DisplacementRateMmPerDay float64 `json:"displacement_rate_mm_per_day" db:"displacement_rate_mm_per_day"`
	CumulativeDisplacementMm float64 `json:"cumulative_displacement_mm" db:"cumulative_displacement_mm"`
	TiltmeterMicroradians    float64 `json:"tiltmeter_microradians" db:"tiltmeter_microradians"`
	StrainGaugeMicrostrain   float64 `json:"strain_gauge_microstrain" db:"strain_gauge_microstrain"`
	VibrationPpvMmPerS       float64 `json:"vibration_ppv_mm_per_s" db:"vibration_ppv_mm_per_s"`

	// Risk outputs
	RockfallRiskScore    float64 `json:"rockfall_risk_score" db:"rockfall_risk_score"`
	RockfallOccurred     bool    `json:"rockfall_occurred" db:"rockfall_occurred"`
	RockfallSizeCategory string  `json:"rockfall_size_category" db:"rockfall_size_category"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SensorReadingsResponse represents a paginated response of sensor readings
type SensorReadingsResponse struct {
	Data       []SensorReading `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// SensorReadingFilter represents filter parameters for querying sensor readings
type SensorReadingFilter struct {
	SensorID         string  `form:"sensor_id"`
	SlopeZone        string  `form:"slope_zone"`
	StartTime        string  `form:"start_time"` // RFC3339 or "2006-01-02 15:04:05"
	EndTime          string  `form:"end_time"`
	MinRiskScore     float64 `form:"min_risk_score"`
	RockfallOccurred *bool   `form:"rockfall_occurred"`
	Page             int     `form:"page"`
	PageSize         int     `form:"pageSize"`
}

// SensorStatus constants
const (
	SensorStatusActive      = "ACTIVE"
	SensorStatusMaintenance = "MAINTENANCE"
	SensorStatusOffline     = "OFFLINE"
)

// DataQuality constants
const (
	DataQualityGood    = "GOOD"
	DataQualitySuspect = "SUSPECT"
	DataQualityBad     = "BAD"
)
