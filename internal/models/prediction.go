package models

// PredictionRequest is the partial payload of POST /predict-risk/.
// Omitted fields fall back to fixed defaults (0, 0, 65, 0).
type PredictionRequest struct {
	DisplacementRateMmPerDay *float64 `json:"displacement_rate_mm_per_day"`
	MicroseismicEventsDaily  *float64 `json:"microseismic_events_daily"`
	TemperatureF             *float64 `json:"temperature_f"`
	PrecipitationIn          *float64 `json:"precipitation_in"`
}

// PredictionResponse carries both model scores, each rounded to two decimals
// and clamped into [0, 100]. No blended score is computed.
type PredictionResponse struct {
	RFPrediction float64 `json:"rf_prediction"`
	DLPrediction float64 `json:"dl_prediction"`
}
