package ml

import "fmt"

// StandardScaler standardizes a feature vector using the mean and scale
// fitted offline by the training pipeline.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Validate checks the scaler matches the expected feature count
func (s *StandardScaler) Validate(numFeatures int) error {
	if len(s.Mean) != numFeatures || len(s.Scale) != numFeatures {
		return fmt.Errorf("scaler dimensions %d/%d do not match %d features",
			len(s.Mean), len(s.Scale), numFeatures)
	}
	return nil
}

// Transform returns the standardized copy of features
func (s *StandardScaler) Transform(features []float64) []float64 {
	scaled := make([]float64, len(features))
	for i, v := range features {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		scaled[i] = (v - s.Mean[i]) / scale
	}
	return scaled
}
