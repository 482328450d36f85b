package ml

import (
	"math/rand"

	"github.com/minesight/rockfall-backend-go/internal/models"
)

// NumFeatures is the fixed feature vector length the models were trained on
const NumFeatures = 39

// Defaults for the four named inputs when omitted from the request
const (
	defaultDisplacementRate   = 0
	defaultMicroseismicEvents = 0
	defaultTemperatureF       = 65
	defaultPrecipitationIn    = 0
)

// placeholderRanges are the uniform fill ranges for indices 4-9. The models
// were trained on more features than the API exposes; the remaining slots are
// populated with plausible values so the vector stays in-distribution.
var placeholderRanges = [6][2]float64{
	{40, 80},
	{0, 15},
	{29, 31},
	{30, 70},
	{30, 80},
	{40, 85},
}

// BuildFeatureVector constructs the 39-element input vector. Indices 0-3 hold
// the named request fields, 4-9 uniform draws, 10-38 scaled-normal noise.
// The rng is injected so tests can fix the seed.
func BuildFeatureVector(req models.PredictionRequest, rng *rand.Rand) []float64 {
	features := make([]float64, NumFeatures)

	features[0] = orDefault(req.DisplacementRateMmPerDay, defaultDisplacementRate)
	features[1] = orDefault(req.MicroseismicEventsDaily, defaultMicroseismicEvents)
	features[2] = orDefault(req.TemperatureF, defaultTemperatureF)
	features[3] = orDefault(req.PrecipitationIn, defaultPrecipitationIn)

	for i, r := range placeholderRanges {
		features[4+i] = r[0] + rng.Float64()*(r[1]-r[0])
	}
	for i := 10; i < NumFeatures; i++ {
		features[i] = rng.NormFloat64() * 0.5
	}

	return features
}

func orDefault(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
