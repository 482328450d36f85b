package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/minesight/rockfall-backend-go/internal/models"
)

// Artifact file names, relative to the model directory
const (
	ForestFile  = "rf_risk_model.json"
	ScalerFile  = "rf_scaler.json"
	NetworkFile = "dl_risk_model.json"
)

// Predictor evaluates the persisted models for one prediction request.
// Artifacts are reloaded from disk on every call; there is no cross-request
// cache. The forest and scaler are required, the network is best-effort.
type Predictor struct {
	modelDir string
	logger   *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPredictor creates a predictor reading artifacts from modelDir
func NewPredictor(modelDir string, rng *rand.Rand, logger *zap.Logger) *Predictor {
	return &Predictor{
		modelDir: modelDir,
		logger:   logger,
		rng:      rng,
	}
}

// Predict scores one request with both models. A forest or scaler load
// failure fails the request; a network failure falls back to a jittered
// copy of the forest score.
func (p *Predictor) Predict(req models.PredictionRequest) (models.PredictionResponse, error) {
	var forest TreeEnsemble
	if err := p.loadArtifact(ForestFile, &forest); err != nil {
		return models.PredictionResponse{}, err
	}
	if err := forest.Validate(NumFeatures); err != nil {
		return models.PredictionResponse{}, fmt.Errorf("invalid forest model: %w", err)
	}

	var scaler StandardScaler
	if err := p.loadArtifact(ScalerFile, &scaler); err != nil {
		return models.PredictionResponse{}, err
	}
	if err := scaler.Validate(NumFeatures); err != nil {
		return models.PredictionResponse{}, fmt.Errorf("invalid scaler: %w", err)
	}

	p.mu.Lock()
	features := BuildFeatureVector(req, p.rng)
	jitter := 0.90 + p.rng.Float64()*0.15
	p.mu.Unlock()

	scaled := scaler.Transform(features)

	rfPrediction := clamp(forest.Predict(scaled), 0, 100)
	dlPrediction := p.networkScore(scaled, rfPrediction, jitter)

	return models.PredictionResponse{
		RFPrediction: round2(rfPrediction),
		DLPrediction: round2(dlPrediction),
	}, nil
}

// networkScore evaluates the network, replacing out-of-range raw outputs with
// 95% of the forest score and falling back to a jittered forest score when the
// network cannot be loaded or evaluated.
func (p *Predictor) networkScore(scaled []float64, rfPrediction, jitter float64) float64 {
	var network Network
	if err := p.loadArtifact(NetworkFile, &network); err != nil {
		p.logger.Warn("network model unavailable, using forest fallback", zap.Error(err))
		return clamp(rfPrediction*jitter, 0, 100)
	}
	if err := network.Validate(NumFeatures); err != nil {
		p.logger.Warn("network model invalid, using forest fallback", zap.Error(err))
		return clamp(rfPrediction*jitter, 0, 100)
	}

	raw := network.Forward(scaled)
	if raw > 100 {
		// Large raw outputs are discarded in favor of 95% of the forest score
		return rfPrediction * 0.95
	}
	return clamp(raw, 0, 100)
}

func (p *Predictor) loadArtifact(name string, dest interface{}) error {
	path := filepath.Join(p.modelDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load model artifact %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode model artifact %s: %w", name, err)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
