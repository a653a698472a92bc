package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrModelUnavailable wraps every failure to locate, read or validate a model
// artifact. It is fatal at process initialization; there is no request-time
// fallback.
var ErrModelUnavailable = errors.New("model artifact unavailable")

// Model is a trained classifier scoring a bound feature vector. The scalar
// output is treated as wrestler1's win probability.
type Model interface {
	Predict(x []float64) float64
}

// ProbabilityModel additionally exposes class probabilities. Index 1 is the
// "wrestler1 wins" class, matching the label encoding used in training.
type ProbabilityModel interface {
	Model
	PredictProba(x []float64) [2]float64
}

// Artifact is the on-disk representation of one trained model: the versioned
// feature schema plus the parameters of a supported model kind.
type Artifact struct {
	FeatureSchema
	ModelType string    `json:"model_type"`
	Intercept float64   `json:"intercept"`
	Weights   []float64 `json:"weights"`
}

// LoadArtifact reads and validates a model artifact from disk. All failure
// modes wrap ErrModelUnavailable.
func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrModelUnavailable, path, err)
	}
	var a Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrModelUnavailable, path, err)
	}
	if len(a.Names) == 0 {
		return nil, fmt.Errorf("%w: %s declares no features", ErrModelUnavailable, path)
	}
	if len(a.Weights) != len(a.Names) {
		return nil, fmt.Errorf("%w: %s has %d weights for %d features", ErrModelUnavailable, path, len(a.Weights), len(a.Names))
	}
	switch a.ModelType {
	case "logistic", "linear":
	default:
		return nil, fmt.Errorf("%w: %s has unsupported model type %q", ErrModelUnavailable, path, a.ModelType)
	}
	return &a, nil
}

// Build instantiates the model the artifact describes.
func (a *Artifact) Build() Model {
	switch a.ModelType {
	case "logistic":
		return &LogisticModel{Weights: a.Weights, Intercept: a.Intercept}
	default:
		return &LinearModel{Weights: a.Weights, Intercept: a.Intercept}
	}
}

// LogisticModel is a binary logistic regression classifier.
type LogisticModel struct {
	Weights   []float64
	Intercept float64
}

func (m *LogisticModel) Predict(x []float64) float64 {
	p := m.PredictProba(x)
	return p[1]
}

// PredictProba returns (P(class 0), P(class 1)) where class 1 means wrestler1
// wins.
func (m *LogisticModel) PredictProba(x []float64) [2]float64 {
	p := sigmoid(dot(m.Weights, x) + m.Intercept)
	return [2]float64{1 - p, p}
}

// LinearModel is a point-prediction regressor without class probabilities.
// Its score is clamped to [0, 1] by the predictor.
type LinearModel struct {
	Weights   []float64
	Intercept float64
}

func (m *LinearModel) Predict(x []float64) float64 {
	return dot(m.Weights, x) + m.Intercept
}

func dot(w, x []float64) float64 {
	var sum float64
	for i := range w {
		sum += w[i] * x[i]
	}
	return sum
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
