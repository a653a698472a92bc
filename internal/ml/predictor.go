package ml

import (
	"go.uber.org/zap"
)

// Predictor binds feature mappings against a loaded model's schema and
// normalizes the model output into a two-class probability pair. It is
// constructed once at startup, holds no mutable state afterwards, and is safe
// for concurrent use.
type Predictor struct {
	schema FeatureSchema
	model  Model
	logger *zap.SugaredLogger
}

// NewPredictor loads the model artifact at path. Errors wrap
// ErrModelUnavailable and should abort startup.
func NewPredictor(path string, logger *zap.Logger) (*Predictor, error) {
	artifact, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	logger.Sugar().Infow("Model artifact loaded",
		"path", path,
		"modelType", artifact.ModelType,
		"schemaVersion", artifact.Version,
		"features", len(artifact.Names),
	)
	return &Predictor{
		schema: artifact.FeatureSchema,
		model:  artifact.Build(),
		logger: logger.Sugar(),
	}, nil
}

// NewPredictorFromModel wires an explicit schema and model, bypassing the
// artifact loader. Used by tests with fake models.
func NewPredictorFromModel(schema FeatureSchema, model Model, logger *zap.Logger) *Predictor {
	return &Predictor{schema: schema, model: model, logger: logger.Sugar()}
}

// SchemaVersion identifies the feature contract this predictor is bound to.
func (p *Predictor) SchemaVersion() string {
	return p.schema.Version
}

// Predict binds the feature mapping in schema order, runs the model, and
// returns (prob1, prob2) summing to 1. Models exposing class probabilities
// are used directly with class index 1 mapped to wrestler1; scalar-only
// models have their score clamped to [0, 1] and taken as prob1.
func (p *Predictor) Predict(features map[string]float64) (float64, float64, error) {
	x, err := p.schema.Bind(features)
	if err != nil {
		return 0, 0, err
	}

	var prob1 float64
	if pm, ok := p.model.(ProbabilityModel); ok {
		proba := pm.PredictProba(x)
		prob1 = proba[1]
	} else {
		prob1 = clamp01(p.model.Predict(x))
	}
	return prob1, 1 - prob1, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
