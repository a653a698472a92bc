package ml

import "fmt"

// FeatureSchema is the versioned input contract of one trained model: the
// exact ordered list of feature names the model expects as columns. It ships
// inside the model artifact and is never inferred from a feature mapping's
// own ordering.
type FeatureSchema struct {
	Version string   `json:"schema_version"`
	Names   []string `json:"features"`
}

// MissingFeatureError reports a contract mismatch: a feature the schema
// requires is absent from the computed feature set. This means the aggregator
// and the model have drifted apart, so binding hard-stops instead of
// defaulting the value.
type MissingFeatureError struct {
	Name string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("feature %q required by model schema is missing from the computed feature set", e.Name)
}

// Bind converts a named feature mapping into a vector in contract order.
func (s *FeatureSchema) Bind(features map[string]float64) ([]float64, error) {
	vector := make([]float64, len(s.Names))
	for i, name := range s.Names {
		v, ok := features[name]
		if !ok {
			return nil, &MissingFeatureError{Name: name}
		}
		vector[i] = v
	}
	return vector, nil
}
