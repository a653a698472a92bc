package logic

import (
	"context"
	"time"

	"github.com/Silver0524/MatPredict/internal/models"
	"github.com/Silver0524/MatPredict/internal/store"
)

// RecordSource supplies historical match records and season metadata. The
// Postgres store implements it; tests substitute in-memory fakes.
type RecordSource interface {
	FetchMatches(ctx context.Context, wrestlerID int64, f store.MatchFilter) ([]models.Match, error)
	FetchHeadToHead(ctx context.Context, wrestler1ID, wrestler2ID int64) (*models.HeadToHead, error)
	FetchSeason(ctx context.Context, seasonID int64) (*models.Season, error)
	FetchPreviousSeason(ctx context.Context, startYear int) (*models.Season, error)
}

// FeatureCache stores the most recently computed feature snapshots so the
// compare path can fall back to them when live data is absent. All methods
// are best effort from the caller's point of view.
type FeatureCache interface {
	GetFeatures(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64) (*models.WrestlerFeatures, error)
	SetFeatures(ctx context.Context, f *models.WrestlerFeatures, weightClassID *int64) error
	InvalidateWrestler(ctx context.Context, wrestlerID int64) error
}

// FeatureService computes the full statistical profile for one wrestler.
type FeatureService interface {
	ComputeWrestlerFeatures(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64, referenceTime time.Time) (*models.WrestlerFeatures, error)
}

// Predictor turns a named feature mapping into a normalized win-probability
// pair for (wrestler1, wrestler2).
type Predictor interface {
	Predict(features map[string]float64) (prob1, prob2 float64, err error)
	SchemaVersion() string
}

// PredictionService produces matchup forecasts and comparisons.
type PredictionService interface {
	Predict(ctx context.Context, req *models.PredictionRequest) (*models.PredictionResponse, error)
	Compare(ctx context.Context, wrestler1ID, wrestler2ID int64, seasonID *int64) (*models.ComparisonResponse, error)
}
