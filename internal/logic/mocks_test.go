package logic

import (
	"context"
	"time"

	"github.com/Silver0524/MatPredict/internal/models"
	"github.com/Silver0524/MatPredict/internal/store"
)

// MockRecordSource
type MockRecordSource struct {
	FetchMatchesFunc        func(ctx context.Context, wrestlerID int64, f store.MatchFilter) ([]models.Match, error)
	FetchHeadToHeadFunc     func(ctx context.Context, wrestler1ID, wrestler2ID int64) (*models.HeadToHead, error)
	FetchSeasonFunc         func(ctx context.Context, seasonID int64) (*models.Season, error)
	FetchPreviousSeasonFunc func(ctx context.Context, startYear int) (*models.Season, error)
}

func (m *MockRecordSource) FetchMatches(ctx context.Context, wrestlerID int64, f store.MatchFilter) ([]models.Match, error) {
	if m.FetchMatchesFunc != nil {
		return m.FetchMatchesFunc(ctx, wrestlerID, f)
	}
	return nil, nil
}

func (m *MockRecordSource) FetchHeadToHead(ctx context.Context, wrestler1ID, wrestler2ID int64) (*models.HeadToHead, error) {
	if m.FetchHeadToHeadFunc != nil {
		return m.FetchHeadToHeadFunc(ctx, wrestler1ID, wrestler2ID)
	}
	return &models.HeadToHead{Wrestler1ID: wrestler1ID, Wrestler2ID: wrestler2ID}, nil
}

func (m *MockRecordSource) FetchSeason(ctx context.Context, seasonID int64) (*models.Season, error) {
	if m.FetchSeasonFunc != nil {
		return m.FetchSeasonFunc(ctx, seasonID)
	}
	return nil, store.ErrNoData
}

func (m *MockRecordSource) FetchPreviousSeason(ctx context.Context, startYear int) (*models.Season, error) {
	if m.FetchPreviousSeasonFunc != nil {
		return m.FetchPreviousSeasonFunc(ctx, startYear)
	}
	return nil, store.ErrNoData
}

// MockFeatureCache
type MockFeatureCache struct {
	GetFeaturesFunc        func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64) (*models.WrestlerFeatures, error)
	SetFeaturesFunc        func(ctx context.Context, f *models.WrestlerFeatures, weightClassID *int64) error
	InvalidateWrestlerFunc func(ctx context.Context, wrestlerID int64) error

	SetCalls []int64
}

func (m *MockFeatureCache) GetFeatures(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64) (*models.WrestlerFeatures, error) {
	if m.GetFeaturesFunc != nil {
		return m.GetFeaturesFunc(ctx, wrestlerID, seasonID, weightClassID)
	}
	return nil, nil
}

func (m *MockFeatureCache) SetFeatures(ctx context.Context, f *models.WrestlerFeatures, weightClassID *int64) error {
	m.SetCalls = append(m.SetCalls, f.WrestlerID)
	if m.SetFeaturesFunc != nil {
		return m.SetFeaturesFunc(ctx, f, weightClassID)
	}
	return nil
}

func (m *MockFeatureCache) InvalidateWrestler(ctx context.Context, wrestlerID int64) error {
	if m.InvalidateWrestlerFunc != nil {
		return m.InvalidateWrestlerFunc(ctx, wrestlerID)
	}
	return nil
}

// MockFeatureService
type MockFeatureService struct {
	ComputeWrestlerFeaturesFunc func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64, referenceTime time.Time) (*models.WrestlerFeatures, error)
}

func (m *MockFeatureService) ComputeWrestlerFeatures(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64, referenceTime time.Time) (*models.WrestlerFeatures, error) {
	if m.ComputeWrestlerFeaturesFunc != nil {
		return m.ComputeWrestlerFeaturesFunc(ctx, wrestlerID, seasonID, weightClassID, referenceTime)
	}
	return &models.WrestlerFeatures{WrestlerID: wrestlerID}, nil
}

// MockPredictor
type MockPredictor struct {
	PredictFunc func(features map[string]float64) (float64, float64, error)
	Version     string
}

func (m *MockPredictor) Predict(features map[string]float64) (float64, float64, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(features)
	}
	return 0.5, 0.5, nil
}

func (m *MockPredictor) SchemaVersion() string {
	if m.Version != "" {
		return m.Version
	}
	return "test"
}
