package handlers

import (
	"context"
	"time"

	"github.com/Silver0524/MatPredict/internal/models"
	"github.com/Silver0524/MatPredict/internal/store"
)

// MockCatalog
type MockCatalog struct {
	GetWrestlerFunc        func(ctx context.Context, wrestlerID int64) (*models.Wrestler, error)
	ListWrestlersFunc      func(ctx context.Context, limit, offset int) ([]models.Wrestler, error)
	SearchWrestlersFunc    func(ctx context.Context, query string) ([]models.Wrestler, error)
	FetchMatchesFunc       func(ctx context.Context, wrestlerID int64, f store.MatchFilter) ([]models.Match, error)
	FetchSeasonFunc        func(ctx context.Context, seasonID int64) (*models.Season, error)
	FetchCurrentSeasonFunc func(ctx context.Context) (*models.Season, error)
	ListSeasonsFunc        func(ctx context.Context) ([]models.Season, error)
	ListWeightClassesFunc  func(ctx context.Context) ([]models.WeightClass, error)
	GetWeightClassFunc     func(ctx context.Context, weightClassID int64) (*models.WeightClass, error)
}

func (m *MockCatalog) GetWrestler(ctx context.Context, wrestlerID int64) (*models.Wrestler, error) {
	if m.GetWrestlerFunc != nil {
		return m.GetWrestlerFunc(ctx, wrestlerID)
	}
	return &models.Wrestler{ID: wrestlerID, Name: "Mock Wrestler"}, nil
}

func (m *MockCatalog) ListWrestlers(ctx context.Context, limit, offset int) ([]models.Wrestler, error) {
	if m.ListWrestlersFunc != nil {
		return m.ListWrestlersFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockCatalog) SearchWrestlers(ctx context.Context, query string) ([]models.Wrestler, error) {
	if m.SearchWrestlersFunc != nil {
		return m.SearchWrestlersFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockCatalog) FetchMatches(ctx context.Context, wrestlerID int64, f store.MatchFilter) ([]models.Match, error) {
	if m.FetchMatchesFunc != nil {
		return m.FetchMatchesFunc(ctx, wrestlerID, f)
	}
	return nil, nil
}

func (m *MockCatalog) FetchSeason(ctx context.Context, seasonID int64) (*models.Season, error) {
	if m.FetchSeasonFunc != nil {
		return m.FetchSeasonFunc(ctx, seasonID)
	}
	return &models.Season{ID: seasonID}, nil
}

func (m *MockCatalog) FetchCurrentSeason(ctx context.Context) (*models.Season, error) {
	if m.FetchCurrentSeasonFunc != nil {
		return m.FetchCurrentSeasonFunc(ctx)
	}
	return nil, store.ErrNoData
}

func (m *MockCatalog) ListSeasons(ctx context.Context) ([]models.Season, error) {
	if m.ListSeasonsFunc != nil {
		return m.ListSeasonsFunc(ctx)
	}
	return nil, nil
}

func (m *MockCatalog) ListWeightClasses(ctx context.Context) ([]models.WeightClass, error) {
	if m.ListWeightClassesFunc != nil {
		return m.ListWeightClassesFunc(ctx)
	}
	return nil, nil
}

func (m *MockCatalog) GetWeightClass(ctx context.Context, weightClassID int64) (*models.WeightClass, error) {
	if m.GetWeightClassFunc != nil {
		return m.GetWeightClassFunc(ctx, weightClassID)
	}
	return &models.WeightClass{ID: weightClassID, Code: "157"}, nil
}

// MockPredictionService
type MockPredictionService struct {
	PredictFunc func(ctx context.Context, req *models.PredictionRequest) (*models.PredictionResponse, error)
	CompareFunc func(ctx context.Context, wrestler1ID, wrestler2ID int64, seasonID *int64) (*models.ComparisonResponse, error)
}

func (m *MockPredictionService) Predict(ctx context.Context, req *models.PredictionRequest) (*models.PredictionResponse, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, req)
	}
	return &models.PredictionResponse{
		Wrestler1ID:       req.Wrestler1ID,
		Wrestler2ID:       req.Wrestler2ID,
		Wrestler1WinProb:  0.5,
		Wrestler2WinProb:  0.5,
		PredictedWinnerID: req.Wrestler1ID,
		Confidence:        0.5,
	}, nil
}

func (m *MockPredictionService) Compare(ctx context.Context, wrestler1ID, wrestler2ID int64, seasonID *int64) (*models.ComparisonResponse, error) {
	if m.CompareFunc != nil {
		return m.CompareFunc(ctx, wrestler1ID, wrestler2ID, seasonID)
	}
	return &models.ComparisonResponse{Comparison: &models.Comparison{}}, nil
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

// MockFeatureSnapshots
type MockFeatureSnapshots struct {
	GetFeaturesFunc func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64) (*models.WrestlerFeatures, error)
}

func (m *MockFeatureSnapshots) GetFeatures(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64) (*models.WrestlerFeatures, error) {
	if m.GetFeaturesFunc != nil {
		return m.GetFeaturesFunc(ctx, wrestlerID, seasonID, weightClassID)
	}
	return nil, nil
}

// MockIngestQueue
type MockIngestQueue struct {
	EnqueueFunc func(record models.MatchUpsert) bool
	Enqueued    []models.MatchUpsert
}

func (m *MockIngestQueue) Enqueue(record models.MatchUpsert) bool {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(record)
	}
	m.Enqueued = append(m.Enqueued, record)
	return true
}

func (m *MockIngestQueue) QueueDepth() int {
	return len(m.Enqueued)
}
