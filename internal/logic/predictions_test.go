package logic

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Silver0524/MatPredict/internal/models"
	"github.com/Silver0524/MatPredict/internal/store"
)

func TestPredict(t *testing.T) {
	tests := []struct {
		name       string
		prob1      float64
		prob2      float64
		wantWinner int64
		wantConf   float64
	}{
		{
			name:       "Wrestler1Favored",
			prob1:      0.72,
			prob2:      0.28,
			wantWinner: 1,
			wantConf:   0.72,
		},
		{
			name:       "Wrestler2Favored",
			prob1:      0.31,
			prob2:      0.69,
			wantWinner: 2,
			wantConf:   0.69,
		},
		{
			name:       "DeadEvenGoesToWrestler1",
			prob1:      0.5,
			prob2:      0.5,
			wantWinner: 1,
			wantConf:   0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &MockRecordSource{
				FetchHeadToHeadFunc: func(ctx context.Context, w1, w2 int64) (*models.HeadToHead, error) {
					return &models.HeadToHead{Wrestler1ID: w1, Wrestler2ID: w2, TotalMatches: 2, Wins1: 1, Wins2: 1}, nil
				},
			}
			cache := &MockFeatureCache{}
			predictor := &MockPredictor{
				PredictFunc: func(features map[string]float64) (float64, float64, error) {
					return tt.prob1, tt.prob2, nil
				},
				Version: "2024.1",
			}

			svc := NewPredictionService(src, &MockFeatureService{}, cache, predictor, zap.NewNop())
			resp, err := svc.Predict(context.Background(), &models.PredictionRequest{Wrestler1ID: 1, Wrestler2ID: 2})
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}

			if resp.PredictedWinnerID != tt.wantWinner {
				t.Errorf("PredictedWinnerID = %d, want %d", resp.PredictedWinnerID, tt.wantWinner)
			}
			if !almostEqual(resp.Confidence, tt.wantConf) {
				t.Errorf("Confidence = %v, want %v", resp.Confidence, tt.wantConf)
			}
			if !almostEqual(resp.Wrestler1WinProb, tt.prob1) || !almostEqual(resp.Wrestler2WinProb, tt.prob2) {
				t.Errorf("probabilities = (%v, %v), want (%v, %v)",
					resp.Wrestler1WinProb, resp.Wrestler2WinProb, tt.prob1, tt.prob2)
			}
			if resp.SchemaVersion != "2024.1" {
				t.Errorf("SchemaVersion = %q, want 2024.1", resp.SchemaVersion)
			}
			if resp.Features.Wrestler1 == nil || resp.Features.Wrestler2 == nil {
				t.Error("feature breakdown missing a side")
			}
			// Both snapshots cached write-through.
			if len(cache.SetCalls) != 2 {
				t.Errorf("cache writes = %d, want 2", len(cache.SetCalls))
			}
		})
	}
}

func TestPredictFeatureFailurePropagates(t *testing.T) {
	boom := errors.New("pg down")
	features := &MockFeatureService{
		ComputeWrestlerFeaturesFunc: func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64, referenceTime time.Time) (*models.WrestlerFeatures, error) {
			if wrestlerID == 2 {
				return nil, boom
			}
			return &models.WrestlerFeatures{WrestlerID: wrestlerID}, nil
		},
	}

	svc := NewPredictionService(&MockRecordSource{}, features, &MockFeatureCache{}, &MockPredictor{}, zap.NewNop())
	_, err := svc.Predict(context.Background(), &models.PredictionRequest{Wrestler1ID: 1, Wrestler2ID: 2})
	if !errors.Is(err, boom) {
		t.Errorf("Predict() error = %v, want wrapped %v", err, boom)
	}
}

func TestPredictCacheFailureIsNonFatal(t *testing.T) {
	cache := &MockFeatureCache{
		SetFeaturesFunc: func(ctx context.Context, f *models.WrestlerFeatures, weightClassID *int64) error {
			return errors.New("redis down")
		},
	}
	svc := NewPredictionService(&MockRecordSource{}, &MockFeatureService{}, cache, &MockPredictor{}, zap.NewNop())
	if _, err := svc.Predict(context.Background(), &models.PredictionRequest{Wrestler1ID: 1, Wrestler2ID: 2}); err != nil {
		t.Fatalf("Predict() error = %v, want nil", err)
	}
}

func TestPredictServesSnapshotForUnrecordedWrestler(t *testing.T) {
	features := &MockFeatureService{
		ComputeWrestlerFeaturesFunc: func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64, referenceTime time.Time) (*models.WrestlerFeatures, error) {
			if wrestlerID == 2 {
				return nil, fmtNoData()
			}
			return &models.WrestlerFeatures{WrestlerID: wrestlerID}, nil
		},
	}
	cache := &MockFeatureCache{
		GetFeaturesFunc: func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64) (*models.WrestlerFeatures, error) {
			return &models.WrestlerFeatures{WrestlerID: wrestlerID, CareerMatches: 12}, nil
		},
	}

	svc := NewPredictionService(&MockRecordSource{}, features, cache, &MockPredictor{}, zap.NewNop())
	resp, err := svc.Predict(context.Background(), &models.PredictionRequest{Wrestler1ID: 1, Wrestler2ID: 2})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if resp.Features.Wrestler2 == nil || resp.Features.Wrestler2.CareerMatches != 12 {
		t.Errorf("wrestler2 features = %+v, want cached snapshot", resp.Features.Wrestler2)
	}
}

func TestCompare(t *testing.T) {
	features := &MockFeatureService{
		ComputeWrestlerFeaturesFunc: func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64, referenceTime time.Time) (*models.WrestlerFeatures, error) {
			if wrestlerID == 1 {
				return &models.WrestlerFeatures{
					WrestlerID:    1,
					SeasonWinRate: 0.9,
					Experience:    50,
					Streak:        4,
					WinRateLast5:  0.8,
				}, nil
			}
			return &models.WrestlerFeatures{
				WrestlerID:    2,
				SeasonWinRate: 0.6,
				Experience:    30,
				Streak:        -2,
				WinRateLast5:  0.4,
			}, nil
		},
	}

	svc := NewPredictionService(&MockRecordSource{}, features, &MockFeatureCache{}, &MockPredictor{}, zap.NewNop())
	resp, err := svc.Compare(context.Background(), 1, 2, nil)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if resp.Stale {
		t.Error("Stale = true for live computation")
	}
	if !almostEqual(resp.Comparison.WinRateDiff, 0.3) {
		t.Errorf("WinRateDiff = %v, want 0.3", resp.Comparison.WinRateDiff)
	}
	if resp.Comparison.ExperienceDiff != 20 {
		t.Errorf("ExperienceDiff = %d, want 20", resp.Comparison.ExperienceDiff)
	}
	if resp.Comparison.StreakDiff != 6 {
		t.Errorf("StreakDiff = %d, want 6", resp.Comparison.StreakDiff)
	}
	if !almostEqual(resp.Comparison.FormDiffLast5, 0.4) {
		t.Errorf("FormDiffLast5 = %v, want 0.4", resp.Comparison.FormDiffLast5)
	}
}

func TestCompareFallsBackToCachedSnapshot(t *testing.T) {
	noData := fmtNoData()
	features := &MockFeatureService{
		ComputeWrestlerFeaturesFunc: func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64, referenceTime time.Time) (*models.WrestlerFeatures, error) {
			if wrestlerID == 2 {
				return nil, noData
			}
			return &models.WrestlerFeatures{WrestlerID: wrestlerID}, nil
		},
	}
	cache := &MockFeatureCache{
		GetFeaturesFunc: func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64) (*models.WrestlerFeatures, error) {
			return &models.WrestlerFeatures{WrestlerID: wrestlerID, SeasonWinRate: 0.55}, nil
		},
	}

	svc := NewPredictionService(&MockRecordSource{}, features, cache, &MockPredictor{}, zap.NewNop())
	resp, err := svc.Compare(context.Background(), 1, 2, nil)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if !resp.Stale {
		t.Error("Stale = false, want true when serving a cached snapshot")
	}
	if resp.Features.Wrestler2 == nil || !almostEqual(resp.Features.Wrestler2.SeasonWinRate, 0.55) {
		t.Errorf("wrestler2 features = %+v, want cached snapshot", resp.Features.Wrestler2)
	}
}

func TestCompareServesSnapshotForUnrecordedWrestler(t *testing.T) {
	// The real store returns an empty slice, not an error, for a wrestler
	// with no rows; the fallback has to trigger off the aggregator's gap.
	src := &MockRecordSource{
		FetchMatchesFunc: func(ctx context.Context, wrestlerID int64, f store.MatchFilter) ([]models.Match, error) {
			return nil, nil
		},
	}
	features := NewFeatureService(src, zap.NewNop())

	cacheReads := 0
	cache := &MockFeatureCache{
		GetFeaturesFunc: func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64) (*models.WrestlerFeatures, error) {
			cacheReads++
			return &models.WrestlerFeatures{WrestlerID: wrestlerID, CareerMatches: 12, SeasonWinRate: 0.55}, nil
		},
	}

	svc := NewPredictionService(src, features, cache, &MockPredictor{}, zap.NewNop())
	resp, err := svc.Compare(context.Background(), 1, 2, nil)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if !resp.Stale {
		t.Error("Stale = false, want true when both sides come from snapshots")
	}
	if cacheReads != 2 {
		t.Errorf("cache reads = %d, want 2", cacheReads)
	}
	if resp.Features.Wrestler1 == nil || resp.Features.Wrestler1.CareerMatches != 12 {
		t.Errorf("wrestler1 features = %+v, want cached snapshot", resp.Features.Wrestler1)
	}
}

func TestCompareInfrastructureErrorDoesNotFallBack(t *testing.T) {
	boom := errors.New("pg down")
	features := &MockFeatureService{
		ComputeWrestlerFeaturesFunc: func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64, referenceTime time.Time) (*models.WrestlerFeatures, error) {
			return nil, boom
		},
	}
	cacheQueried := false
	cache := &MockFeatureCache{
		GetFeaturesFunc: func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64) (*models.WrestlerFeatures, error) {
			cacheQueried = true
			return &models.WrestlerFeatures{WrestlerID: wrestlerID}, nil
		},
	}

	svc := NewPredictionService(&MockRecordSource{}, features, cache, &MockPredictor{}, zap.NewNop())
	_, err := svc.Compare(context.Background(), 1, 2, nil)
	if !errors.Is(err, boom) {
		t.Errorf("Compare() error = %v, want wrapped %v", err, boom)
	}
	if cacheQueried {
		t.Error("cache consulted on an infrastructure failure")
	}
}

func TestCompareNoDataAndNoSnapshot(t *testing.T) {
	features := &MockFeatureService{
		ComputeWrestlerFeaturesFunc: func(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64, referenceTime time.Time) (*models.WrestlerFeatures, error) {
			return nil, fmtNoData()
		},
	}
	svc := NewPredictionService(&MockRecordSource{}, features, &MockFeatureCache{}, &MockPredictor{}, zap.NewNop())
	_, err := svc.Compare(context.Background(), 1, 2, nil)
	if !errors.Is(err, store.ErrNoData) {
		t.Errorf("Compare() error = %v, want %v", err, store.ErrNoData)
	}
}

// fmtNoData wraps ErrNoData the way the feature service surfaces it.
func fmtNoData() error {
	return fmt.Errorf("wrestler 2 has no recorded matches: %w", store.ErrNoData)
}
