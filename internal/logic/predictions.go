package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Silver0524/MatPredict/internal/models"
	"github.com/Silver0524/MatPredict/internal/store"
)

var (
	predictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matpredict_predictions_total",
		Help: "Total number of matchup predictions served",
	})

	predictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matpredict_prediction_duration_seconds",
		Help:    "End-to-end duration of one prediction request",
		Buckets: prometheus.DefBuckets,
	})
)

type predictionService struct {
	src       RecordSource
	features  FeatureService
	cache     FeatureCache
	predictor Predictor
	logger    *zap.SugaredLogger
}

func NewPredictionService(src RecordSource, features FeatureService, cache FeatureCache, predictor Predictor, logger *zap.Logger) PredictionService {
	return &predictionService{
		src:       src,
		features:  features,
		cache:     cache,
		predictor: predictor,
		logger:    logger.Sugar(),
	}
}

// Predict computes both wrestlers' live features in parallel, composes the
// matchup feature set with the pair's head-to-head record, and runs the
// bound model. Live snapshots are cached write-through; a wrestler whose
// live history is gone is served from the last snapshot instead, and the
// request fails only when neither exists.
func (s *predictionService) Predict(ctx context.Context, req *models.PredictionRequest) (*models.PredictionResponse, error) {
	start := time.Now()
	defer func() {
		predictionDuration.Observe(time.Since(start).Seconds())
	}()

	referenceTime := time.Now()

	var (
		f1, f2 *models.WrestlerFeatures
		h2h    *models.HeadToHead
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		f1, _, err = s.featuresWithFallback(gctx, req.Wrestler1ID, req.SeasonID, req.WeightClassID, referenceTime)
		return err
	})
	g.Go(func() error {
		var err error
		f2, _, err = s.featuresWithFallback(gctx, req.Wrestler2ID, req.SeasonID, req.WeightClassID, referenceTime)
		return err
	})
	g.Go(func() error {
		var err error
		h2h, err = s.src.FetchHeadToHead(gctx, req.Wrestler1ID, req.Wrestler2ID)
		if err != nil {
			return fmt.Errorf("head-to-head: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	composed := ComposeMatchupFeatures(f1, f2, h2h)
	prob1, prob2, err := s.predictor.Predict(composed)
	if err != nil {
		return nil, err
	}

	winnerID := req.Wrestler1ID
	confidence := prob1
	if prob2 > prob1 {
		winnerID = req.Wrestler2ID
		confidence = prob2
	}

	predictionsTotal.Inc()

	return &models.PredictionResponse{
		Wrestler1ID:       req.Wrestler1ID,
		Wrestler2ID:       req.Wrestler2ID,
		Wrestler1WinProb:  prob1,
		Wrestler2WinProb:  prob2,
		PredictedWinnerID: winnerID,
		Confidence:        confidence,
		HeadToHead:        h2h,
		Features:          models.FeatureBreakdown{Wrestler1: f1, Wrestler2: f2},
		SchemaVersion:     s.predictor.SchemaVersion(),
		GeneratedAt:       referenceTime,
	}, nil
}

// Compare returns both wrestlers' live feature profiles side by side with a
// differential block. When live computation fails because the store has no
// data for a wrestler, the last cached snapshot is served instead and the
// response is marked stale; any other failure propagates untouched.
func (s *predictionService) Compare(ctx context.Context, wrestler1ID, wrestler2ID int64, seasonID *int64) (*models.ComparisonResponse, error) {
	referenceTime := time.Now()

	f1, stale1, err := s.featuresWithFallback(ctx, wrestler1ID, seasonID, nil, referenceTime)
	if err != nil {
		return nil, err
	}
	f2, stale2, err := s.featuresWithFallback(ctx, wrestler2ID, seasonID, nil, referenceTime)
	if err != nil {
		return nil, err
	}

	h2h, err := s.src.FetchHeadToHead(ctx, wrestler1ID, wrestler2ID)
	if err != nil {
		return nil, fmt.Errorf("head-to-head: %w", err)
	}

	return &models.ComparisonResponse{
		Features:   models.FeatureBreakdown{Wrestler1: f1, Wrestler2: f2},
		HeadToHead: h2h,
		Comparison: &models.Comparison{
			WinRateDiff:       f1.SeasonWinRate - f2.SeasonWinRate,
			ExperienceDiff:    f1.Experience - f2.Experience,
			StreakDiff:        f1.Streak - f2.Streak,
			FormDiffLast5:     f1.WinRateLast5 - f2.WinRateLast5,
			FormDiffLast10:    f1.WinRateLast10 - f2.WinRateLast10,
			ScoringDiffLast5:  f1.AvgPointDiffLast5 - f2.AvgPointDiffLast5,
			ScoringDiffLast10: f1.AvgPointDiffLast10 - f2.AvgPointDiffLast10,
		},
		Stale: stale1 || stale2,
	}, nil
}

func (s *predictionService) featuresWithFallback(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64, referenceTime time.Time) (*models.WrestlerFeatures, bool, error) {
	live, err := s.features.ComputeWrestlerFeatures(ctx, wrestlerID, seasonID, weightClassID, referenceTime)
	if err == nil {
		s.cacheSnapshot(ctx, live, weightClassID)
		return live, false, nil
	}
	if !errors.Is(err, store.ErrNoData) || s.cache == nil {
		return nil, false, fmt.Errorf("wrestler %d features: %w", wrestlerID, err)
	}

	cached, cacheErr := s.cache.GetFeatures(ctx, wrestlerID, seasonID, weightClassID)
	if cacheErr != nil || cached == nil {
		// No snapshot to fall back on; surface the original gap.
		return nil, false, fmt.Errorf("wrestler %d features: %w", wrestlerID, err)
	}
	s.logger.Warnw("Serving cached feature snapshot", "wrestlerID", wrestlerID, "error", err)
	return cached, true, nil
}

func (s *predictionService) cacheSnapshot(ctx context.Context, f *models.WrestlerFeatures, weightClassID *int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetFeatures(ctx, f, weightClassID); err != nil {
		s.logger.Warnw("Failed to cache feature snapshot", "wrestlerID", f.WrestlerID, "error", err)
	}
}
