package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/Silver0524/MatPredict/internal/models"
	"github.com/Silver0524/MatPredict/internal/store"
)

var featureComputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "matpredict_feature_compute_duration_seconds",
	Help:    "Duration of per-wrestler feature aggregation",
	Buckets: prometheus.DefBuckets,
})

// activityWindowDays is the trailing window for the matches-per-week rate.
const activityWindowDays = 30

type featureService struct {
	src    RecordSource
	logger *zap.SugaredLogger
}

func NewFeatureService(src RecordSource, logger *zap.Logger) FeatureService {
	return &featureService{src: src, logger: logger.Sugar()}
}

// ComputeWrestlerFeatures derives the full feature profile for one wrestler
// as of referenceTime. The recency windows (last 3/5/10/15 and the streak
// block) come from a single season-scoped fetch of the 20 most recent
// matches; career, season, activity and rest metrics use their own slices.
// Gaps within a recorded history resolve to the calculators' defaults; a
// wrestler with no career matches at all surfaces store.ErrNoData so callers
// can fall back to a cached snapshot.
func (s *featureService) ComputeWrestlerFeatures(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64, referenceTime time.Time) (*models.WrestlerFeatures, error) {
	start := time.Now()
	defer func() {
		featureComputeDuration.Observe(time.Since(start).Seconds())
	}()

	recent, err := s.src.FetchMatches(ctx, wrestlerID, store.MatchFilter{SeasonID: seasonID, Limit: streakWindow})
	if err != nil {
		return nil, fmt.Errorf("recent matches: %w", err)
	}
	career, err := s.src.FetchMatches(ctx, wrestlerID, store.MatchFilter{})
	if err != nil {
		return nil, fmt.Errorf("career matches: %w", err)
	}
	if len(career) == 0 {
		return nil, fmt.Errorf("wrestler %d has no recorded matches: %w", wrestlerID, store.ErrNoData)
	}

	var seasonMatches []models.Match
	if seasonID != nil {
		seasonMatches, err = s.src.FetchMatches(ctx, wrestlerID, store.MatchFilter{SeasonID: seasonID})
		if err != nil {
			return nil, fmt.Errorf("season matches: %w", err)
		}
	}

	prevSeasonRate, err := s.previousSeasonWinRate(ctx, wrestlerID, seasonID)
	if err != nil {
		return nil, err
	}

	lastBefore, err := s.src.FetchMatches(ctx, wrestlerID, store.MatchFilter{Limit: 1, Before: referenceTime})
	if err != nil {
		return nil, fmt.Errorf("last match: %w", err)
	}
	windowMatches, err := s.src.FetchMatches(ctx, wrestlerID, store.MatchFilter{
		Since:  referenceTime.AddDate(0, 0, -activityWindowDays),
		Before: referenceTime,
	})
	if err != nil {
		return nil, fmt.Errorf("activity window: %w", err)
	}

	last3 := takeN(recent, 3)
	last5 := takeN(recent, 5)
	last10 := takeN(recent, 10)
	last15 := takeN(recent, 15)

	// Format and weight-class splits are season-scoped when a season is
	// requested, career-wide otherwise.
	splitBase := career
	if seasonID != nil {
		splitBase = seasonMatches
	}
	dual, tournament := SplitByFormat(splitBase)
	dualWins, _ := WinLoss(dual, wrestlerID)
	tournWins, _ := WinLoss(tournament, wrestlerID)

	careerWins, careerLosses := WinLoss(career, wrestlerID)
	seasonWins, _ := WinLoss(seasonMatches, wrestlerID)
	pinRate, techRate, majorRate := ResultTypeRates(splitBase, wrestlerID)

	f := &models.WrestlerFeatures{
		WrestlerID: wrestlerID,
		SeasonID:   seasonID,

		CareerWins:        careerWins,
		CareerLosses:      careerLosses,
		CareerMatches:     len(career),
		SeasonWins:        seasonWins,
		SeasonMatches:     len(seasonMatches),
		SeasonWinRate:     WinRate(seasonMatches, wrestlerID),
		PrevSeasonWinRate: prevSeasonRate,
		Experience:        len(career),

		WinRateLast3:        WinRate(last3, wrestlerID),
		WinRateLast5:        WinRate(last5, wrestlerID),
		WinRateLast10:       WinRate(last10, wrestlerID),
		WinRateLast15:       WinRate(last15, wrestlerID),
		Streak:              Streak(recent, wrestlerID),
		BonusWinRateLast5:   BonusWinRate(last5, wrestlerID),
		BonusWinRateLast10:  BonusWinRate(last10, wrestlerID),
		CloseMatchWinRate5:  CloseMatchWinRate(last5, wrestlerID),
		CloseMatchWinRate10: CloseMatchWinRate(last10, wrestlerID),

		AvgPointsScoredLast3:   AvgPointsScored(last3, wrestlerID),
		AvgPointsAllowedLast3:  AvgPointsAllowed(last3, wrestlerID),
		AvgPointDiffLast3:      AvgPointDifferential(last3, wrestlerID),
		AvgPointsScoredLast5:   AvgPointsScored(last5, wrestlerID),
		AvgPointsAllowedLast5:  AvgPointsAllowed(last5, wrestlerID),
		AvgPointDiffLast5:      AvgPointDifferential(last5, wrestlerID),
		AvgPointsScoredLast10:  AvgPointsScored(last10, wrestlerID),
		AvgPointsAllowedLast10: AvgPointsAllowed(last10, wrestlerID),
		AvgPointDiffLast10:     AvgPointDifferential(last10, wrestlerID),
		OvertimeRateLast5:      OvertimeRate(last5),
		OvertimeRateLast10:     OvertimeRate(last10),
		AvgDurationLast5:       AvgDuration(last5),
		AvgDurationLast10:      AvgDuration(last10),

		DualMeetWins:      dualWins,
		DualMeetMatches:   len(dual),
		DualMeetWinRate:   winRateOrPrior(dual, wrestlerID),
		TournamentWins:    tournWins,
		TournamentMatches: len(tournament),
		TournamentWinRate: winRateOrPrior(tournament, wrestlerID),

		DaysSinceLastMatch: 0,
		MatchesPerWeek30:   MatchesPerWeek(len(windowMatches), activityWindowDays),
		Year:               referenceTime.Year(),

		PinRate:           pinRate,
		TechFallRate:      techRate,
		MajorDecisionRate: majorRate,
	}

	if len(lastBefore) > 0 {
		f.DaysSinceLastMatch = DaysSince(lastBefore[0].Date, referenceTime)
	}

	if weightClassID != nil {
		wcMatches := FilterWeightClass(splitBase, *weightClassID)
		wcWins, _ := WinLoss(wcMatches, wrestlerID)
		f.WeightClassMatches = len(wcMatches)
		f.WeightClassWins = wcWins
		f.WeightClassWinRate = winRateOrPrior(wcMatches, wrestlerID)
	} else {
		f.WeightClassWinRate = 0.5
	}

	return f, nil
}

// previousSeasonWinRate locates the season starting exactly one year before
// the requested one and returns the wrestler's win rate in it. Absence of a
// requested season or of a prior season yields the 0.5 neutral prior; a prior
// season the wrestler sat out scores 0.0 like any other empty win rate.
func (s *featureService) previousSeasonWinRate(ctx context.Context, wrestlerID int64, seasonID *int64) (float64, error) {
	if seasonID == nil {
		return 0.5, nil
	}
	current, err := s.src.FetchSeason(ctx, *seasonID)
	if errors.Is(err, store.ErrNoData) {
		return 0.5, nil
	}
	if err != nil {
		return 0, fmt.Errorf("current season: %w", err)
	}
	prev, err := s.src.FetchPreviousSeason(ctx, current.StartYear)
	if errors.Is(err, store.ErrNoData) {
		return 0.5, nil
	}
	if err != nil {
		return 0, fmt.Errorf("previous season: %w", err)
	}
	matches, err := s.src.FetchMatches(ctx, wrestlerID, store.MatchFilter{SeasonID: &prev.ID})
	if err != nil {
		return 0, fmt.Errorf("previous season matches: %w", err)
	}
	return WinRate(matches, wrestlerID), nil
}

func takeN(matches []models.Match, n int) []models.Match {
	if len(matches) <= n {
		return matches
	}
	return matches[:n]
}
