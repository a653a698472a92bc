package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Silver0524/MatPredict/internal/models"
	"github.com/Silver0524/MatPredict/internal/store"
)

func TestComputeWrestlerFeatures(t *testing.T) {
	const wrestlerID int64 = 10
	referenceTime := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	day := func(daysAgo int) time.Time {
		return referenceTime.AddDate(0, 0, -daysAgo)
	}
	match := func(daysAgo int, won bool, resultType string, scored, allowed int) models.Match {
		m := models.Match{
			Wrestler1ID:    wrestlerID,
			Wrestler2ID:    99,
			Date:           day(daysAgo),
			WeightClassID:  3,
			Wrestler1Score: intPtr(scored),
			Wrestler2Score: intPtr(allowed),
			ResultType:     resultType,
		}
		if won {
			m.WinnerID = wrestlerID
		} else {
			m.WinnerID = 99
		}
		return m
	}

	// Most recent first: win, loss, pin win, decision win.
	history := []models.Match{
		match(5, true, models.ResultDecision, 5, 3),
		match(9, false, models.ResultDecision, 2, 6),
		match(14, true, models.ResultPin, 12, 0),
		match(21, true, models.ResultDecision, 8, 4),
	}

	src := &MockRecordSource{
		FetchMatchesFunc: func(ctx context.Context, id int64, f store.MatchFilter) ([]models.Match, error) {
			if id != wrestlerID {
				t.Fatalf("unexpected wrestler ID %d", id)
			}
			if f.Limit == 1 {
				return history[:1], nil
			}
			if !f.Since.IsZero() {
				var out []models.Match
				for _, m := range history {
					if !m.Date.Before(f.Since) && m.Date.Before(f.Before) {
						out = append(out, m)
					}
				}
				return out, nil
			}
			return history, nil
		},
	}

	svc := NewFeatureService(src, zap.NewNop())
	f, err := svc.ComputeWrestlerFeatures(context.Background(), wrestlerID, nil, nil, referenceTime)
	if err != nil {
		t.Fatalf("ComputeWrestlerFeatures() error = %v", err)
	}

	if f.CareerWins != 3 || f.CareerLosses != 1 || f.CareerMatches != 4 {
		t.Errorf("career = %d-%d of %d, want 3-1 of 4", f.CareerWins, f.CareerLosses, f.CareerMatches)
	}
	if !almostEqual(f.WinRateLast5, 0.75) {
		t.Errorf("WinRateLast5 = %v, want 0.75", f.WinRateLast5)
	}
	if !almostEqual(f.WinRateLast3, 2.0/3.0) {
		t.Errorf("WinRateLast3 = %v, want 2/3", f.WinRateLast3)
	}
	if f.Streak != 1 {
		t.Errorf("Streak = %d, want 1", f.Streak)
	}
	if !almostEqual(f.BonusWinRateLast5, 1.0/3.0) {
		t.Errorf("BonusWinRateLast5 = %v, want 1/3", f.BonusWinRateLast5)
	}
	// (5-3) wins, (2-6) is a 4-point loss, pin and 8-4 are not close.
	if !almostEqual(f.CloseMatchWinRate5, 1.0) {
		t.Errorf("CloseMatchWinRate5 = %v, want 1.0", f.CloseMatchWinRate5)
	}
	if !almostEqual(f.AvgPointsScoredLast5, (5.0+2.0+12.0+8.0)/4.0) {
		t.Errorf("AvgPointsScoredLast5 = %v", f.AvgPointsScoredLast5)
	}
	if f.DaysSinceLastMatch != 5 {
		t.Errorf("DaysSinceLastMatch = %d, want 5", f.DaysSinceLastMatch)
	}
	// All four matches fall inside the trailing 30-day window.
	if !almostEqual(f.MatchesPerWeek30, 4.0*7.0/30.0) {
		t.Errorf("MatchesPerWeek30 = %v, want %v", f.MatchesPerWeek30, 4.0*7.0/30.0)
	}

	// No season requested: season stats empty, neutral priors everywhere.
	if f.SeasonMatches != 0 || f.SeasonWinRate != 0 {
		t.Errorf("season stats = %d matches rate %v, want empty", f.SeasonMatches, f.SeasonWinRate)
	}
	if !almostEqual(f.PrevSeasonWinRate, 0.5) {
		t.Errorf("PrevSeasonWinRate = %v, want 0.5", f.PrevSeasonWinRate)
	}
	if !almostEqual(f.WeightClassWinRate, 0.5) {
		t.Errorf("WeightClassWinRate = %v, want 0.5", f.WeightClassWinRate)
	}

	// All history is tournament format (no meet IDs).
	if f.DualMeetMatches != 0 || !almostEqual(f.DualMeetWinRate, 0.5) {
		t.Errorf("dual = %d matches rate %v, want 0 and 0.5", f.DualMeetMatches, f.DualMeetWinRate)
	}
	if f.TournamentMatches != 4 || !almostEqual(f.TournamentWinRate, 0.75) {
		t.Errorf("tournament = %d matches rate %v, want 4 and 0.75", f.TournamentMatches, f.TournamentWinRate)
	}

	if f.Year != 2024 {
		t.Errorf("Year = %d, want 2024", f.Year)
	}
}

func TestComputeWrestlerFeaturesEmptyHistory(t *testing.T) {
	src := &MockRecordSource{}
	svc := NewFeatureService(src, zap.NewNop())

	_, err := svc.ComputeWrestlerFeatures(context.Background(), 7, nil, nil, time.Now())
	if !errors.Is(err, store.ErrNoData) {
		t.Fatalf("ComputeWrestlerFeatures() error = %v, want %v for a wrestler with no matches", err, store.ErrNoData)
	}
}

func TestComputeWrestlerFeaturesSeasonGapDefaults(t *testing.T) {
	const wrestlerID int64 = 7
	seasonID := int64Ptr(3)
	career := []models.Match{
		{Wrestler1ID: wrestlerID, Wrestler2ID: 99, WinnerID: wrestlerID, SeasonID: 2,
			Date: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), ResultType: models.ResultDecision},
	}
	src := &MockRecordSource{
		FetchMatchesFunc: func(ctx context.Context, id int64, f store.MatchFilter) ([]models.Match, error) {
			// The wrestler has career history but nothing in season 3.
			if f.SeasonID != nil {
				return nil, nil
			}
			return career, nil
		},
	}
	svc := NewFeatureService(src, zap.NewNop())

	f, err := svc.ComputeWrestlerFeatures(context.Background(), wrestlerID, seasonID, nil, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ComputeWrestlerFeatures() error = %v, want nil when career history exists", err)
	}
	if f.CareerMatches != 1 {
		t.Errorf("CareerMatches = %d, want 1", f.CareerMatches)
	}
	if f.SeasonMatches != 0 || f.SeasonWinRate != 0 {
		t.Errorf("season stats = %d matches rate %v, want empty-window defaults", f.SeasonMatches, f.SeasonWinRate)
	}
	if !almostEqual(f.DualMeetWinRate, 0.5) || !almostEqual(f.TournamentWinRate, 0.5) {
		t.Errorf("format priors = %v / %v, want 0.5", f.DualMeetWinRate, f.TournamentWinRate)
	}
}

func TestPreviousSeasonWinRate(t *testing.T) {
	const wrestlerID int64 = 4
	currentSeasonID := int64(20)
	prevSeasonID := int64(19)

	tests := []struct {
		name        string
		seasonID    *int64
		prevErr     bool
		prevMatches []models.Match
		want        float64
	}{
		{
			name:     "NoSeasonRequested",
			seasonID: nil,
			want:     0.5,
		},
		{
			name:     "NoPriorSeason",
			seasonID: &currentSeasonID,
			prevErr:  true,
			want:     0.5,
		},
		{
			name:     "PriorSeasonSatOut",
			seasonID: &currentSeasonID,
			want:     0.0,
		},
		{
			name:     "PriorSeasonRecord",
			seasonID: &currentSeasonID,
			prevMatches: []models.Match{
				{Wrestler1ID: wrestlerID, Wrestler2ID: 9, WinnerID: wrestlerID},
				{Wrestler1ID: wrestlerID, Wrestler2ID: 9, WinnerID: wrestlerID},
				{Wrestler1ID: wrestlerID, Wrestler2ID: 9, WinnerID: 9},
			},
			want: 2.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &MockRecordSource{
				FetchSeasonFunc: func(ctx context.Context, seasonID int64) (*models.Season, error) {
					return &models.Season{ID: currentSeasonID, StartYear: 2023, EndYear: 2024}, nil
				},
				FetchPreviousSeasonFunc: func(ctx context.Context, startYear int) (*models.Season, error) {
					if tt.prevErr {
						return nil, store.ErrNoData
					}
					if startYear != 2023 {
						t.Fatalf("FetchPreviousSeason startYear = %d, want 2023", startYear)
					}
					return &models.Season{ID: prevSeasonID, StartYear: 2022, EndYear: 2023}, nil
				},
				FetchMatchesFunc: func(ctx context.Context, id int64, f store.MatchFilter) ([]models.Match, error) {
					if f.SeasonID != nil && *f.SeasonID == prevSeasonID {
						return tt.prevMatches, nil
					}
					return nil, nil
				},
			}

			svc := NewFeatureService(src, zap.NewNop()).(*featureService)
			got, err := svc.previousSeasonWinRate(context.Background(), wrestlerID, tt.seasonID)
			if err != nil {
				t.Fatalf("previousSeasonWinRate() error = %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("previousSeasonWinRate() = %v, want %v", got, tt.want)
			}
		})
	}
}
