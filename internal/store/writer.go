package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Silver0524/MatPredict/internal/models"
)

// InsertMatches writes a batch of ingested match results in one round trip.
// Result type and weight class codes are resolved once per batch. An unknown
// code fails the whole batch so the caller can reject and log it.
func (s *Store) InsertMatches(ctx context.Context, records []models.MatchUpsert) error {
	if len(records) == 0 {
		return nil
	}

	resultTypes := make(map[string]int64)
	weightClasses := make(map[string]int64)
	for _, rec := range records {
		if _, ok := resultTypes[rec.ResultType]; !ok {
			rt, err := s.GetResultTypeByCode(ctx, rec.ResultType)
			if err != nil {
				return fmt.Errorf("result type %q: %w", rec.ResultType, err)
			}
			resultTypes[rec.ResultType] = rt.ID
		}
		if _, ok := weightClasses[rec.WeightClassCode]; !ok {
			wc, err := s.GetWeightClassByCode(ctx, rec.WeightClassCode)
			if err != nil {
				return fmt.Errorf("weight class %q: %w", rec.WeightClassCode, err)
			}
			weightClasses[rec.WeightClassCode] = wc.ID
		}
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			return fmt.Errorf("match date %q: %w", rec.Date, err)
		}
		batch.Queue(`
			WITH ins AS (
				INSERT INTO matches
					(meet_id, season_id, date, weight_class_id,
					 wrestler1_id, wrestler2_id, wrestler1_score, wrestler2_score,
					 winner_id, result_type_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING id
			)
			INSERT INTO match_stats (match_id, duration_seconds)
			SELECT id, $11 FROM ins WHERE $11::int IS NOT NULL
		`,
			rec.MeetID, rec.SeasonID, date, weightClasses[rec.WeightClassCode],
			rec.Wrestler1ID, rec.Wrestler2ID, rec.Wrestler1Score, rec.Wrestler2Score,
			rec.WinnerID, resultTypes[rec.ResultType], rec.DurationSeconds,
		)
	}

	results := s.pg.SendBatch(ctx, batch)
	defer results.Close()
	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert match: %w", err)
		}
	}
	return nil
}
