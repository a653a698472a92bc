package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Silver0524/MatPredict/internal/models"
)

// ErrNoData is returned when a lookup matches no rows. Callers distinguish it
// from infrastructure failures: a data gap may be recovered with defaults or a
// cached snapshot, anything else must propagate.
var ErrNoData = errors.New("store: no data")

// PgPool is the subset of pgxpool.Pool the store uses.
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Store is the Postgres-backed match record source.
type Store struct {
	pg PgPool
}

func New(pg PgPool) *Store {
	return &Store{pg: pg}
}

// MatchFilter narrows a match fetch. Zero values mean "no constraint".
// Results are always ordered by date descending (most recent first).
type MatchFilter struct {
	SeasonID      *int64
	WeightClassID *int64
	Limit         int
	Since         time.Time // inclusive lower bound on match date
	Before        time.Time // exclusive upper bound on match date
}

const matchColumns = `
	m.id, m.meet_id, m.season_id, m.date, m.weight_class_id,
	m.wrestler1_id, m.wrestler2_id, m.wrestler1_score, m.wrestler2_score,
	m.winner_id, rt.code, ms.duration_seconds`

// FetchMatches returns a wrestler's past matches, most recent first.
func (s *Store) FetchMatches(ctx context.Context, wrestlerID int64, f MatchFilter) ([]models.Match, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT` + matchColumns + `
		FROM matches m
		JOIN result_types rt ON rt.id = m.result_type_id
		LEFT JOIN match_stats ms ON ms.match_id = m.id
		WHERE (m.wrestler1_id = $1 OR m.wrestler2_id = $1)`)

	args := []any{wrestlerID}
	if f.SeasonID != nil {
		args = append(args, *f.SeasonID)
		fmt.Fprintf(&sb, " AND m.season_id = $%d", len(args))
	}
	if f.WeightClassID != nil {
		args = append(args, *f.WeightClassID)
		fmt.Fprintf(&sb, " AND m.weight_class_id = $%d", len(args))
	}
	if !f.Since.IsZero() {
		args = append(args, f.Since)
		fmt.Fprintf(&sb, " AND m.date >= $%d", len(args))
	}
	if !f.Before.IsZero() {
		args = append(args, f.Before)
		fmt.Fprintf(&sb, " AND m.date < $%d", len(args))
	}
	sb.WriteString(" ORDER BY m.date DESC, m.id DESC")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := s.pg.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("fetch matches: %w", err)
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(
			&m.ID, &m.MeetID, &m.SeasonID, &m.Date, &m.WeightClassID,
			&m.Wrestler1ID, &m.Wrestler2ID, &m.Wrestler1Score, &m.Wrestler2Score,
			&m.WinnerID, &m.ResultType, &m.DurationSeconds,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// FetchHeadToHead aggregates all matches between an unordered pair of wrestlers.
func (s *Store) FetchHeadToHead(ctx context.Context, wrestler1ID, wrestler2ID int64) (*models.HeadToHead, error) {
	h2h := &models.HeadToHead{Wrestler1ID: wrestler1ID, Wrestler2ID: wrestler2ID}
	err := s.pg.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE winner_id = $1),
		       count(*) FILTER (WHERE winner_id = $2)
		FROM matches
		WHERE (wrestler1_id = $1 AND wrestler2_id = $2)
		   OR (wrestler1_id = $2 AND wrestler2_id = $1)
	`, wrestler1ID, wrestler2ID).Scan(&h2h.TotalMatches, &h2h.Wins1, &h2h.Wins2)
	if err != nil {
		return nil, fmt.Errorf("fetch head-to-head: %w", err)
	}
	return h2h, nil
}

func (s *Store) FetchSeason(ctx context.Context, seasonID int64) (*models.Season, error) {
	var sn models.Season
	err := s.pg.QueryRow(ctx, `
		SELECT id, start_year, end_year, start_date, end_date
		FROM seasons WHERE id = $1
	`, seasonID).Scan(&sn.ID, &sn.StartYear, &sn.EndYear, &sn.StartDate, &sn.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("fetch season: %w", err)
	}
	return &sn, nil
}

// FetchPreviousSeason looks up the season whose start year is exactly one
// less than the given start year. ErrNoData when no such season exists.
func (s *Store) FetchPreviousSeason(ctx context.Context, startYear int) (*models.Season, error) {
	var sn models.Season
	err := s.pg.QueryRow(ctx, `
		SELECT id, start_year, end_year, start_date, end_date
		FROM seasons WHERE start_year = $1
	`, startYear-1).Scan(&sn.ID, &sn.StartYear, &sn.EndYear, &sn.StartDate, &sn.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("fetch previous season: %w", err)
	}
	return &sn, nil
}

// FetchCurrentSeason returns the season with the highest start year.
func (s *Store) FetchCurrentSeason(ctx context.Context) (*models.Season, error) {
	var sn models.Season
	err := s.pg.QueryRow(ctx, `
		SELECT id, start_year, end_year, start_date, end_date
		FROM seasons ORDER BY start_year DESC LIMIT 1
	`).Scan(&sn.ID, &sn.StartYear, &sn.EndYear, &sn.StartDate, &sn.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("fetch current season: %w", err)
	}
	return &sn, nil
}
