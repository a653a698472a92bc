package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Silver0524/MatPredict/internal/models"
)

// Catalog lookups back the validation and browsing endpoints. They share the
// same Store so the handlers get one dependency.

func (s *Store) GetWrestler(ctx context.Context, wrestlerID int64) (*models.Wrestler, error) {
	var w models.Wrestler
	err := s.pg.QueryRow(ctx, `
		SELECT id, name, dob, COALESCE(hometown, ''), COALESCE(high_school, '')
		FROM wrestlers WHERE id = $1
	`, wrestlerID).Scan(&w.ID, &w.Name, &w.DOB, &w.Hometown, &w.HighSchool)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("get wrestler: %w", err)
	}
	return &w, nil
}

func (s *Store) ListWrestlers(ctx context.Context, limit, offset int) ([]models.Wrestler, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	rows, err := s.pg.Query(ctx, `
		SELECT id, name, dob, COALESCE(hometown, ''), COALESCE(high_school, '')
		FROM wrestlers ORDER BY name LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list wrestlers: %w", err)
	}
	defer rows.Close()
	return scanWrestlers(rows)
}

func (s *Store) SearchWrestlers(ctx context.Context, query string) ([]models.Wrestler, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT id, name, dob, COALESCE(hometown, ''), COALESCE(high_school, '')
		FROM wrestlers WHERE name ILIKE '%' || $1 || '%' ORDER BY name LIMIT 50
	`, query)
	if err != nil {
		return nil, fmt.Errorf("search wrestlers: %w", err)
	}
	defer rows.Close()
	return scanWrestlers(rows)
}

func scanWrestlers(rows pgx.Rows) ([]models.Wrestler, error) {
	var out []models.Wrestler
	for rows.Next() {
		var w models.Wrestler
		if err := rows.Scan(&w.ID, &w.Name, &w.DOB, &w.Hometown, &w.HighSchool); err != nil {
			return nil, fmt.Errorf("scan wrestler: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (s *Store) ListSeasons(ctx context.Context) ([]models.Season, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT id, start_year, end_year, start_date, end_date
		FROM seasons ORDER BY start_year DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	defer rows.Close()

	var out []models.Season
	for rows.Next() {
		var sn models.Season
		if err := rows.Scan(&sn.ID, &sn.StartYear, &sn.EndYear, &sn.StartDate, &sn.EndDate); err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		out = append(out, sn)
	}
	return out, rows.Err()
}

func (s *Store) ListWeightClasses(ctx context.Context) ([]models.WeightClass, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT id, code, COALESCE(description, '') FROM weight_classes ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("list weight classes: %w", err)
	}
	defer rows.Close()

	var out []models.WeightClass
	for rows.Next() {
		var wc models.WeightClass
		if err := rows.Scan(&wc.ID, &wc.Code, &wc.Description); err != nil {
			return nil, fmt.Errorf("scan weight class: %w", err)
		}
		out = append(out, wc)
	}
	return out, rows.Err()
}

func (s *Store) GetWeightClass(ctx context.Context, weightClassID int64) (*models.WeightClass, error) {
	var wc models.WeightClass
	err := s.pg.QueryRow(ctx, `
		SELECT id, code, COALESCE(description, '') FROM weight_classes WHERE id = $1
	`, weightClassID).Scan(&wc.ID, &wc.Code, &wc.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("get weight class: %w", err)
	}
	return &wc, nil
}

func (s *Store) GetWeightClassByCode(ctx context.Context, code string) (*models.WeightClass, error) {
	var wc models.WeightClass
	err := s.pg.QueryRow(ctx, `
		SELECT id, code, COALESCE(description, '') FROM weight_classes WHERE code = $1
	`, code).Scan(&wc.ID, &wc.Code, &wc.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("get weight class by code: %w", err)
	}
	return &wc, nil
}

func (s *Store) GetResultTypeByCode(ctx context.Context, code string) (*models.ResultType, error) {
	var rt models.ResultType
	err := s.pg.QueryRow(ctx, `
		SELECT id, code, COALESCE(description, '') FROM result_types WHERE code = $1
	`, code).Scan(&rt.ID, &rt.Code, &rt.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("get result type: %w", err)
	}
	return &rt, nil
}
