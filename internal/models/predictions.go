package models

import "time"

// FeatureBreakdown carries the full per-side feature profiles returned
// alongside a prediction so clients can explain the forecast.
type FeatureBreakdown struct {
	Wrestler1 *WrestlerFeatures `json:"wrestler1"`
	Wrestler2 *WrestlerFeatures `json:"wrestler2"`
}

// PredictionResponse is the outcome forecast for one matchup.
type PredictionResponse struct {
	Wrestler1ID       int64   `json:"wrestler1_id"`
	Wrestler2ID       int64   `json:"wrestler2_id"`
	Wrestler1Name     string  `json:"wrestler1_name"`
	Wrestler2Name     string  `json:"wrestler2_name"`
	Wrestler1WinProb  float64 `json:"wrestler1_win_probability"`
	Wrestler2WinProb  float64 `json:"wrestler2_win_probability"`
	PredictedWinnerID int64   `json:"predicted_winner_id"`
	Confidence        float64 `json:"confidence"`

	HeadToHead *HeadToHead      `json:"h2h_stats"`
	Features   FeatureBreakdown `json:"features"`

	SchemaVersion string    `json:"schema_version"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// Comparison is the differential block of a side-by-side comparison,
// computed from live features (wrestler1 minus wrestler2).
type Comparison struct {
	WinRateDiff       float64 `json:"win_rate_diff"`
	ExperienceDiff    int     `json:"experience_diff"`
	StreakDiff        int     `json:"streak_diff"`
	FormDiffLast5     float64 `json:"form_diff_last_5"`
	FormDiffLast10    float64 `json:"form_diff_last_10"`
	ScoringDiffLast5  float64 `json:"scoring_diff_last_5"`
	ScoringDiffLast10 float64 `json:"scoring_diff_last_10"`
}

// ComparisonResponse is a side-by-side statistical comparison of two wrestlers.
// Stale is true when live feature computation found no data and a cached
// snapshot was served instead.
type ComparisonResponse struct {
	Wrestler1  *Wrestler        `json:"wrestler1"`
	Wrestler2  *Wrestler        `json:"wrestler2"`
	Features   FeatureBreakdown `json:"features"`
	HeadToHead *HeadToHead      `json:"h2h_stats"`
	Comparison *Comparison      `json:"comparison"`
	Stale      bool             `json:"stale,omitempty"`
}
