package models

// WrestlerFeatures is the complete statistical profile computed for one
// wrestler at a reference point in time, optionally scoped to a season and
// weight class. Every field is resolved to its cold-start default before the
// struct leaves the aggregator: rate fields default to 0.0 except the
// uninformative priors (previous season, dual meet, tournament, weight class,
// head-to-head) which default to 0.5 to match the values the model saw in
// training.
type WrestlerFeatures struct {
	WrestlerID int64  `json:"wrestler_id"`
	SeasonID   *int64 `json:"season_id,omitempty"`

	// Career & season
	CareerWins        int     `json:"career_wins"`
	CareerLosses      int     `json:"career_losses"`
	CareerMatches     int     `json:"career_matches"`
	SeasonWins        int     `json:"season_wins"`
	SeasonMatches     int     `json:"season_matches"`
	SeasonWinRate     float64 `json:"season_win_rate"`
	PrevSeasonWinRate float64 `json:"prev_yearly_win_rate"`
	Experience        int     `json:"experience"`

	// Recent form
	WinRateLast3        float64 `json:"win_rate_last_3"`
	WinRateLast5        float64 `json:"win_rate_last_5"`
	WinRateLast10       float64 `json:"win_rate_last_10"`
	WinRateLast15       float64 `json:"win_rate_last_15"`
	Streak              int     `json:"streak"`
	BonusWinRateLast5   float64 `json:"bonus_win_rate_last_5"`
	BonusWinRateLast10  float64 `json:"bonus_win_rate_last_10"`
	CloseMatchWinRate5  float64 `json:"close_match_win_rate_last_5"`
	CloseMatchWinRate10 float64 `json:"close_match_win_rate_last_10"`

	// Style / points
	AvgPointsScoredLast3   float64 `json:"avg_points_scored_last_3"`
	AvgPointsAllowedLast3  float64 `json:"avg_points_allowed_last_3"`
	AvgPointDiffLast3      float64 `json:"avg_point_differential_last_3"`
	AvgPointsScoredLast5   float64 `json:"avg_points_scored_last_5"`
	AvgPointsAllowedLast5  float64 `json:"avg_points_allowed_last_5"`
	AvgPointDiffLast5      float64 `json:"avg_point_differential_last_5"`
	AvgPointsScoredLast10  float64 `json:"avg_points_scored_last_10"`
	AvgPointsAllowedLast10 float64 `json:"avg_points_allowed_last_10"`
	AvgPointDiffLast10     float64 `json:"avg_point_differential_last_10"`
	OvertimeRateLast5      float64 `json:"overtime_rate_last_5"`
	OvertimeRateLast10     float64 `json:"overtime_rate_last_10"`
	AvgDurationLast5       float64 `json:"avg_duration_last_5"`
	AvgDurationLast10      float64 `json:"avg_duration_last_10"`

	// Format splits
	DualMeetWins       int     `json:"dual_meet_wins"`
	DualMeetMatches    int     `json:"dual_meet_matches"`
	DualMeetWinRate    float64 `json:"dual_meet_win_rate"`
	TournamentWins     int     `json:"tournament_wins"`
	TournamentMatches  int     `json:"tournament_matches"`
	TournamentWinRate  float64 `json:"tournament_win_rate"`
	WeightClassMatches int     `json:"weight_class_matches"`
	WeightClassWins    int     `json:"weight_class_wins"`
	WeightClassWinRate float64 `json:"weight_class_win_rate"`

	// Activity
	DaysSinceLastMatch int     `json:"days_since_last_match"`
	MatchesPerWeek30   float64 `json:"matches_per_week_last_30_days"`
	Year               int     `json:"year"`

	// Win-style breakdown. Informational only, not part of any model contract.
	PinRate           float64 `json:"pin_rate"`
	TechFallRate      float64 `json:"tech_fall_rate"`
	MajorDecisionRate float64 `json:"major_decision_rate"`
}

// Map serializes the features into the flat name->value mapping consumed by
// the feature vector binder. The names here are the statistic names trained
// models reference in their schemas; the win-style breakdown fields are
// deliberately not included.
func (f *WrestlerFeatures) Map() map[string]float64 {
	return map[string]float64{
		"career_wins":          float64(f.CareerWins),
		"career_losses":        float64(f.CareerLosses),
		"career_matches":       float64(f.CareerMatches),
		"season_wins":          float64(f.SeasonWins),
		"season_matches":       float64(f.SeasonMatches),
		"season_win_rate":      f.SeasonWinRate,
		"prev_yearly_win_rate": f.PrevSeasonWinRate,
		"experience":           float64(f.Experience),

		"win_rate_last_3":              f.WinRateLast3,
		"win_rate_last_5":              f.WinRateLast5,
		"win_rate_last_10":             f.WinRateLast10,
		"win_rate_last_15":             f.WinRateLast15,
		"streak":                       float64(f.Streak),
		"bonus_win_rate_last_5":        f.BonusWinRateLast5,
		"bonus_win_rate_last_10":       f.BonusWinRateLast10,
		"close_match_win_rate_last_5":  f.CloseMatchWinRate5,
		"close_match_win_rate_last_10": f.CloseMatchWinRate10,

		"avg_points_scored_last_3":       f.AvgPointsScoredLast3,
		"avg_points_allowed_last_3":      f.AvgPointsAllowedLast3,
		"avg_point_differential_last_3":  f.AvgPointDiffLast3,
		"avg_points_scored_last_5":       f.AvgPointsScoredLast5,
		"avg_points_allowed_last_5":      f.AvgPointsAllowedLast5,
		"avg_point_differential_last_5":  f.AvgPointDiffLast5,
		"avg_points_scored_last_10":      f.AvgPointsScoredLast10,
		"avg_points_allowed_last_10":     f.AvgPointsAllowedLast10,
		"avg_point_differential_last_10": f.AvgPointDiffLast10,
		"overtime_rate_last_5":           f.OvertimeRateLast5,
		"overtime_rate_last_10":          f.OvertimeRateLast10,
		"avg_duration_last_5":            f.AvgDurationLast5,
		"avg_duration_last_10":           f.AvgDurationLast10,

		"dual_meet_wins":        float64(f.DualMeetWins),
		"dual_meet_matches":     float64(f.DualMeetMatches),
		"dual_meet_win_rate":    f.DualMeetWinRate,
		"tournament_wins":       float64(f.TournamentWins),
		"tournament_matches":    float64(f.TournamentMatches),
		"tournament_win_rate":   f.TournamentWinRate,
		"weight_class_matches":  float64(f.WeightClassMatches),
		"weight_class_wins":     float64(f.WeightClassWins),
		"weight_class_win_rate": f.WeightClassWinRate,

		"days_since_last_match":         float64(f.DaysSinceLastMatch),
		"matches_per_week_last_30_days": f.MatchesPerWeek30,
		"year":                          float64(f.Year),
	}
}
