package models

import "time"

// Result type codes as stored in the result_types table.
const (
	ResultDecision      = "DEC"
	ResultMajorDecision = "MD"
	ResultMajorAlt      = "MAJ"
	ResultTechFall      = "TF"
	ResultTechAlt       = "TECH"
	ResultPin           = "PIN"
	ResultFall          = "FALL"
	ResultForfeit       = "FF"
	ResultDisqual       = "DQ"
	ResultInjuryDefault = "INJ"
)

// bonusResultCodes is the set of dominant-win result types.
var bonusResultCodes = map[string]bool{
	ResultPin:           true,
	ResultFall:          true,
	ResultTechFall:      true,
	ResultTechAlt:       true,
	ResultMajorDecision: true,
	ResultMajorAlt:      true,
}

// IsBonusResult reports whether a result type code counts as a bonus (dominant) win.
func IsBonusResult(code string) bool {
	return bonusResultCodes[code]
}

// Match is a single historical contest between two wrestlers.
// Scores are nil when the bout had no recorded score (forfeits, defaults).
// MeetID is nil for tournament bouts and set for dual-meet bouts.
// DurationSeconds is nil when no timing data was recorded.
type Match struct {
	ID              int64     `json:"id"`
	MeetID          *int64    `json:"meet_id,omitempty"`
	SeasonID        int64     `json:"season_id"`
	Date            time.Time `json:"date"`
	WeightClassID   int64     `json:"weight_class_id"`
	Wrestler1ID     int64     `json:"wrestler1_id"`
	Wrestler2ID     int64     `json:"wrestler2_id"`
	Wrestler1Score  *int      `json:"wrestler1_score,omitempty"`
	Wrestler2Score  *int      `json:"wrestler2_score,omitempty"`
	WinnerID        int64     `json:"winner_id"`
	ResultType      string    `json:"result_type"`
	DurationSeconds *int      `json:"duration_seconds,omitempty"`
}

// Involves reports whether the wrestler took part in the match.
func (m *Match) Involves(wrestlerID int64) bool {
	return m.Wrestler1ID == wrestlerID || m.Wrestler2ID == wrestlerID
}

// ScoreFor returns the points scored by the wrestler and by their opponent.
// ok is false when the wrestler was not in the match or either score is
// missing; such matches are excluded from scoring aggregates, never counted
// as zero.
func (m *Match) ScoreFor(wrestlerID int64) (scored, allowed int, ok bool) {
	if !m.Involves(wrestlerID) || m.Wrestler1Score == nil || m.Wrestler2Score == nil {
		return 0, 0, false
	}
	if m.Wrestler1ID == wrestlerID {
		return *m.Wrestler1Score, *m.Wrestler2Score, true
	}
	return *m.Wrestler2Score, *m.Wrestler1Score, true
}

// Wrestler identifies a competitor.
type Wrestler struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	DOB        *time.Time `json:"dob,omitempty"`
	Hometown   string     `json:"hometown,omitempty"`
	HighSchool string     `json:"high_school,omitempty"`
}

// Season covers one competition year (e.g. start_year 2023, end_year 2024).
type Season struct {
	ID        int64      `json:"id"`
	StartYear int        `json:"start_year"`
	EndYear   int        `json:"end_year"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// WeightClass is a sanctioned competition weight, keyed by code ("125", "285", ...).
type WeightClass struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// ResultType describes one way a match can end.
type ResultType struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// HeadToHead aggregates all historical matches between an unordered pair of
// wrestlers, with wins attributed to each side.
type HeadToHead struct {
	Wrestler1ID  int64 `json:"wrestler1_id"`
	Wrestler2ID  int64 `json:"wrestler2_id"`
	TotalMatches int   `json:"total_matches"`
	Wins1        int   `json:"wins_wrestler1"`
	Wins2        int   `json:"wins_wrestler2"`
}
