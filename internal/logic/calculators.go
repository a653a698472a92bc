package logic

import (
	"time"

	"github.com/Silver0524/MatPredict/internal/models"
)

// Window statistic calculators. Each takes a slice of match records already
// filtered and ordered by the caller (most recent first unless noted) plus a
// wrestler ID, and returns one scalar. Empty input is never an error: every
// calculator has a documented cold-start default, 0.0 except where a 0.5
// uninformative prior matches what the model saw in training.

const (
	// closeMatchMargin is the maximum absolute score difference of a "close" match.
	closeMatchMargin = 3
	// overtimeThresholdSeconds: regulation is seven minutes; longer means overtime.
	overtimeThresholdSeconds = 420
	// streakWindow bounds how far back a streak is traced.
	streakWindow = 20
)

// WinRate returns wins/len. 0.0 for an empty slice.
func WinRate(matches []models.Match, wrestlerID int64) float64 {
	if len(matches) == 0 {
		return 0
	}
	wins := 0
	for i := range matches {
		if matches[i].WinnerID == wrestlerID {
			wins++
		}
	}
	return float64(wins) / float64(len(matches))
}

// WinLoss counts wins and losses.
func WinLoss(matches []models.Match, wrestlerID int64) (wins, losses int) {
	for i := range matches {
		if matches[i].WinnerID == wrestlerID {
			wins++
		} else {
			losses++
		}
	}
	return wins, losses
}

// winRateOrPrior is WinRate with a 0.5 default for an empty partition.
// Used for the format and weight-class splits, where an empty partition is
// uninformative rather than evidence of weakness.
func winRateOrPrior(matches []models.Match, wrestlerID int64) float64 {
	if len(matches) == 0 {
		return 0.5
	}
	return WinRate(matches, wrestlerID)
}

// AvgPointsScored averages the wrestler's own score over matches where both
// scores are recorded. Matches missing either score are excluded from the
// denominator, not treated as zero.
func AvgPointsScored(matches []models.Match, wrestlerID int64) float64 {
	var sum, n int
	for i := range matches {
		if scored, _, ok := matches[i].ScoreFor(wrestlerID); ok {
			sum += scored
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// AvgPointsAllowed averages the opponent's score over fully-scored matches.
func AvgPointsAllowed(matches []models.Match, wrestlerID int64) float64 {
	var sum, n int
	for i := range matches {
		if _, allowed, ok := matches[i].ScoreFor(wrestlerID); ok {
			sum += allowed
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// AvgPointDifferential averages (scored - allowed) over fully-scored matches.
func AvgPointDifferential(matches []models.Match, wrestlerID int64) float64 {
	var sum, n int
	for i := range matches {
		if scored, allowed, ok := matches[i].ScoreFor(wrestlerID); ok {
			sum += scored - allowed
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// BonusWinRate is the fraction of the wrestler's wins earned by a dominant
// result (pin/fall, technical fall, major decision). The denominator is wins
// only; zero wins yields 0.0.
func BonusWinRate(matches []models.Match, wrestlerID int64) float64 {
	var wins, bonus int
	for i := range matches {
		if matches[i].WinnerID != wrestlerID {
			continue
		}
		wins++
		if models.IsBonusResult(matches[i].ResultType) {
			bonus++
		}
	}
	if wins == 0 {
		return 0
	}
	return float64(bonus) / float64(wins)
}

// ResultTypeRates breaks the wrestler's wins down by dominant result kind.
func ResultTypeRates(matches []models.Match, wrestlerID int64) (pinRate, techFallRate, majorRate float64) {
	var wins, pins, techs, majors int
	for i := range matches {
		if matches[i].WinnerID != wrestlerID {
			continue
		}
		wins++
		switch matches[i].ResultType {
		case models.ResultPin, models.ResultFall:
			pins++
		case models.ResultTechFall, models.ResultTechAlt:
			techs++
		case models.ResultMajorDecision, models.ResultMajorAlt:
			majors++
		}
	}
	if wins == 0 {
		return 0, 0, 0
	}
	return float64(pins) / float64(wins), float64(techs) / float64(wins), float64(majors) / float64(wins)
}

// CloseMatchWinRate restricts to fully-scored matches decided by at most
// closeMatchMargin points and returns the win rate within that subset.
// An empty subset yields 0.0.
func CloseMatchWinRate(matches []models.Match, wrestlerID int64) float64 {
	var close, wins int
	for i := range matches {
		scored, allowed, ok := matches[i].ScoreFor(wrestlerID)
		if !ok {
			continue
		}
		diff := scored - allowed
		if diff < 0 {
			diff = -diff
		}
		if diff > closeMatchMargin {
			continue
		}
		close++
		if matches[i].WinnerID == wrestlerID {
			wins++
		}
	}
	if close == 0 {
		return 0
	}
	return float64(wins) / float64(close)
}

// Streak returns the wrestler's active run of consecutive same-outcome
// results: positive for a win streak, negative for a loss streak, magnitude
// is the run length. Matches must be ordered most recent first; the walk
// starts at the most recent result and stops at the first outcome flip,
// looking at most streakWindow matches back. A single match is ±1.
func Streak(matches []models.Match, wrestlerID int64) int {
	if len(matches) == 0 {
		return 0
	}
	window := matches
	if len(window) > streakWindow {
		window = window[:streakWindow]
	}
	latestWin := window[0].WinnerID == wrestlerID
	run := 0
	for i := range window {
		if (window[i].WinnerID == wrestlerID) != latestWin {
			break
		}
		run++
	}
	if latestWin {
		return run
	}
	return -run
}

// SplitByFormat partitions matches into dual-meet bouts (those grouped under
// a meet) and tournament bouts (those without one).
func SplitByFormat(matches []models.Match) (dual, tournament []models.Match) {
	for i := range matches {
		if matches[i].MeetID != nil {
			dual = append(dual, matches[i])
		} else {
			tournament = append(tournament, matches[i])
		}
	}
	return dual, tournament
}

// FilterWeightClass keeps only matches contested at the given weight class.
func FilterWeightClass(matches []models.Match, weightClassID int64) []models.Match {
	var out []models.Match
	for i := range matches {
		if matches[i].WeightClassID == weightClassID {
			out = append(out, matches[i])
		}
	}
	return out
}

// OvertimeRate is the fraction of duration-bearing matches that ran past
// regulation. Matches without a recorded duration are excluded; 0.0 when
// none have one.
func OvertimeRate(matches []models.Match) float64 {
	var timed, overtime int
	for i := range matches {
		d := matches[i].DurationSeconds
		if d == nil {
			continue
		}
		timed++
		if *d > overtimeThresholdSeconds {
			overtime++
		}
	}
	if timed == 0 {
		return 0
	}
	return float64(overtime) / float64(timed)
}

// AvgDuration averages recorded match durations in seconds. 0.0 when no
// match carries one.
func AvgDuration(matches []models.Match) float64 {
	var sum, timed int
	for i := range matches {
		if d := matches[i].DurationSeconds; d != nil {
			sum += *d
			timed++
		}
	}
	if timed == 0 {
		return 0
	}
	return float64(sum) / float64(timed)
}

// DaysSince returns whole calendar days between the most recent prior match
// and the reference time. Zero when there is no prior match.
func DaysSince(lastMatch, reference time.Time) int {
	if lastMatch.IsZero() || !lastMatch.Before(reference) {
		return 0
	}
	return int(reference.Sub(lastMatch).Hours() / 24)
}

// MatchesPerWeek normalizes a trailing-window match count to a 7-day rate.
func MatchesPerWeek(count, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	return float64(count) * 7 / float64(windowDays)
}

// HeadToHeadWinRate is wrestler1's share of the pair's past meetings, with a
// 0.5 prior when the pair has never met.
func HeadToHeadWinRate(h *models.HeadToHead) float64 {
	if h == nil || h.TotalMatches == 0 {
		return 0.5
	}
	return float64(h.Wins1) / float64(h.TotalMatches)
}
