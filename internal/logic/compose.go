package logic

import "github.com/Silver0524/MatPredict/internal/models"

// ComposeMatchupFeatures flattens two wrestlers' feature profiles and their
// head-to-head record into the single mapping a model schema binds against.
// Per-side statistics are prefixed w1_/w2_. The differential features are
// emitted here verbatim even though they are derivable from the per-side
// values: the vector binder looks names up, it never recomputes.
func ComposeMatchupFeatures(f1, f2 *models.WrestlerFeatures, h2h *models.HeadToHead) map[string]float64 {
	m1 := f1.Map()
	m2 := f2.Map()

	composed := make(map[string]float64, 2*len(m1)+7)
	for name, v := range m1 {
		composed["w1_"+name] = v
	}
	for name, v := range m2 {
		composed["w2_"+name] = v
	}

	total := 0
	if h2h != nil {
		total = h2h.TotalMatches
	}
	composed["h2h_matches"] = float64(total)
	composed["h2h_win_rate"] = HeadToHeadWinRate(h2h)

	composed["win_rate_diff_5"] = f1.WinRateLast5 - f2.WinRateLast5
	composed["win_rate_diff_10"] = f1.WinRateLast10 - f2.WinRateLast10
	composed["point_diff_last_5"] = f1.AvgPointDiffLast5 - f2.AvgPointDiffLast5
	composed["experience_diff"] = float64(f1.Experience - f2.Experience)
	composed["rest_diff"] = float64(f1.DaysSinceLastMatch - f2.DaysSinceLastMatch)

	return composed
}
