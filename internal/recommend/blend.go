// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package recommend

import (
	"math"
	"sort"
)

// Blend combines an oracle score and a bandit sample into the final ranking
// key, rounded to 4 decimals. When degraded, the bandit carries the oracle's
// weight as well.
func Blend(oracleScore, banditScore float64, w BlendWeights, degraded bool) float64 {
	var s float64
	if degraded {
		s = (w.Oracle + w.Bandit) * banditScore
	} else {
		s = w.Oracle*oracleScore + w.Bandit*banditScore
	}
	return round4(s)
}

// SortRanked orders candidates descending by blended score. The sort is
// stable, so ties keep their request order.
func SortRanked(items []RankedCandidate) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].BlendedScore > items[j].BlendedScore
	})
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
