// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package bandit

import (
	"fmt"

	"github.com/thomaspetersen1/wayfinder/internal/recommend"
)

// PeriodOf buckets an hour of day into a named period. Hours outside 0..23
// fall into night, same as the late hours they wrap into.
func PeriodOf(hour int) string {
	switch {
	case hour >= 6 && hour < 11:
		return "morning"
	case hour >= 11 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 21:
		return "evening"
	default:
		return "night"
	}
}

// Bucket builds the context bucket for a category and hour, e.g.
// "evening_food". Unmapped category strings key their own buckets so their
// feedback stays isolated; only an absent category defaults to
// entertainment.
func Bucket(category recommend.Category, hour int) string {
	if category == "" {
		category = recommend.CategoryEntertainment
	}
	return PeriodOf(hour) + "_" + string(category)
}

// armKey is the canonical persistence key for one (place, bucket) arm.
func armKey(placeID, bucket string) string {
	return fmt.Sprintf("%s|%s", placeID, bucket)
}
