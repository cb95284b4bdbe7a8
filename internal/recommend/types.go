// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package recommend

import (
	"context"
	"time"
)

// Category classifies a candidate place or activity.
type Category string

// Known categories. Anything else is treated as unmapped and falls back to
// documented defaults rather than being rejected.
const (
	CategoryFood          Category = "food"
	CategoryOutdoor       Category = "outdoor"
	CategoryEntertainment Category = "entertainment"
	CategoryCulture       Category = "culture"
)

// Known reports whether the category is one of the four mapped categories.
func (c Category) Known() bool {
	switch c {
	case CategoryFood, CategoryOutdoor, CategoryEntertainment, CategoryCulture:
		return true
	default:
		return false
	}
}

// Index returns the ordinal used for the category-time interaction feature
// and the one-hot block. Unmapped categories share the entertainment slot
// ordinal, matching the extractor's category default.
func (c Category) Index() int {
	switch c {
	case CategoryFood:
		return 0
	case CategoryOutdoor:
		return 1
	case CategoryEntertainment:
		return 2
	case CategoryCulture:
		return 3
	default:
		return 2
	}
}

// TravelMode is how the user travels to a candidate.
type TravelMode string

// Known travel modes. An unknown mode uses a middle-ground decay coefficient.
const (
	TravelWalking TravelMode = "walking"
	TravelDriving TravelMode = "driving"
	TravelTransit TravelMode = "transit"
)

// Candidate is a place or activity supplied per request. Optional fields are
// pointers so that "absent" is distinguishable from a legitimate zero; absent
// fields resolve to documented defaults during feature extraction.
type Candidate struct {
	// ID uniquely identifies the place.
	ID string `json:"id"`

	// Name is the display name, passed through untouched.
	Name string `json:"name,omitempty"`

	// Rating is the average rating in [0, 5]. Default: 3.0.
	Rating *float64 `json:"rating,omitempty"`

	// ReviewCount is the number of ratings. Default: 100.
	ReviewCount *int `json:"review_count,omitempty"`

	// Category is the place category. Default: entertainment.
	Category Category `json:"category,omitempty"`

	// PriceLevel is the price bracket in {0..4}. Default: 2.
	PriceLevel *int `json:"price_level,omitempty"`

	// TypicalDuration is the typical visit length in hours. Default: 1.0.
	TypicalDuration float64 `json:"typical_duration,omitempty"`

	// TravelMinutes is the travel time from the user, when known.
	TravelMinutes *float64 `json:"travel_minutes,omitempty"`

	// IsOpen reports whether the place is open right now. Default: true.
	IsOpen *bool `json:"is_open,omitempty"`
}

// Preferences carries the per-request user preferences.
type Preferences struct {
	// PriceLevel is the preferred price bracket in {0..4}. Default: 2.
	PriceLevel *int `json:"price_level,omitempty"`

	// Duration is the available time window in hours. Default: 2.0.
	Duration float64 `json:"duration,omitempty"`

	// Categories is the set of preferred categories.
	Categories []Category `json:"categories,omitempty"`
}

// RequestContext carries the situational signals for a ranking request.
type RequestContext struct {
	// Hour is the local hour in 0..23. Defaults to the current hour.
	Hour *int `json:"hour,omitempty"`

	// DayOfWeek is the day in 0..6 (0=Monday). Defaults to today.
	DayOfWeek *int `json:"day_of_week,omitempty"`

	// Weather is the current condition (clear, rain, ...). Default: clear.
	Weather string `json:"weather,omitempty"`

	// TravelMode is how the user travels. Default: walking.
	TravelMode TravelMode `json:"travel_mode,omitempty"`

	// TravelMinutes maps candidate ID to travel time, overriding any
	// per-candidate value.
	TravelMinutes map[string]float64 `json:"travel_minutes,omitempty"`
}

// UserProfile is a six-dimensional affinity vector, every value in [0, 1].
// 0.5 on every axis is the neutral profile used for unknown users.
type UserProfile struct {
	CategoryFood          float64 `json:"category_food"`
	CategoryOutdoor       float64 `json:"category_outdoor"`
	CategoryEntertainment float64 `json:"category_entertainment"`
	CategoryCulture       float64 `json:"category_culture"`
	PriceSensitivity      float64 `json:"price_sensitivity"`
	AdventureLevel        float64 `json:"adventure_level"`
}

// NeutralProfile returns the profile used before any feedback is observed.
func NeutralProfile() UserProfile {
	return UserProfile{
		CategoryFood:          0.5,
		CategoryOutdoor:       0.5,
		CategoryEntertainment: 0.5,
		CategoryCulture:       0.5,
		PriceSensitivity:      0.5,
		AdventureLevel:        0.5,
	}
}

// Affinity returns the affinity for the given category, or 0.5 for an
// unmapped category.
func (p UserProfile) Affinity(c Category) float64 {
	switch c {
	case CategoryFood:
		return p.CategoryFood
	case CategoryOutdoor:
		return p.CategoryOutdoor
	case CategoryEntertainment:
		return p.CategoryEntertainment
	case CategoryCulture:
		return p.CategoryCulture
	default:
		return 0.5
	}
}

// SetAffinity sets the affinity for the given category.
// Returns false for an unmapped category, leaving the profile untouched.
func (p *UserProfile) SetAffinity(c Category, v float64) bool {
	switch c {
	case CategoryFood:
		p.CategoryFood = v
	case CategoryOutdoor:
		p.CategoryOutdoor = v
	case CategoryEntertainment:
		p.CategoryEntertainment = v
	case CategoryCulture:
		p.CategoryCulture = v
	default:
		return false
	}
	return true
}

// RankRequest is a ranking request for a set of candidates.
type RankRequest struct {
	// Candidates is the candidate set to rank.
	Candidates []Candidate `json:"candidates"`

	// Preferences carries the per-request preferences.
	Preferences Preferences `json:"preferences"`

	// Context carries the situational signals.
	Context RequestContext `json:"context"`

	// UserID selects the profile used for personalization features.
	// Empty means the neutral profile; nothing is written for unknown IDs.
	UserID string `json:"user_id,omitempty"`

	// RequestID is a unique identifier for tracing. Generated if empty.
	RequestID string `json:"request_id,omitempty"`
}

// RankedCandidate is a candidate annotated with its scores.
type RankedCandidate struct {
	Candidate

	// OracleScore is the offline relevance score in [0, 1].
	OracleScore float64 `json:"oracle_score"`

	// BanditScore is the Thompson sample from the candidate's arm.
	BanditScore float64 `json:"bandit_score"`

	// BlendedScore is the final ranking key, rounded to 4 decimals.
	BlendedScore float64 `json:"blended_score"`
}

// RankResponse is the ordered ranking result.
type RankResponse struct {
	// Items is sorted descending by blended score; ties keep request order.
	Items []RankedCandidate `json:"items"`

	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// UserID echoes the profile used, if any.
	UserID string `json:"user_id,omitempty"`

	// Degraded reports that the oracle was unavailable and the bandit score
	// carried the full blend weight.
	Degraded bool `json:"degraded"`

	// LatencyMS is the total ranking latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// FeedbackRequest is an inbound interaction event.
type FeedbackRequest struct {
	// PlaceID identifies the place the event refers to.
	PlaceID string `json:"place_id"`

	// Category is the place category at event time.
	Category Category `json:"category,omitempty"`

	// Hour is the local hour the event occurred, 0..23. Default: 12.
	Hour *int `json:"hour,omitempty"`

	// EventType is the raw interaction tag (navigate, like, click, ...).
	EventType string `json:"event_type"`

	// UserID, when present, routes the reward into that user's profile.
	UserID string `json:"user_id,omitempty"`
}

// FeedbackResult reports what the engine learned from one event.
type FeedbackResult struct {
	// EventType echoes the raw event tag.
	EventType string `json:"event_type"`

	// Outcome is the routed learning outcome.
	Outcome Outcome `json:"outcome"`

	// Reward is 1 or 0 when Outcome is positive or negative; -1 for ignore.
	Reward int `json:"reward"`

	// Explanation is the post-update belief about the (place, bucket) arm.
	Explanation BanditExplanation `json:"explanation"`

	// Profile is the post-update profile when UserID was present.
	Profile *UserProfile `json:"profile,omitempty"`
}

// BanditExplanation is a human-readable snapshot of one arm's posterior.
type BanditExplanation struct {
	// Bucket is the context bucket, e.g. "morning_food".
	Bucket string `json:"bucket"`

	// Observations is the number of feedback events folded into the arm.
	Observations int `json:"observations"`

	// Mean is the posterior mean alpha/(alpha+beta).
	Mean float64 `json:"mean"`

	// Uncertainty is "high" (<5 observations), "medium" (<20) or "low".
	Uncertainty string `json:"uncertainty"`

	// Text is a one-line explanation for display.
	Text string `json:"text"`
}

// ArmStats is a read-only dump entry for one bandit arm.
type ArmStats struct {
	PlaceID      string  `json:"place_id"`
	Bucket       string  `json:"bucket"`
	Alpha        int     `json:"alpha"`
	Beta         int     `json:"beta"`
	Mean         float64 `json:"mean"`
	Observations int     `json:"observations"`
}

// Explorer is the exploration model consumed by the engine. Implemented by
// the bandit package.
type Explorer interface {
	// Sample draws one exploration score per place from its contextual arm.
	Sample(placeIDs []string, categories []Category, hour int) map[string]float64

	// Update folds a reward into the (place, bucket) arm and persists.
	Update(placeID string, category Category, hour, reward int)

	// Explain returns the current belief about the (place, bucket) arm.
	Explain(placeID string, category Category, hour int) BanditExplanation

	// AllStats dumps every arm keyed by "placeID|bucket".
	AllStats() map[string]ArmStats
}

// ProfileStore is the per-user preference store consumed by the engine.
// Implemented by the profile package.
type ProfileStore interface {
	// Get returns the user's profile, or the neutral profile for an
	// unknown or empty ID. Never writes.
	Get(userID string) UserProfile

	// Update nudges the user's affinity for the category toward the reward
	// and persists. A new user starts from the neutral profile.
	Update(userID string, category Category, reward int)
}

// Oracle is the offline-trained relevance scorer consumed by the engine.
// Score must be deterministic for a fixed vector and return a value in [0, 1].
type Oracle interface {
	Score(ctx context.Context, features []float64) (float64, error)
}
