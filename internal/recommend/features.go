// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package recommend

import (
	"math"
	"time"

	"github.com/rs/zerolog"
)

// NumFeatures is the fixed width of the extracted feature vector.
const NumFeatures = 20

// Feature slot indices. The oracle is trained against this exact layout, so
// the order is frozen.
const (
	FeatCompositeQuality = iota
	FeatPriceMatch
	FeatTrending
	FeatDistanceDecay
	FeatTimeAppropriate
	FeatDurationFit
	FeatCategoryTime
	FeatWeatherOutdoor
	FeatDayOfWeek
	FeatIsOpen
	FeatCatFood
	FeatCatOutdoor
	FeatCatEntertainment
	FeatCatCulture
	FeatAffFood
	FeatAffOutdoor
	FeatAffEntertainment
	FeatAffCulture
	FeatUserPriceMatch
	FeatUserCategoryAff
)

// Extraction defaults for absent inputs.
const (
	defaultRating      = 3.0
	defaultReviewCount = 100
	defaultPriceLevel  = 2
	defaultDuration    = 1.0
	defaultWindow      = 2.0
	defaultTravelKM    = 1.0
)

// Extractor computes the fixed 20-slot feature vector for one candidate.
// It is stateless and safe for concurrent use.
type Extractor struct {
	log zerolog.Logger
}

// NewExtractor returns an Extractor that logs default substitutions at warn
// level through the given logger.
func NewExtractor(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract computes the feature vector for one candidate under the given
// preferences, context and user profile. Missing inputs resolve to documented
// defaults and emit a warning; Extract never fails.
func (e *Extractor) Extract(c Candidate, prefs Preferences, rc RequestContext, profile UserProfile) []float64 {
	f := make([]float64, NumFeatures)

	rating := defaultRating
	if c.Rating != nil {
		rating = *c.Rating
	} else {
		e.warnDefault(c.ID, "rating", defaultRating)
	}
	reviews := float64(defaultReviewCount)
	if c.ReviewCount != nil {
		reviews = float64(*c.ReviewCount)
	} else {
		e.warnDefault(c.ID, "review_count", defaultReviewCount)
	}

	cat := c.Category
	if cat == "" {
		cat = CategoryEntertainment
		e.warnDefault(c.ID, "category", string(CategoryEntertainment))
	}

	price := defaultPriceLevel
	if c.PriceLevel != nil {
		price = *c.PriceLevel
	} else {
		e.warnDefault(c.ID, "price_level", defaultPriceLevel)
	}
	userPrice := defaultPriceLevel
	if prefs.PriceLevel != nil {
		userPrice = *prefs.PriceLevel
	}

	duration := c.TypicalDuration
	if duration == 0 {
		duration = defaultDuration
	}
	window := prefs.Duration
	if window == 0 {
		window = defaultWindow
	}

	now := time.Now()
	hour := now.Hour()
	if rc.Hour != nil {
		hour = *rc.Hour
	}
	day := mondayIndexed(now.Weekday())
	if rc.DayOfWeek != nil {
		day = *rc.DayOfWeek
	}

	weather := rc.Weather
	if weather == "" {
		weather = "clear"
	}
	mode := rc.TravelMode
	if mode == "" {
		mode = TravelWalking
	}

	// Quality: normalized rating damped by review volume on a log scale
	// that saturates at 1000 reviews.
	f[FeatCompositeQuality] = (rating / 5.0) * math.Min(1.0, math.Log(1+reviews)/math.Log(1001))

	// Price proximity between the place and the stated preference.
	f[FeatPriceMatch] = 1.0 - math.Abs(float64(price)-float64(userPrice))/3.0

	f[FeatTrending] = trendingScore(reviews, rating)
	f[FeatDistanceDecay] = distanceDecay(c, rc, mode)
	f[FeatTimeAppropriate] = timeAppropriateness(cat, hour)
	f[FeatDurationFit] = durationEfficiency(duration, window)

	// Cross term between category ordinal and hour of day.
	f[FeatCategoryTime] = float64(cat.Index())*0.25 + float64(hour)/24.0*0.75

	f[FeatWeatherOutdoor] = weatherOutdoorMatch(cat, weather)
	f[FeatDayOfWeek] = float64(day) / 6.0

	open := true
	if c.IsOpen != nil {
		open = *c.IsOpen
	}
	if open {
		f[FeatIsOpen] = 1.0
	}

	switch cat {
	case CategoryFood:
		f[FeatCatFood] = 1.0
	case CategoryOutdoor:
		f[FeatCatOutdoor] = 1.0
	case CategoryEntertainment:
		f[FeatCatEntertainment] = 1.0
	case CategoryCulture:
		f[FeatCatCulture] = 1.0
	}

	f[FeatAffFood] = profile.CategoryFood
	f[FeatAffOutdoor] = profile.CategoryOutdoor
	f[FeatAffEntertainment] = profile.CategoryEntertainment
	f[FeatAffCulture] = profile.CategoryCulture

	f[FeatUserPriceMatch] = 1.0 - math.Abs(profile.PriceSensitivity-float64(price)/4.0)
	f[FeatUserCategoryAff] = profile.Affinity(cat)

	return f
}

func (e *Extractor) warnDefault(placeID, field string, def any) {
	e.log.Warn().
		Str("place_id", placeID).
		Str("field", field).
		Interface("default", def).
		Msg("missing candidate field, using default")
}

// mondayIndexed converts Go's Sunday-indexed weekday to the Monday-indexed
// 0..6 range the extractor uses.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// trendingScore brackets popularity momentum from review volume and rating.
func trendingScore(reviews, rating float64) float64 {
	switch {
	case reviews < 10:
		return 0.3
	case reviews < 50 && rating >= 4.3:
		return 0.9
	case reviews < 200 && rating >= 4.0:
		return 0.7
	case reviews > 500 && rating >= 4.0:
		return 0.5
	default:
		return 0.4
	}
}

// distanceDecay converts travel minutes to an approximate distance in km and
// applies per-mode exponential decay. An unknown distance scores as 1 km.
func distanceDecay(c Candidate, rc RequestContext, mode TravelMode) float64 {
	var minutes float64
	known := false
	if m, ok := rc.TravelMinutes[c.ID]; ok {
		minutes, known = m, true
	} else if c.TravelMinutes != nil {
		minutes, known = *c.TravelMinutes, true
	}

	km := defaultTravelKM
	if known {
		speed := 0.07 // km per minute, walking
		switch mode {
		case TravelDriving:
			speed = 0.5
		case TravelTransit:
			speed = 0.3
		}
		km = minutes * speed
	}

	lambda := 0.5
	switch mode {
	case TravelWalking:
		lambda = 0.8
	case TravelDriving:
		lambda = 0.15
	case TravelTransit:
		lambda = 0.25
	}
	return math.Exp(-lambda * km)
}

// timeAppropriateness scores how well the category fits the time of day.
func timeAppropriateness(cat Category, hour int) float64 {
	period := periodOrdinal(hour)
	var row [4]float64
	switch cat {
	case CategoryFood:
		row = [4]float64{0.6, 0.9, 1.0, 0.5}
	case CategoryOutdoor:
		row = [4]float64{0.7, 1.0, 0.6, 0.1}
	case CategoryEntertainment:
		row = [4]float64{0.3, 0.7, 1.0, 0.8}
	case CategoryCulture:
		row = [4]float64{0.5, 1.0, 0.7, 0.1}
	default:
		return 0.5
	}
	return row[period]
}

// periodOrdinal buckets an hour into morning=0, afternoon=1, evening=2,
// night=3.
func periodOrdinal(hour int) int {
	switch {
	case hour >= 6 && hour < 11:
		return 0
	case hour >= 11 && hour < 17:
		return 1
	case hour >= 17 && hour < 21:
		return 2
	default:
		return 3
	}
}

// durationEfficiency scores how well the typical visit fills the available
// window without overflowing it.
func durationEfficiency(duration, window float64) float64 {
	if window <= 0 {
		return 0.5
	}
	fill := duration / window
	switch {
	case fill > 1.0:
		return 0.0
	case fill > 0.95:
		return 0.6
	case fill >= 0.5 && fill <= 0.9:
		return 1.0
	case fill < 0.3:
		return 0.3
	default:
		return 0.7
	}
}

// weatherOutdoorMatch scores weather suitability. Non-outdoor categories are
// weather-neutral at 0.5.
func weatherOutdoorMatch(cat Category, weather string) float64 {
	if cat != CategoryOutdoor {
		return 0.5
	}
	switch weather {
	case "clear", "sunny":
		return 1.0
	case "partly_cloudy":
		return 0.8
	case "clouds", "cloudy":
		return 0.7
	case "overcast":
		return 0.5
	case "drizzle":
		return 0.2
	case "rain", "snow":
		return 0.2
	case "thunderstorm":
		return 0.0
	default:
		return 0.5
	}
}
