// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/thomaspetersen1/wayfinder/internal/metrics"
)

// defaultFeedbackHour is assumed when a feedback event omits its hour.
const defaultFeedbackHour = 12

// Engine ranks candidates by blending an offline oracle score with a
// contextual Thompson sample, and routes interaction feedback back into the
// bandit and the user's profile.
type Engine struct {
	cfg       Config
	extractor *Extractor
	oracle    Oracle
	breaker   *gobreaker.CircuitBreaker[float64]
	explorer  Explorer
	profiles  ProfileStore
	log       zerolog.Logger
}

// NewEngine wires an Engine from its collaborators. The oracle is wrapped in
// a circuit breaker so a failing scorer degrades ranking to bandit-only
// instead of failing requests.
func NewEngine(cfg Config, oracle Oracle, explorer Explorer, profiles ProfileStore, log zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	if oracle == nil || explorer == nil || profiles == nil {
		return nil, fmt.Errorf("engine requires oracle, explorer and profile store")
	}

	e := &Engine{
		cfg:       cfg,
		extractor: NewExtractor(log),
		oracle:    oracle,
		explorer:  explorer,
		profiles:  profiles,
		log:       log,
	}
	e.breaker = gobreaker.NewCircuitBreaker[float64](gobreaker.Settings{
		Name:    "oracle",
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("oracle breaker state change")
		},
	})
	return e, nil
}

// Rank scores and orders the request's candidates. An empty candidate list
// yields an empty response, not an error. Oracle failure is absorbed: the
// response is marked degraded and the bandit sample carries the full weight.
func (e *Engine) Rank(ctx context.Context, req RankRequest) (RankResponse, error) {
	start := time.Now()

	reqID := req.RequestID
	if reqID == "" {
		reqID = uuid.NewString()
	}
	log := e.log.With().Str("request_id", reqID).Logger()

	candidates := req.Candidates
	if e.cfg.MaxCandidates > 0 && len(candidates) > e.cfg.MaxCandidates {
		log.Warn().
			Int("received", len(candidates)).
			Int("cap", e.cfg.MaxCandidates).
			Msg("candidate set truncated")
		candidates = candidates[:e.cfg.MaxCandidates]
	}
	metrics.RankCandidates.Observe(float64(len(candidates)))

	profile := e.profiles.Get(req.UserID)
	hour := resolveHour(req.Context.Hour)

	ids := make([]string, len(candidates))
	cats := make([]Category, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
		cats[i] = c.Category
	}
	samples := e.explorer.Sample(ids, cats, hour)

	degraded := false
	items := make([]RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		features := e.extractor.Extract(c, req.Preferences, req.Context, profile)

		var oracleScore float64
		if !degraded {
			s, err := e.scoreOracle(ctx, features)
			if err != nil {
				metrics.OracleFailuresTotal.Inc()
				log.Warn().Err(err).Str("place_id", c.ID).Msg("oracle unavailable, degrading to bandit-only")
				degraded = true
			} else {
				oracleScore = s
			}
		}

		bandit := samples[c.ID]
		items = append(items, RankedCandidate{
			Candidate:    c,
			OracleScore:  oracleScore,
			BanditScore:  bandit,
			BlendedScore: Blend(oracleScore, bandit, e.cfg.Blend, degraded),
		})
	}

	// On mid-request degradation, earlier candidates were blended with a
	// live oracle while later ones were not. Re-blend everything bandit-only
	// so a single request is internally consistent.
	if degraded {
		for i := range items {
			items[i].OracleScore = 0
			items[i].BlendedScore = Blend(0, items[i].BanditScore, e.cfg.Blend, true)
		}
	}

	SortRanked(items)

	elapsed := time.Since(start)
	metrics.RankRequestsTotal.WithLabelValues(fmt.Sprintf("%t", degraded)).Inc()
	metrics.RankLatency.Observe(elapsed.Seconds())
	log.Info().
		Int("candidates", len(items)).
		Bool("degraded", degraded).
		Dur("latency", elapsed).
		Msg("ranked candidates")

	return RankResponse{
		Items:     items,
		RequestID: reqID,
		UserID:    req.UserID,
		Degraded:  degraded,
		LatencyMS: elapsed.Milliseconds(),
		Timestamp: time.Now().UTC(),
	}, nil
}

func (e *Engine) scoreOracle(ctx context.Context, features []float64) (float64, error) {
	if e.cfg.OracleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.OracleTimeout)
		defer cancel()
	}
	return e.breaker.Execute(func() (float64, error) {
		return e.oracle.Score(ctx, features)
	})
}

// Feedback routes one interaction event. Ignored events touch no state and
// report the arm's current belief; learnable events update the arm, and the
// user's profile when a user ID is present.
func (e *Engine) Feedback(req FeedbackRequest) (FeedbackResult, error) {
	if req.PlaceID == "" {
		return FeedbackResult{}, fmt.Errorf("feedback requires a place_id")
	}

	hour := defaultFeedbackHour
	if req.Hour != nil {
		hour = *req.Hour
	}

	outcome := RouteEvent(req.EventType)
	metrics.FeedbackEventsTotal.WithLabelValues(string(outcome)).Inc()

	res := FeedbackResult{
		EventType: req.EventType,
		Outcome:   outcome,
		Reward:    -1,
	}

	reward, ok := outcome.Reward()
	if !ok {
		res.Explanation = e.explorer.Explain(req.PlaceID, req.Category, hour)
		e.log.Debug().
			Str("place_id", req.PlaceID).
			Str("event_type", req.EventType).
			Msg("feedback event ignored")
		return res, nil
	}
	res.Reward = reward

	e.explorer.Update(req.PlaceID, req.Category, hour, reward)
	res.Explanation = e.explorer.Explain(req.PlaceID, req.Category, hour)

	if req.UserID != "" {
		e.profiles.Update(req.UserID, req.Category, reward)
		p := e.profiles.Get(req.UserID)
		res.Profile = &p
	}

	e.log.Info().
		Str("place_id", req.PlaceID).
		Str("event_type", req.EventType).
		Str("outcome", string(outcome)).
		Int("reward", reward).
		Str("user_id", req.UserID).
		Msg("feedback applied")
	return res, nil
}

func resolveHour(h *int) int {
	if h != nil {
		return *h
	}
	return time.Now().Hour()
}
