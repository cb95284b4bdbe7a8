// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

// Package bandit implements the contextual Beta-Bernoulli Thompson sampler
// behind Wayfinder's exploration score. Each (place, context bucket) pair
// owns an independent Beta posterior starting from the uniform Beta(1,1)
// prior; binary rewards update it by exact conjugate counting.
package bandit

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/thomaspetersen1/wayfinder/internal/metrics"
	"github.com/thomaspetersen1/wayfinder/internal/recommend"
	"github.com/thomaspetersen1/wayfinder/internal/statefile"
)

// Observation thresholds for the uncertainty tiers reported by Explain.
const (
	highUncertaintyBelow   = 5
	mediumUncertaintyBelow = 20
)

// arm is one Beta posterior. Alpha counts successes plus one, Beta counts
// failures plus one.
type arm struct {
	Alpha int `json:"alpha"`
	Beta  int `json:"beta"`
}

func (a arm) mean() float64 {
	return float64(a.Alpha) / float64(a.Alpha+a.Beta)
}

func (a arm) observations() int {
	return a.Alpha + a.Beta - 2
}

// Sampler is the persistent contextual Thompson sampler. It satisfies
// recommend.Explorer and is safe for concurrent use.
type Sampler struct {
	mu   sync.Mutex
	arms map[string]arm
	file *statefile.File
	src  rand.Source
	log  zerolog.Logger
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSource injects a deterministic random source, used by tests.
func WithSource(src rand.Source) Option {
	return func(s *Sampler) { s.src = src }
}

// New loads the sampler's arm state from path. A missing or unreadable state
// file is not fatal: the sampler starts fresh and logs a warning, since the
// uniform prior is always a valid belief.
func New(path string, log zerolog.Logger, opts ...Option) (*Sampler, error) {
	s := &Sampler{
		arms: make(map[string]arm),
		file: statefile.New(path),
		src:  rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().UnixNano())>>16),
		log:  log,
	}
	for _, opt := range opts {
		opt(s)
	}

	var stored map[string]arm
	if err := s.file.Load(&stored); err != nil {
		if statefile.IsNotExist(err) {
			log.Info().Str("path", path).Msg("no bandit state file, starting fresh")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("bandit state unreadable, starting fresh")
		}
	} else {
		for k, a := range stored {
			if a.Alpha < 1 || a.Beta < 1 {
				log.Warn().Str("arm", k).Int("alpha", a.Alpha).Int("beta", a.Beta).Msg("dropping invalid arm")
				continue
			}
			s.arms[k] = a
		}
		log.Info().Int("arms", len(s.arms)).Str("path", path).Msg("bandit state loaded")
	}
	metrics.BanditArms.Set(float64(len(s.arms)))
	return s, nil
}

// Sample draws one Thompson sample per place from its (place, bucket) arm.
// Absent arms are created lazily at the uniform prior, so every sampled
// place shows up in the stats dump; the new arms reach disk with the next
// Update rather than triggering a write here.
func (s *Sampler) Sample(placeIDs []string, categories []recommend.Category, hour int) map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]float64, len(placeIDs))
	for i, id := range placeIDs {
		var cat recommend.Category
		if i < len(categories) {
			cat = categories[i]
		}
		a := s.armLocked(id, Bucket(cat, hour))
		out[id] = distuv.Beta{Alpha: float64(a.Alpha), Beta: float64(a.Beta), Src: s.src}.Rand()
	}
	metrics.BanditArms.Set(float64(len(s.arms)))
	return out
}

// Update folds a binary reward into the (place, bucket) arm and persists the
// full arm state. A persistence failure keeps the in-memory update and logs;
// the next successful save repairs the file.
func (s *Sampler) Update(placeID string, category recommend.Category, hour, reward int) {
	bucket := Bucket(category, hour)
	key := armKey(placeID, bucket)

	s.mu.Lock()
	a, ok := s.arms[key]
	if !ok {
		a = arm{Alpha: 1, Beta: 1}
	}
	if reward == 1 {
		a.Alpha++
	} else {
		a.Beta++
	}
	s.arms[key] = a
	metrics.BanditArms.Set(float64(len(s.arms)))
	err := s.file.Save(s.arms)
	s.mu.Unlock()

	if err != nil {
		metrics.StatePersistFailuresTotal.WithLabelValues("bandit").Inc()
		s.log.Error().Err(err).Str("arm", key).Msg("bandit state persist failed")
	}
	s.log.Debug().
		Str("arm", key).
		Int("reward", reward).
		Int("alpha", a.Alpha).
		Int("beta", a.Beta).
		Msg("arm updated")
}

// Explain reports the current belief about the (place, bucket) arm.
func (s *Sampler) Explain(placeID string, category recommend.Category, hour int) recommend.BanditExplanation {
	bucket := Bucket(category, hour)

	s.mu.Lock()
	a := s.armLocked(placeID, bucket)
	s.mu.Unlock()

	obs := a.observations()
	likes := a.Alpha - 1
	skips := a.Beta - 1

	var text string
	if obs < mediumUncertaintyBelow {
		text = fmt.Sprintf("In '%s' context: %d likes, %d skips. Still exploring (few observations).", bucket, likes, skips)
	} else {
		text = fmt.Sprintf("In '%s' context: %d likes, %d skips. Good confidence in this score.", bucket, likes, skips)
	}

	return recommend.BanditExplanation{
		Bucket:       bucket,
		Observations: obs,
		Mean:         a.mean(),
		Uncertainty:  uncertaintyTier(obs),
		Text:         text,
	}
}

// AllStats dumps every persisted arm keyed by "placeID|bucket".
func (s *Sampler) AllStats() map[string]recommend.ArmStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]recommend.ArmStats, len(s.arms))
	for key, a := range s.arms {
		pid, bucket := splitArmKey(key)
		out[key] = recommend.ArmStats{
			PlaceID:      pid,
			Bucket:       bucket,
			Alpha:        a.Alpha,
			Beta:         a.Beta,
			Mean:         a.mean(),
			Observations: a.observations(),
		}
	}
	return out
}

// armLocked returns the stored arm, creating it at the uniform prior when
// absent. Callers hold mu and decide whether the table gets persisted.
func (s *Sampler) armLocked(placeID, bucket string) arm {
	key := armKey(placeID, bucket)
	if a, ok := s.arms[key]; ok {
		return a
	}
	a := arm{Alpha: 1, Beta: 1}
	s.arms[key] = a
	return a
}

func uncertaintyTier(observations int) string {
	switch {
	case observations < highUncertaintyBelow:
		return "high"
	case observations < mediumUncertaintyBelow:
		return "medium"
	default:
		return "low"
	}
}

func splitArmKey(key string) (placeID, bucket string) {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '|' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}
