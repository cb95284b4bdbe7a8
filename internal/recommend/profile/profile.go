// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

// Package profile stores per-user preference vectors and nudges them with an
// exponential moving average as feedback arrives.
package profile

import (
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/thomaspetersen1/wayfinder/internal/metrics"
	"github.com/thomaspetersen1/wayfinder/internal/recommend"
	"github.com/thomaspetersen1/wayfinder/internal/statefile"
)

// emaAlpha is the learning rate: each reward moves the touched affinity 10%
// of the way toward the observed outcome.
const emaAlpha = 0.1

// Entry pairs a live profile with its persona metadata, when the user is a
// seeded persona.
type Entry struct {
	Name        string                `json:"name,omitempty"`
	Description string                `json:"description,omitempty"`
	Location    *Location             `json:"location,omitempty"`
	City        string                `json:"city,omitempty"`
	Profile     recommend.UserProfile `json:"profile"`
}

// Store is the persistent per-user profile store. It satisfies
// recommend.ProfileStore and is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]recommend.UserProfile
	file     *statefile.File
	log      zerolog.Logger
}

// New loads profiles from path. When the file is missing or unreadable the
// store seeds itself from the built-in personas and persists that seed, so a
// fresh deployment has recognizable users from the first request.
func New(path string, log zerolog.Logger) (*Store, error) {
	s := &Store{
		profiles: make(map[string]recommend.UserProfile),
		file:     statefile.New(path),
		log:      log,
	}

	var stored map[string]recommend.UserProfile
	if err := s.file.Load(&stored); err != nil {
		if statefile.IsNotExist(err) {
			log.Info().Str("path", path).Msg("no profile state file, seeding personas")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("profile state unreadable, seeding personas")
		}
		for id, p := range Personas {
			s.profiles[id] = p.Profile
		}
		if err := s.file.Save(s.profiles); err != nil {
			metrics.StatePersistFailuresTotal.WithLabelValues("profiles").Inc()
			log.Error().Err(err).Msg("persisting seeded profiles failed")
		}
	} else {
		s.profiles = stored
		log.Info().Int("profiles", len(stored)).Str("path", path).Msg("profile state loaded")
	}
	metrics.UserProfiles.Set(float64(len(s.profiles)))
	return s, nil
}

// Get returns the user's profile. Unknown or empty IDs get the neutral
// profile, and nothing is written: a user exists only once they give
// feedback.
func (s *Store) Get(userID string) recommend.UserProfile {
	if userID == "" {
		return recommend.NeutralProfile()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[userID]; ok {
		return p
	}
	return recommend.NeutralProfile()
}

// Update nudges the user's affinity for the category toward the reward and
// persists. Only the touched category moves; the other five dimensions stay
// put. Unmapped categories change nothing.
func (s *Store) Update(userID string, category recommend.Category, reward int) {
	if userID == "" {
		return
	}

	s.mu.Lock()
	p, ok := s.profiles[userID]
	if !ok {
		p = recommend.NeutralProfile()
	}

	old := p.Affinity(category)
	target := 0.0
	if reward == 1 {
		target = 1.0
	}
	next := clamp01(round3(old*(1-emaAlpha) + target*emaAlpha))
	if !p.SetAffinity(category, next) {
		s.mu.Unlock()
		s.log.Debug().Str("user_id", userID).Str("category", string(category)).Msg("unmapped category, profile untouched")
		return
	}
	s.profiles[userID] = p
	metrics.UserProfiles.Set(float64(len(s.profiles)))
	err := s.file.Save(s.profiles)
	s.mu.Unlock()

	if err != nil {
		metrics.StatePersistFailuresTotal.WithLabelValues("profiles").Inc()
		s.log.Error().Err(err).Str("user_id", userID).Msg("profile persist failed")
	}
	s.log.Debug().
		Str("user_id", userID).
		Str("category", string(category)).
		Float64("from", old).
		Float64("to", next).
		Msg("profile nudged")
}

// ListAll returns every persona merged with its live profile. Personas with
// no stored state yet report the neutral profile.
func (s *Store) ListAll() map[string]Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Entry, len(Personas))
	for id, persona := range Personas {
		p, ok := s.profiles[id]
		if !ok {
			p = recommend.NeutralProfile()
		}
		out[id] = Entry{
			Name:        persona.Name,
			Description: persona.Description,
			Location:    persona.Location,
			City:        persona.City,
			Profile:     p,
		}
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
