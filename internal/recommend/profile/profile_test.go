// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package profile

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/thomaspetersen1/wayfinder/internal/recommend"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "profiles.json"), zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestStore_SeedsPersonas(t *testing.T) {
	s := newTestStore(t)

	alex := s.Get("alex")
	if alex.CategoryFood != 0.8 {
		t.Errorf("alex food affinity = %v, want 0.8", alex.CategoryFood)
	}
	jordan := s.Get("jordan")
	if jordan.CategoryOutdoor != 0.9 {
		t.Errorf("jordan outdoor affinity = %v, want 0.9", jordan.CategoryOutdoor)
	}
}

func TestStore_GetUnknownIsNeutralAndWritesNothing(t *testing.T) {
	s := newTestStore(t)

	p := s.Get("stranger")
	if p != recommend.NeutralProfile() {
		t.Errorf("unknown user profile = %+v, want neutral", p)
	}
	// Reading must not create the user.
	s.mu.RLock()
	_, exists := s.profiles["stranger"]
	s.mu.RUnlock()
	if exists {
		t.Error("Get created a profile for an unknown user")
	}

	if p := s.Get(""); p != recommend.NeutralProfile() {
		t.Errorf("empty user ID profile = %+v, want neutral", p)
	}
}

func TestStore_UpdateEMA(t *testing.T) {
	s := newTestStore(t)

	// New user starts neutral: 0.5*0.9 + 1*0.1 = 0.55.
	s.Update("u1", recommend.CategoryFood, 1)
	if got := s.Get("u1").CategoryFood; got != 0.55 {
		t.Errorf("after positive: food = %v, want 0.55", got)
	}
	// Negative nudges down: 0.55*0.9 = 0.495.
	s.Update("u1", recommend.CategoryFood, 0)
	if got := s.Get("u1").CategoryFood; got != 0.495 {
		t.Errorf("after negative: food = %v, want 0.495", got)
	}
	// Untouched dimensions stay neutral.
	p := s.Get("u1")
	if p.CategoryOutdoor != 0.5 || p.PriceSensitivity != 0.5 || p.AdventureLevel != 0.5 {
		t.Errorf("untouched dimensions moved: %+v", p)
	}
}

func TestStore_FirstNegativeStep(t *testing.T) {
	s := newTestStore(t)

	// 0.5*0.9 + 0*0.1 = 0.45.
	s.Update("u1", recommend.CategoryOutdoor, 0)
	if got := s.Get("u1").CategoryOutdoor; got != 0.45 {
		t.Errorf("after negative: outdoor = %v, want 0.45", got)
	}
}

func TestStore_UpdateConvergesAndStaysInRange(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 200; i++ {
		s.Update("u1", recommend.CategoryCulture, 1)
	}
	got := s.Get("u1").CategoryCulture
	if got < 0.99 || got > 1.0 {
		t.Errorf("after 200 positives: culture = %v, want ~1.0 and <= 1", got)
	}

	for i := 0; i < 200; i++ {
		s.Update("u1", recommend.CategoryCulture, 0)
	}
	got = s.Get("u1").CategoryCulture
	if got < 0 || got > 0.01 {
		t.Errorf("after 200 negatives: culture = %v, want ~0 and >= 0", got)
	}
}

func TestStore_UpdateRoundsToThreeDecimals(t *testing.T) {
	s := newTestStore(t)

	s.Update("u1", recommend.CategoryFood, 1)
	s.Update("u1", recommend.CategoryFood, 1)
	got := s.Get("u1").CategoryFood
	// 0.55*0.9 + 0.1 = 0.595 exactly at 3 decimals.
	if math.Abs(got-0.595) > 1e-12 {
		t.Errorf("food = %v, want 0.595", got)
	}
}

func TestStore_UpdateUnmappedCategory(t *testing.T) {
	s := newTestStore(t)

	s.Update("u1", recommend.Category("spa"), 1)
	if p := s.Get("u1"); p != recommend.NeutralProfile() {
		t.Errorf("unmapped category moved the profile: %+v", p)
	}
}

func TestStore_PersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")

	s, err := New(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Update("u1", recommend.CategoryFood, 1)

	reloaded, err := New(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.Get("u1").CategoryFood; got != 0.55 {
		t.Errorf("reloaded food = %v, want 0.55", got)
	}
	// Persona seed survives alongside the organic user.
	if got := reloaded.Get("alex").CategoryFood; got != 0.8 {
		t.Errorf("reloaded alex food = %v, want 0.8", got)
	}
}

func TestStore_CorruptStateReseeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	if err := os.WriteFile(path, []byte("][["), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := New(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("New should absorb corrupt state, got %v", err)
	}
	if got := s.Get("alex").CategoryFood; got != 0.8 {
		t.Errorf("reseeded alex food = %v, want 0.8", got)
	}
}

func TestStore_ListAll(t *testing.T) {
	s := newTestStore(t)
	s.Update("alex", recommend.CategoryOutdoor, 1)

	all := s.ListAll()
	if len(all) != len(Personas) {
		t.Fatalf("ListAll = %d entries, want %d", len(all), len(Personas))
	}
	alex, ok := all["alex"]
	if !ok {
		t.Fatal("missing alex")
	}
	if alex.Name != "Alex (Norman)" || alex.City != "Norman" {
		t.Errorf("alex metadata = %q/%q", alex.Name, alex.City)
	}
	// Live profile, not the original seed: 0.2*0.9 + 0.1 = 0.28.
	if alex.Profile.CategoryOutdoor != 0.28 {
		t.Errorf("alex live outdoor = %v, want 0.28", alex.Profile.CategoryOutdoor)
	}
}
