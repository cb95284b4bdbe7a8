// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

// Package recommend implements the Wayfinder ranking engine.
//
// The engine blends two signals per candidate: a deterministic relevance
// score from an offline-trained oracle over a fixed 20-slot feature vector,
// and an exploration score drawn from a contextual Beta-Bernoulli bandit
// keyed by (place, time-of-day x category). Interaction feedback flows back
// into the bandit arms and into per-user preference profiles.
//
// Subpackages provide the concrete collaborators: bandit implements the
// Explorer interface, profile implements ProfileStore, and oracle implements
// Oracle. The engine itself is transport-agnostic.
package recommend
