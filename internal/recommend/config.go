// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package recommend

import (
	"fmt"
	"math"
	"time"
)

// BlendWeights are the oracle/bandit mixing weights. They must sum to 1.
type BlendWeights struct {
	Oracle float64 `koanf:"oracle" json:"oracle" validate:"gte=0,lte=1"`
	Bandit float64 `koanf:"bandit" json:"bandit" validate:"gte=0,lte=1"`
}

// Config controls the ranking engine.
type Config struct {
	// Blend is the oracle/bandit score mix.
	Blend BlendWeights `koanf:"blend" json:"blend"`

	// MaxCandidates caps the candidate set per request. 0 means no cap.
	MaxCandidates int `koanf:"max_candidates" json:"max_candidates" validate:"gte=0"`

	// OracleTimeout bounds a single oracle scoring pass.
	OracleTimeout time.Duration `koanf:"oracle_timeout" json:"oracle_timeout" validate:"gte=0"`

	// BreakerFailures is the consecutive oracle failure count that opens
	// the circuit breaker.
	BreakerFailures uint32 `koanf:"breaker_failures" json:"breaker_failures" validate:"gte=1"`

	// BreakerCooldown is how long the breaker stays open before probing.
	BreakerCooldown time.Duration `koanf:"breaker_cooldown" json:"breaker_cooldown" validate:"gte=0"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		Blend:           BlendWeights{Oracle: 0.7, Bandit: 0.3},
		MaxCandidates:   200,
		OracleTimeout:   500 * time.Millisecond,
		BreakerFailures: 5,
		BreakerCooldown: 30 * time.Second,
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.Blend.Oracle < 0 || c.Blend.Bandit < 0 {
		return fmt.Errorf("blend weights must be non-negative, got oracle=%v bandit=%v", c.Blend.Oracle, c.Blend.Bandit)
	}
	if sum := c.Blend.Oracle + c.Blend.Bandit; math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("blend weights must sum to 1, got %v", sum)
	}
	if c.MaxCandidates < 0 {
		return fmt.Errorf("max_candidates must be non-negative, got %d", c.MaxCandidates)
	}
	if c.BreakerFailures == 0 {
		return fmt.Errorf("breaker_failures must be at least 1")
	}
	return nil
}
