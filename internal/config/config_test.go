// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.Blend.Oracle != 0.7 || cfg.Engine.Blend.Bandit != 0.3 {
		t.Errorf("default blend = %+v", cfg.Engine.Blend)
	}
	if cfg.State.Dir != "data" {
		t.Errorf("default state dir = %q", cfg.State.Dir)
	}
	if cfg.BanditPath() != "data/bandit_state.json" {
		t.Errorf("bandit path = %q", cfg.BanditPath())
	}
	if cfg.ProfilesPath() != "data/user_profiles.json" {
		t.Errorf("profiles path = %q", cfg.ProfilesPath())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q", cfg.Logging.Level)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
engine:
  max_candidates: 50
  breaker_cooldown: 10s
state:
  dir: /var/lib/wayfinder
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.MaxCandidates != 50 {
		t.Errorf("max candidates = %d, want 50", cfg.Engine.MaxCandidates)
	}
	if cfg.Engine.BreakerCooldown != 10*time.Second {
		t.Errorf("breaker cooldown = %v, want 10s", cfg.Engine.BreakerCooldown)
	}
	if cfg.BanditPath() != "/var/lib/wayfinder/bandit_state.json" {
		t.Errorf("bandit path = %q", cfg.BanditPath())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	// Unset keys keep their defaults.
	if cfg.Engine.Blend.Oracle != 0.7 {
		t.Errorf("blend oracle = %v, want default 0.7", cfg.Engine.Blend.Oracle)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  max_candidates: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("WAYFINDER_ENGINE_MAX_CANDIDATES", "10")
	t.Setenv("WAYFINDER_ORACLE_MODEL_PATH", "/models/forest.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.MaxCandidates != 10 {
		t.Errorf("max candidates = %d, want env override 10", cfg.Engine.MaxCandidates)
	}
	if cfg.Oracle.ModelPath != "/models/forest.json" {
		t.Errorf("model path = %q", cfg.Oracle.ModelPath)
	}
}

func TestLoad_RejectsBadBlend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "engine:\n  blend:\n    oracle: 0.9\n    bandit: 0.3\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for blend weights not summing to 1")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"WAYFINDER_ENGINE_MAX_CANDIDATES", "engine.max_candidates"},
		{"WAYFINDER_ENGINE_BLEND_ORACLE", "engine.blend.oracle"},
		{"WAYFINDER_STATE_DIR", "state.dir"},
		{"WAYFINDER_LOGGING_LEVEL", "logging.level"},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}