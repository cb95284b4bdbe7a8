// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

// Package config loads the application configuration with layered sources:
// built-in defaults, then an optional YAML file, then environment variables.
// Precedence is ENV > file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/thomaspetersen1/wayfinder/internal/logging"
	"github.com/thomaspetersen1/wayfinder/internal/recommend"
)

// DefaultConfigPaths lists where config files are searched, in order. The
// first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/wayfinder/config.yaml",
	"/etc/wayfinder/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix namespaces Wayfinder's environment variables:
// WAYFINDER_ENGINE_MAX_CANDIDATES -> engine.max_candidates.
const envPrefix = "WAYFINDER_"

// StateConfig locates the persisted learning state.
type StateConfig struct {
	// Dir is the directory holding the JSON state files.
	Dir string `koanf:"dir" validate:"required"`

	// BanditFile is the bandit arm state file name inside Dir.
	BanditFile string `koanf:"bandit_file" validate:"required"`

	// ProfilesFile is the user profile state file name inside Dir.
	ProfilesFile string `koanf:"profiles_file" validate:"required"`
}

// OracleConfig locates the offline-trained model snapshot.
type OracleConfig struct {
	// ModelPath is the JSON model snapshot. Empty selects the neutral
	// fallback scorer.
	ModelPath string `koanf:"model_path"`
}

// Config is the full application configuration.
type Config struct {
	Engine  recommend.Config `koanf:"engine"`
	State   StateConfig      `koanf:"state"`
	Oracle  OracleConfig     `koanf:"oracle"`
	Logging logging.Config   `koanf:"logging"`
}

func defaultConfig() *Config {
	return &Config{
		Engine: recommend.DefaultConfig(),
		State: StateConfig{
			Dir:          "data",
			BanditFile:   "bandit_state.json",
			ProfilesFile: "user_profiles.json",
		},
		Oracle:  OracleConfig{ModelPath: ""},
		Logging: logging.DefaultConfig(),
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// WAYFINDER_* environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks struct tags and cross-field consistency.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if c.Engine.OracleTimeout < 0 || c.Engine.BreakerCooldown < 0 {
		return fmt.Errorf("engine timeouts must be non-negative")
	}
	return nil
}

// BanditPath is the full path of the bandit state file.
func (c *Config) BanditPath() string {
	return filepath.Join(c.State.Dir, c.State.BanditFile)
}

// ProfilesPath is the full path of the profile state file.
func (c *Config) ProfilesPath() string {
	return filepath.Join(c.State.Dir, c.State.ProfilesFile)
}

// envTransformFunc maps environment variable names to koanf paths. Keys with
// underscores in their leaf name need an explicit mapping; everything else
// follows the generic SECTION_KEY -> section.key rule.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

	mappings := map[string]string{
		"engine_max_candidates":   "engine.max_candidates",
		"engine_oracle_timeout":   "engine.oracle_timeout",
		"engine_breaker_failures": "engine.breaker_failures",
		"engine_breaker_cooldown": "engine.breaker_cooldown",
		"engine_blend_oracle":     "engine.blend.oracle",
		"engine_blend_bandit":     "engine.blend.bandit",
		"state_bandit_file":       "state.bandit_file",
		"state_profiles_file":     "state.profiles_file",
		"oracle_model_path":       "oracle.model_path",
	}
	if mapped, ok := mappings[key]; ok {
		return mapped
	}
	return strings.Replace(key, "_", ".", 1)
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
