// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

// Package cli implements the wayfinder command-line interface. Each
// subcommand builds the full engine from configuration, runs one operation
// and prints JSON to stdout.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/thomaspetersen1/wayfinder/internal/config"
	"github.com/thomaspetersen1/wayfinder/internal/logging"
	"github.com/thomaspetersen1/wayfinder/internal/recommend"
	"github.com/thomaspetersen1/wayfinder/internal/recommend/bandit"
	"github.com/thomaspetersen1/wayfinder/internal/recommend/oracle"
	"github.com/thomaspetersen1/wayfinder/internal/recommend/profile"
)

// app bundles the wired engine and its collaborators for one CLI invocation.
type app struct {
	cfg      *config.Config
	engine   *recommend.Engine
	sampler  *bandit.Sampler
	profiles *profile.Store
	log      zerolog.Logger
}

// newApp loads configuration, initializes logging and wires the engine.
// A missing oracle model is not fatal: the neutral scorer takes its place
// and the blend leans on the bandit.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Init(cfg.Logging)
	log := logging.With().Str("component", "cli").Logger()

	var scorer recommend.Oracle = oracle.Neutral{}
	if cfg.Oracle.ModelPath != "" {
		forest, err := oracle.Load(cfg.Oracle.ModelPath, logging.With().Str("component", "oracle").Logger())
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.Oracle.ModelPath).Msg("oracle model unavailable, using neutral scorer")
		} else {
			scorer = forest
		}
	}

	sampler, err := bandit.New(cfg.BanditPath(), logging.With().Str("component", "bandit").Logger())
	if err != nil {
		return nil, fmt.Errorf("initializing bandit: %w", err)
	}
	profiles, err := profile.New(cfg.ProfilesPath(), logging.With().Str("component", "profiles").Logger())
	if err != nil {
		return nil, fmt.Errorf("initializing profiles: %w", err)
	}

	engine, err := recommend.NewEngine(cfg.Engine, scorer, sampler, profiles, logging.With().Str("component", "engine").Logger())
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		engine:   engine,
		sampler:  sampler,
		profiles: profiles,
		log:      log,
	}, nil
}

// readInput reads a JSON document from path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Println(string(out))
	return err
}
