// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

/*
Wayfinder ranks places and activities in real time by blending an
offline-trained relevance oracle with a contextual Thompson-sampling bandit,
and learns from interaction feedback.

Usage:

	wayfinder [command]

Available Commands:

	rank      Rank a candidate set from a JSON request
	feedback  Record an interaction event
	explain   Explain the exploration belief for one place
	stats     Dump all bandit arm statistics
	profiles  List persona profiles

Configuration comes from config.yaml (or CONFIG_PATH) with WAYFINDER_*
environment overrides.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thomaspetersen1/wayfinder/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wayfinder",
		Short: "Real-time place ranking with contextual exploration",
		Long: `Wayfinder scores candidate places with a fixed 20-slot feature vector,
blends an offline oracle score with a contextual Beta-Bernoulli bandit
sample, and keeps learning from navigate/like/dismiss feedback. Learned
state persists as JSON and survives restarts.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.NewRankCmd())
	rootCmd.AddCommand(cli.NewFeedbackCmd())
	rootCmd.AddCommand(cli.NewExplainCmd())
	rootCmd.AddCommand(cli.NewStatsCmd())
	rootCmd.AddCommand(cli.NewProfilesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
