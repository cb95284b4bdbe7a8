// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package cli

import "github.com/spf13/cobra"

// NewStatsCmd creates the 'stats' command.
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Dump all bandit arm statistics",
		Long:  `Print every learned (place, context bucket) arm with its posterior.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return printJSON(a.sampler.AllStats())
		},
	}
}

// NewProfilesCmd creates the 'profiles' command.
func NewProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List persona profiles",
		Long:  `Print every seeded persona with its live preference profile.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return printJSON(a.profiles.ListAll())
		},
	}
}
