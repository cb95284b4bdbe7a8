// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package cli

import (
	"github.com/spf13/cobra"

	"github.com/thomaspetersen1/wayfinder/internal/recommend"
)

// NewExplainCmd creates the 'explain' command.
func NewExplainCmd() *cobra.Command {
	var (
		placeID  string
		category string
		hour     int
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain the exploration belief for one place",
		Long:  `Print the bandit's posterior for the (place, context bucket) arm.`,
		Example: `  wayfinder explain --place p123 --category food --hour 19`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			exp := a.sampler.Explain(placeID, recommend.Category(category), hour)
			return printJSON(exp)
		},
	}

	cmd.Flags().StringVarP(&placeID, "place", "p", "", "Place ID (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Place category")
	cmd.Flags().IntVar(&hour, "hour", 12, "Local hour (0-23)")
	_ = cmd.MarkFlagRequired("place")
	return cmd
}
