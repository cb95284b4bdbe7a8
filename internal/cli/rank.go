// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package cli

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/thomaspetersen1/wayfinder/internal/recommend"
)

// NewRankCmd creates the 'rank' command.
func NewRankCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank a candidate set",
		Long:  `Read a ranking request as JSON and print the ordered result.`,
		Example: `  wayfinder rank --input request.json
  cat request.json | wayfinder rank`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd.Context(), input)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Request JSON file, - for stdin")
	return cmd
}

func runRank(ctx context.Context, input string) error {
	raw, err := readInput(input)
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}
	var req recommend.RankRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	resp, err := a.engine.Rank(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(resp)
}
