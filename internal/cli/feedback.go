// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package cli

import (
	"github.com/spf13/cobra"

	"github.com/thomaspetersen1/wayfinder/internal/recommend"
)

// NewFeedbackCmd creates the 'feedback' command.
func NewFeedbackCmd() *cobra.Command {
	var (
		placeID   string
		category  string
		eventType string
		hour      int
		userID    string
	)

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record an interaction event",
		Long: `Route one interaction event into the bandit and, when a user is
named, into that user's preference profile. Clicks are recorded but
deliberately not learned from.`,
		Example: `  wayfinder feedback --place p123 --category food --event navigate --hour 19 --user alex
  wayfinder feedback --place p123 --event dismiss`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := recommend.FeedbackRequest{
				PlaceID:   placeID,
				Category:  recommend.Category(category),
				EventType: eventType,
				UserID:    userID,
			}
			if cmd.Flags().Changed("hour") {
				req.Hour = &hour
			}
			return runFeedback(req)
		},
	}

	cmd.Flags().StringVarP(&placeID, "place", "p", "", "Place ID (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Place category (food, outdoor, entertainment, culture)")
	cmd.Flags().StringVarP(&eventType, "event", "e", "", "Event type (navigate, like, save, click, impression, dismiss, dislike)")
	cmd.Flags().IntVar(&hour, "hour", 12, "Local hour the event occurred (0-23)")
	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID for profile learning")
	_ = cmd.MarkFlagRequired("place")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func runFeedback(req recommend.FeedbackRequest) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	res, err := a.engine.Feedback(req)
	if err != nil {
		return err
	}
	return printJSON(res)
}
