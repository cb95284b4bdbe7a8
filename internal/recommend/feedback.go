// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package recommend

// Outcome is the learning decision for one interaction event.
type Outcome string

// Outcomes. Ignore means the event carries no learning signal and must not
// touch any model state.
const (
	OutcomeIgnore   Outcome = "ignore"
	OutcomePositive Outcome = "positive"
	OutcomeNegative Outcome = "negative"
)

// RouteEvent maps a raw event type to its learning outcome.
//
// Clicks are deliberately ignored: they correlate too weakly with real
// interest to feed the models. Unrecognized event types route to negative,
// which is a routing decision, not a parse failure.
func RouteEvent(eventType string) Outcome {
	switch eventType {
	case "navigate", "like", "save":
		return OutcomePositive
	case "impression", "dismiss", "dislike":
		return OutcomeNegative
	case "click":
		return OutcomeIgnore
	default:
		return OutcomeNegative
	}
}

// Reward converts the outcome to a Bernoulli reward. Ignore has no reward
// and returns -1 with ok=false.
func (o Outcome) Reward() (int, bool) {
	switch o {
	case OutcomePositive:
		return 1, true
	case OutcomeNegative:
		return 0, true
	default:
		return -1, false
	}
}
