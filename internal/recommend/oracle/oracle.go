// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

// Package oracle scores feature vectors with an offline-trained decision
// forest. The model is trained elsewhere and shipped as a JSON snapshot;
// this package only runs inference.
package oracle

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Node is one decision node. Leaves carry a Value in [0, 1] and no children;
// internal nodes route on features[Feature] <= Threshold.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Value     float64 `json:"value"`
	Left      *Node   `json:"left,omitempty"`
	Right     *Node   `json:"right,omitempty"`
}

func (n *Node) leaf() bool { return n.Left == nil && n.Right == nil }

// snapshot is the on-disk model format.
type snapshot struct {
	NumFeatures int     `json:"num_features"`
	Trees       []*Node `json:"trees"`
}

// Forest is a deterministic decision-forest scorer. It satisfies
// recommend.Oracle; the score is the mean of the leaf values reached in each
// tree.
type Forest struct {
	numFeatures int
	trees       []*Node
}

// Load reads a model snapshot from path and validates its shape.
func Load(path string, log zerolog.Logger) (*Forest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model snapshot: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("parsing model snapshot %s: %w", path, err)
	}
	if len(snap.Trees) == 0 {
		return nil, fmt.Errorf("model snapshot %s has no trees", path)
	}
	if snap.NumFeatures <= 0 {
		return nil, fmt.Errorf("model snapshot %s has invalid feature width %d", path, snap.NumFeatures)
	}
	for i, tree := range snap.Trees {
		if err := validateTree(tree, snap.NumFeatures); err != nil {
			return nil, fmt.Errorf("model snapshot %s, tree %d: %w", path, i, err)
		}
	}

	log.Info().
		Str("path", path).
		Int("trees", len(snap.Trees)).
		Int("features", snap.NumFeatures).
		Msg("oracle model loaded")
	return &Forest{numFeatures: snap.NumFeatures, trees: snap.Trees}, nil
}

func validateTree(n *Node, numFeatures int) error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	if n.leaf() {
		if n.Value < 0 || n.Value > 1 {
			return fmt.Errorf("leaf value %v outside [0,1]", n.Value)
		}
		return nil
	}
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("internal node missing a child")
	}
	if n.Feature < 0 || n.Feature >= numFeatures {
		return fmt.Errorf("split on feature %d with width %d", n.Feature, numFeatures)
	}
	if err := validateTree(n.Left, numFeatures); err != nil {
		return err
	}
	return validateTree(n.Right, numFeatures)
}

// NumFeatures is the feature width the model was trained against.
func (f *Forest) NumFeatures() int { return f.numFeatures }

// Score runs the vector through every tree and averages the leaf values. It
// is deterministic for a fixed vector.
func (f *Forest) Score(ctx context.Context, features []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(features) != f.numFeatures {
		return 0, fmt.Errorf("feature width %d, model expects %d", len(features), f.numFeatures)
	}

	var sum float64
	for _, tree := range f.trees {
		n := tree
		for !n.leaf() {
			if features[n.Feature] <= n.Threshold {
				n = n.Left
			} else {
				n = n.Right
			}
		}
		sum += n.Value
	}
	return sum / float64(len(f.trees)), nil
}

// Neutral is the fallback scorer used when no model snapshot is available.
// Every vector scores 0.5, which makes the blend lean on the bandit without
// marking requests degraded.
type Neutral struct{}

// Score always returns 0.5.
func (Neutral) Score(ctx context.Context, _ []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return 0.5, nil
}
