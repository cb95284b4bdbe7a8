// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package oracle

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

// twoStumpModel splits on slot 0 at 0.5 and slot 1 at 0.3.
const twoStumpModel = `{
  "num_features": 3,
  "trees": [
    {"feature": 0, "threshold": 0.5,
     "left": {"value": 0.2}, "right": {"value": 0.8}},
    {"feature": 1, "threshold": 0.3,
     "left": {"value": 0.4}, "right": {"value": 1.0}}
  ]
}`

func writeModel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_AndScore(t *testing.T) {
	f, err := Load(writeModel(t, twoStumpModel), zerolog.Nop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.NumFeatures() != 3 {
		t.Errorf("NumFeatures = %d, want 3", f.NumFeatures())
	}

	tests := []struct {
		name     string
		features []float64
		want     float64
	}{
		{"both low", []float64{0.1, 0.1, 0}, (0.2 + 0.4) / 2},
		{"both high", []float64{0.9, 0.9, 0}, (0.8 + 1.0) / 2},
		{"split routes independently", []float64{0.9, 0.1, 0}, (0.8 + 0.4) / 2},
		{"boundary goes left", []float64{0.5, 0.3, 0}, (0.2 + 0.4) / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Score(context.Background(), tt.features)
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if got != tt.want {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForest_ScoreDeterministic(t *testing.T) {
	f, err := Load(writeModel(t, twoStumpModel), zerolog.Nop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	v := []float64{0.7, 0.2, 0.9}
	a, _ := f.Score(context.Background(), v)
	b, _ := f.Score(context.Background(), v)
	if a != b {
		t.Errorf("scores differ across identical calls: %v vs %v", a, b)
	}
}

func TestForest_ScoreRejectsWrongWidth(t *testing.T) {
	f, err := Load(writeModel(t, twoStumpModel), zerolog.Nop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := f.Score(context.Background(), []float64{0.1}); err == nil {
		t.Error("expected width mismatch error")
	}
}

func TestForest_ScoreHonorsCancellation(t *testing.T) {
	f, err := Load(writeModel(t, twoStumpModel), zerolog.Nop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Score(ctx, []float64{0, 0, 0}); err == nil {
		t.Error("expected context error")
	}
}

func TestLoad_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{nope"},
		{"no trees", `{"num_features": 3, "trees": []}`},
		{"bad width", `{"num_features": 0, "trees": [{"value": 0.5}]}`},
		{"feature out of range", `{"num_features": 2, "trees": [
			{"feature": 5, "threshold": 0.5, "left": {"value": 0.1}, "right": {"value": 0.9}}]}`},
		{"leaf out of range", `{"num_features": 2, "trees": [{"value": 1.5}]}`},
		{"one-armed node", `{"num_features": 2, "trees": [
			{"feature": 0, "threshold": 0.5, "left": {"value": 0.1}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeModel(t, tt.content), zerolog.Nop()); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json"), zerolog.Nop()); err == nil {
		t.Error("expected error for missing snapshot")
	}
}

func TestNeutral_Score(t *testing.T) {
	got, err := Neutral{}.Score(context.Background(), make([]float64, 20))
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 0.5 {
		t.Errorf("neutral score = %v, want 0.5", got)
	}
}
