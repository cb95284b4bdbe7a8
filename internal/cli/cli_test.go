// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCommands_HaveExpectedShape(t *testing.T) {
	tests := []struct {
		name string
		use  string
	}{
		{"rank", NewRankCmd().Use},
		{"feedback", NewFeedbackCmd().Use},
		{"explain", NewExplainCmd().Use},
		{"stats", NewStatsCmd().Use},
		{"profiles", NewProfilesCmd().Use},
	}
	for _, tt := range tests {
		if tt.use != tt.name {
			t.Errorf("command use = %q, want %q", tt.use, tt.name)
		}
	}
}

func TestFeedbackCmd_RequiresPlaceAndEvent(t *testing.T) {
	cmd := NewFeedbackCmd()
	cmd.SetArgs([]string{"--user", "alex"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for missing required flags")
	}
}

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	if err := os.WriteFile(path, []byte(`{"candidates":[]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	raw, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if string(raw) != `{"candidates":[]}` {
		t.Errorf("readInput = %q", raw)
	}
}
