// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package recommend

import "testing"

func TestCategory_KnownAndIndex(t *testing.T) {
	tests := []struct {
		cat   Category
		known bool
		index int
	}{
		{CategoryFood, true, 0},
		{CategoryOutdoor, true, 1},
		{CategoryEntertainment, true, 2},
		{CategoryCulture, true, 3},
		{Category("spa"), false, 2},
		{Category(""), false, 2},
	}
	for _, tt := range tests {
		if got := tt.cat.Known(); got != tt.known {
			t.Errorf("Known(%q) = %t, want %t", tt.cat, got, tt.known)
		}
		if got := tt.cat.Index(); got != tt.index {
			t.Errorf("Index(%q) = %d, want %d", tt.cat, got, tt.index)
		}
	}
}

func TestUserProfile_Affinity(t *testing.T) {
	p := UserProfile{CategoryFood: 0.9, CategoryOutdoor: 0.1}
	if got := p.Affinity(CategoryFood); got != 0.9 {
		t.Errorf("food affinity = %v, want 0.9", got)
	}
	if got := p.Affinity(Category("spa")); got != 0.5 {
		t.Errorf("unmapped affinity = %v, want neutral 0.5", got)
	}

	if p.SetAffinity(Category("spa"), 0.7) {
		t.Error("SetAffinity accepted an unmapped category")
	}
	if !p.SetAffinity(CategoryCulture, 0.7) || p.CategoryCulture != 0.7 {
		t.Errorf("SetAffinity(culture) left %v", p.CategoryCulture)
	}
}
