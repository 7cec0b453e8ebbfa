// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package narrative

import (
	"strings"
	"testing"
)

func TestForLevel(t *testing.T) {
	tests := []struct {
		level    int
		wantName string
	}{
		{level: 0, wantName: "Level 0: The Awakening"},
		{level: 1, wantName: "Level 1: Whispers in the Code"},
		{level: 2, wantName: "Level 2: The Forgotten Server"},
		{level: 3, wantName: "Level 3: Cryptic Messages"},
		{level: 4, wantName: "Level 4: The Final Protocol"},
		{level: 5, wantName: "Unknown Level"},
		{level: -1, wantName: "Unknown Level"},
	}

	for _, tt := range tests {
		got := ForLevel(tt.level)
		if got.Name != tt.wantName {
			t.Errorf("ForLevel(%d).Name = %q, want %q", tt.level, got.Name, tt.wantName)
		}
		if got.Message == "" {
			t.Errorf("ForLevel(%d) has empty message", tt.level)
		}
	}
}

func TestIntro_AddressesPlayer(t *testing.T) {
	got := Intro("Ada")
	if !strings.Contains(got, "Welcome, Ada...") {
		t.Errorf("intro does not address the player: %q", got[:40])
	}
}

func TestEnding_SecretsEpilogue(t *testing.T) {
	plain := Ending(0)
	if strings.Contains(plain, "hidden secret") {
		t.Error("ending without secrets should omit the secrets epilogue")
	}

	withSecrets := Ending(3)
	if !strings.Contains(withSecrets, "3 hidden secret(s)") {
		t.Error("ending with secrets should count them")
	}
}

func TestCompletionFlavor_CyclesWithoutPanic(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		seen[CompletionFlavor(i)] = true
	}
	if len(seen) != len(completionFlavor) {
		t.Errorf("expected %d distinct flavor lines over a full cycle, got %d",
			len(completionFlavor), len(seen))
	}

	// Negative input must not panic.
	_ = CompletionFlavor(-5)
}

func TestSanityMeter(t *testing.T) {
	tests := []struct {
		sanity int
		want   string
	}{
		{sanity: 100, want: "Sanity: [██████████] 100%"},
		{sanity: 45, want: "Sanity: [████░░░░░░] 45%"},
		{sanity: 0, want: "Sanity: [░░░░░░░░░░] 0%"},
		{sanity: -10, want: "Sanity: [░░░░░░░░░░] 0%"},
		{sanity: 150, want: "Sanity: [██████████] 100%"},
	}

	for _, tt := range tests {
		if got := SanityMeter(tt.sanity); got != tt.want {
			t.Errorf("SanityMeter(%d) = %q, want %q", tt.sanity, got, tt.want)
		}
	}
}
