// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import "testing"

func TestParseAtmosphereLevel(t *testing.T) {
	tests := []struct {
		input string
		want  AtmosphereLevel
	}{
		{input: "full", want: AtmosphereFull},
		{input: "standard", want: AtmosphereStandard},
		{input: "MINIMAL", want: AtmosphereMinimal},
		{input: "plain", want: AtmospherePlain},
		{input: "machine", want: AtmospherePlain},
		{input: "none", want: AtmospherePlain},
		{input: "", want: AtmosphereFull},
		{input: "garbage", want: AtmosphereFull},
	}

	for _, tt := range tests {
		if got := ParseAtmosphereLevel(tt.input); got != tt.want {
			t.Errorf("ParseAtmosphereLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSetAtmosphereLevel_DisablesEffectsWhenPlain(t *testing.T) {
	defer SetAtmosphere(Atmosphere{Level: AtmosphereFull, Effects: true})

	SetAtmosphere(Atmosphere{Level: AtmosphereFull, Effects: true})
	SetAtmosphereLevel(AtmospherePlain)

	if GetAtmosphere().Effects {
		t.Error("plain atmosphere should force effects off")
	}
}

func TestProgressBar(t *testing.T) {
	defer SetAtmosphere(Atmosphere{Level: AtmosphereFull, Effects: true})

	SetAtmosphereLevel(AtmospherePlain)
	if got := ProgressBar("Challenges", 3, 10, 20); got != "Challenges: 3/10" {
		t.Errorf("plain ProgressBar = %q", got)
	}

	SetAtmosphereLevel(AtmosphereFull)
	got := ProgressBar("Challenges", 5, 10, 10)
	want := "Challenges: [█████░░░░░] 5/10"
	if got != want {
		t.Errorf("ProgressBar = %q, want %q", got, want)
	}

	// Degenerate inputs must not panic or divide by zero.
	_ = ProgressBar("x", 5, 0, 10)
	_ = ProgressBar("x", -1, 10, 10)
	_ = ProgressBar("x", 20, 10, 10)
}

func TestIcon_RenderNonEmpty(t *testing.T) {
	icons := []Icon{IconDone, IconOpen, IconWarning, IconError, IconHint, IconSkull, IconGhost, IconArrow}
	for _, icon := range icons {
		if icon.Render() == "" {
			t.Errorf("icon %q rendered empty", string(icon))
		}
	}
}

func TestBanner_PlainPassthrough(t *testing.T) {
	defer SetAtmosphere(Atmosphere{Level: AtmosphereFull, Effects: true})

	SetAtmosphereLevel(AtmospherePlain)
	if got := Banner("HELLO", Styles.Subtitle); got != "HELLO" {
		t.Errorf("plain Banner = %q, want passthrough", got)
	}
}
