// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestEffects_PassthroughWhenDisabled(t *testing.T) {
	SetAtmosphere(Atmosphere{Level: AtmospherePlain, Effects: false})
	defer restoreAtmosphere()

	var buf bytes.Buffer
	e := NewEffects(&buf, rand.NewSource(1))

	e.Typewriter("the signal fades")
	if got := buf.String(); got != "the signal fades\n" {
		t.Errorf("Typewriter passthrough = %q", got)
	}

	buf.Reset()
	e.Glitch("no corruption here")
	if got := buf.String(); got != "no corruption here\n" {
		t.Errorf("Glitch passthrough = %q", got)
	}

	buf.Reset()
	e.Scare(1.0)
	if buf.Len() != 0 {
		t.Errorf("Scare with effects off wrote %q", buf.String())
	}
}

func TestEffects_GlitchPreservesLength(t *testing.T) {
	SetAtmosphere(Atmosphere{Level: AtmosphereFull, Effects: true})
	defer restoreAtmosphere()

	var buf bytes.Buffer
	e := NewEffects(&buf, rand.NewSource(42))

	const text = "ghost in the machine"
	e.Glitch(text)
	// Corruption swaps characters but never changes the line shape.
	if got := buf.Len(); got != len(text)+1 {
		t.Errorf("glitched output length = %d, want %d", got, len(text)+1)
	}
}

func TestEffects_ScareZeroProbabilityIsSilent(t *testing.T) {
	SetAtmosphere(Atmosphere{Level: AtmosphereFull, Effects: true})
	defer restoreAtmosphere()

	var buf bytes.Buffer
	e := NewEffects(&buf, rand.NewSource(7))

	e.Scare(0)
	if buf.Len() != 0 {
		t.Errorf("Scare(0) wrote %q", buf.String())
	}
}

func TestEffects_ScareRendersBorderedMessage(t *testing.T) {
	SetAtmosphere(Atmosphere{Level: AtmosphereFull, Effects: true})
	defer restoreAtmosphere()

	var buf bytes.Buffer
	e := NewEffects(&buf, rand.NewSource(7))

	e.Scare(1.0)
	if !strings.Contains(buf.String(), "╔") {
		t.Errorf("Scare(1.0) output missing frame: %q", buf.String())
	}
}

func TestScareProbability(t *testing.T) {
	cases := []struct {
		sanity int
		want   float64
	}{
		{100, 0},
		{50, 0.1},
		{0, 0.2},
		{150, 0},   // clamped high
		{-10, 0.2}, // clamped low
	}
	for _, tc := range cases {
		if got := ScareProbability(tc.sanity); got != tc.want {
			t.Errorf("ScareProbability(%d) = %v, want %v", tc.sanity, got, tc.want)
		}
	}
}
