// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

// Default pacing for the timed effects. Kept short so the dread stays
// ahead of the reader's patience.
const (
	typewriterDelay = 20 * time.Millisecond
	glitchDelay     = 20 * time.Millisecond
	glitchChance    = 0.05
)

// Effects renders the timed horror flourishes. All output goes through
// the held writer; when Atmosphere.Effects is off, every method prints
// the text immediately with no delays or corruption, which is also what
// makes them testable.
type Effects struct {
	out  io.Writer
	rand *rand.Rand
}

// NewEffects creates an effects renderer. A nil writer defaults to
// os.Stdout; a nil source seeds from the clock.
func NewEffects(out io.Writer, src rand.Source) *Effects {
	if out == nil {
		out = os.Stdout
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Effects{out: out, rand: rand.New(src)}
}

// Typewriter prints text one rune at a time.
func (e *Effects) Typewriter(text string) {
	if !GetAtmosphere().Effects {
		fmt.Fprintln(e.out, text)
		return
	}
	for _, r := range text {
		fmt.Fprintf(e.out, "%c", r)
		time.Sleep(typewriterDelay)
	}
	fmt.Fprintln(e.out)
}

// Glitch prints text with occasional corrupted characters, the way a
// failing display would render it. Corruption only touches the visual
// output, never the underlying text.
func (e *Effects) Glitch(text string) {
	if !GetAtmosphere().Effects {
		fmt.Fprintln(e.out, text)
		return
	}
	for _, r := range text {
		if e.rand.Float64() < glitchChance && r != '\n' {
			// Printable ASCII range, '!' through '~'.
			fmt.Fprintf(e.out, "%c", rune('!'+e.rand.Intn('~'-'!'+1)))
		} else {
			fmt.Fprintf(e.out, "%c", r)
		}
		time.Sleep(glitchDelay)
	}
	fmt.Fprintln(e.out)
}

// Scare maybe renders a brief scare with the given probability. Lower
// sanity feeds higher probabilities upstream; here it is just a dice
// roll over a small set of interruptions.
func (e *Effects) Scare(probability float64) {
	if !GetAtmosphere().Effects || probability <= 0 {
		return
	}
	if e.rand.Float64() >= probability {
		return
	}

	messages := []string{
		"I   S E E   Y O U . . .",
		"THEY ARE COMING",
		"YOU CANNOT ESCAPE",
		"HELP US",
		"IT'S TOO LATE",
		"[watching]",
	}
	msg := messages[e.rand.Intn(len(messages))]

	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, Styles.ScareBox.Render(Styles.Error.Bold(true).Render(msg)))
	fmt.Fprintln(e.out)
	time.Sleep(300 * time.Millisecond)
}

// ScareProbability maps sanity to the per-menu scare chance: 0 at full
// sanity rising to 0.2 at zero.
func ScareProbability(sanity int) float64 {
	if sanity < 0 {
		sanity = 0
	}
	if sanity > 100 {
		sanity = 100
	}
	return float64(100-sanity) / 500.0
}
