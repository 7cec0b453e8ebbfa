// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

// MessageKind classifies a presenter message so the terminal layer can
// pick styling without the engine knowing about colors.
type MessageKind int

const (
	KindInfo MessageKind = iota
	KindSuccess
	KindWarning
	KindError
	KindHint
)

// MenuItem is one selectable challenge row in the level menu.
type MenuItem struct {
	Index      int
	Title      string
	Completed  bool
	XPReward   int
	SanityCost int
}

// Presenter is the terminal surface the engine renders through. The
// engine holds no I/O of its own; every read and write crosses this
// interface, which is what lets the session run under a scripted fake
// in tests.
//
// Any method may fail with an I/O error. The engine treats presenter
// errors as fatal and propagates them out of the session.
type Presenter interface {
	// ReadLine blocks until a full line is available and returns it
	// with surrounding whitespace trimmed.
	ReadLine(prompt string) (string, error)

	// ShowMenu renders the per-level challenge menu plus the meta
	// commands accepted alongside a numeric choice.
	ShowMenu(header string, items []MenuItem, commands []string) error

	// ShowMessage renders one classified line of output.
	ShowMessage(kind MessageKind, text string) error

	// ShowStats renders the detailed progress view.
	ShowStats(state *PlayerState, cat *Catalogue) error

	// ShowChallengeIntro renders a challenge's title and description
	// before the first prompt.
	ShowChallengeIntro(ch *Challenge) error

	// ShowCompletion renders the success flourish with the XP earned.
	ShowCompletion(xp int) error

	// ShowIntro renders the opening narrative for a fresh run.
	ShowIntro(playerName string) error

	// ShowEnding renders the win narrative.
	ShowEnding(secretsFound int) error

	// ShowGameOver renders the sanity-depletion narrative.
	ShowGameOver() error

	// ShowSanityMeter renders the current sanity bar.
	ShowSanityMeter(sanity int) error

	// Pause blocks until the player acknowledges, typically with Enter.
	Pause() error
}
