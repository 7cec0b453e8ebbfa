// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/ghost-protocol/pkg/logging"
)

const (
	// MaxAttempts is how many wrong answers a single challenge tolerates
	// before it resolves as failed.
	MaxAttempts = 5

	// FailureSanityPenalty is the sanity lost when attempts run out.
	FailureSanityPenalty = 10
)

// AttemptOutcome is the terminal state of one challenge interaction.
type AttemptOutcome int

const (
	AttemptSuccess AttemptOutcome = iota
	AttemptFailed
	AttemptSkipped
)

func (o AttemptOutcome) String() string {
	switch o {
	case AttemptSuccess:
		return "success"
	case AttemptFailed:
		return "failed"
	case AttemptSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// AttemptMachine drives a single challenge interaction: prompting,
// hint progression, bounded retries, and the state side effects of the
// outcome.
//
// The machine is a loop over three input classes. "hint" reveals the
// hint indexed by the current attempt count, saturating at the last
// hint, and costs nothing. "skip" resolves immediately and mutates no
// player state. Anything else is an answer: the raw line goes to the
// challenge's validator, a miss consumes one of MaxAttempts, and
// exhaustion costs FailureSanityPenalty sanity. Success applies the XP
// reward and sanity cost exactly once and persists before returning;
// a save failure at that point is fatal to the session.
type AttemptMachine struct {
	presenter Presenter
	store     SaveStore
	log       *logging.Logger
}

// NewAttemptMachine builds a machine bound to a presenter and store.
func NewAttemptMachine(presenter Presenter, store SaveStore, log *logging.Logger) *AttemptMachine {
	if log == nil {
		log = logging.Default()
	}
	return &AttemptMachine{presenter: presenter, store: store, log: log}
}

// Run plays the challenge to resolution. The returned error is non-nil
// only for presenter or store failures; a wrong answer is not an error.
func (m *AttemptMachine) Run(state *PlayerState, ch *Challenge) (AttemptOutcome, error) {
	if err := m.presenter.ShowChallengeIntro(ch); err != nil {
		return AttemptFailed, err
	}

	attempts := 0
	for {
		line, err := m.presenter.ReadLine("> ")
		if err != nil {
			return AttemptFailed, fmt.Errorf("reading answer: %w", err)
		}

		// Commands match case-insensitively; everything else is an
		// answer and goes to the validator untouched.
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "hint":
			if err := m.revealHint(ch, attempts); err != nil {
				return AttemptFailed, err
			}

		case "skip":
			m.log.Info("challenge skipped", "challenge_id", ch.ID, "attempts", attempts)
			if err := m.presenter.ShowMessage(KindInfo, "You back away from the terminal. The challenge will be waiting."); err != nil {
				return AttemptFailed, err
			}
			return AttemptSkipped, nil

		default:
			if ch.Validate(line) {
				return AttemptSuccess, m.resolveSuccess(state, ch, attempts)
			}

			attempts++
			if attempts >= MaxAttempts {
				state.ModifySanity(-FailureSanityPenalty)
				m.log.Info("challenge failed",
					"challenge_id", ch.ID,
					"attempts", attempts,
					"sanity", state.Sanity)
				if err := m.presenter.ShowMessage(KindError, "The terminal locks you out. Something in the static laughs."); err != nil {
					return AttemptFailed, err
				}
				return AttemptFailed, nil
			}

			remaining := MaxAttempts - attempts
			msg := fmt.Sprintf("Wrong. The cursor blinks, unimpressed. %d attempts remain.", remaining)
			if err := m.presenter.ShowMessage(KindWarning, msg); err != nil {
				return AttemptFailed, err
			}
		}
	}
}

func (m *AttemptMachine) revealHint(ch *Challenge, attempts int) error {
	if len(ch.Hints) == 0 {
		return m.presenter.ShowMessage(KindHint, "No hints exist for this one. You are on your own.")
	}
	idx := attempts
	if idx > len(ch.Hints)-1 {
		idx = len(ch.Hints) - 1
	}
	return m.presenter.ShowMessage(KindHint, ch.Hints[idx])
}

// resolveSuccess applies the reward and cost, persists, and renders the
// completion flourish. Ordering matters: state first, disk second,
// screen last, so the save reflects exactly what the player earned.
func (m *AttemptMachine) resolveSuccess(state *PlayerState, ch *Challenge, attempts int) error {
	state.CompleteChallenge(ch.ID, ch.XPReward)
	state.ModifySanity(-ch.SanityCost)

	if err := m.store.Save(state); err != nil {
		return fmt.Errorf("saving after completing %s: %w", ch.ID, err)
	}

	m.log.Info("challenge completed",
		"challenge_id", ch.ID,
		"attempts", attempts,
		"xp_earned", ch.XPReward,
		"sanity", state.Sanity,
		"level", state.CurrentLevel)

	return m.presenter.ShowCompletion(ch.XPReward)
}
