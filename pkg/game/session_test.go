// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalogue(challenges ...Challenge) *Catalogue {
	return &Catalogue{challenges: challenges}
}

func easyChallenge(id string, level, xp, cost int) Challenge {
	return Challenge{
		ID:         id,
		Title:      id,
		XPReward:   xp,
		SanityCost: cost,
		Level:      level,
		Validator:  Validator{Kind: ValidatorExact, Answers: []string{"yes"}},
		Hints:      []string{"say yes"},
	}
}

// TestSession_NewGameToWin plays a one-challenge catalogue from name
// prompt to the win screen.
func TestSession_NewGameToWin(t *testing.T) {
	cat := testCatalogue(easyChallenge("only", 0, 100, 5))
	presenter := &fakePresenter{inputs: []string{"Ada", "1", "yes"}}
	store := &fakeStore{}

	s := NewSession(cat, presenter, store, nil)
	outcome, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, outcome)
	assert.Equal(t, 1, presenter.intros, "fresh run shows the intro")
	assert.Equal(t, 1, presenter.endings)

	require.NotNil(t, store.state)
	assert.Equal(t, "Ada", store.state.PlayerName)
	assert.True(t, store.state.HasCompleted("only"))
	assert.Equal(t, 1, store.state.CurrentLevel, "100 XP unlocks level 1")
}

// TestSession_ResumeFromSave verifies a loaded save skips the name
// prompt and intro.
func TestSession_ResumeFromSave(t *testing.T) {
	cat := testCatalogue(easyChallenge("only", 0, 10, 5))
	saved := NewPlayerState("Grace")
	presenter := &fakePresenter{inputs: []string{"quit"}}
	store := &fakeStore{state: saved}

	s := NewSession(cat, presenter, store, nil)
	outcome, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, OutcomeQuit, outcome)
	assert.Equal(t, 0, presenter.intros)
	assert.Equal(t, 1, presenter.pauses, "welcome-back waits for acknowledgement")
}

// TestSession_QuitPersists verifies quit saves before exiting.
func TestSession_QuitPersists(t *testing.T) {
	cat := testCatalogue(easyChallenge("only", 0, 10, 5))
	presenter := &fakePresenter{inputs: []string{"Ada", "QUIT"}}
	store := &fakeStore{}

	s := NewSession(cat, presenter, store, nil)
	outcome, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, OutcomeQuit, outcome)
	assert.Equal(t, 1, store.saves)
	require.NotNil(t, store.state)
	assert.Equal(t, "Ada", store.state.PlayerName)
}

// TestSession_EmptyLevelsAdvance verifies the loop walks over empty
// levels, persisting each step, until it finds challenges.
func TestSession_EmptyLevelsAdvance(t *testing.T) {
	cat := testCatalogue(easyChallenge("deep", 2, 10, 5))
	presenter := &fakePresenter{inputs: []string{"Ada", "quit"}}
	store := &fakeStore{}

	s := NewSession(cat, presenter, store, nil)
	outcome, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, OutcomeQuit, outcome)
	assert.Equal(t, 1, presenter.menus, "menu renders once at the populated level")
	require.NotNil(t, store.state)
	assert.Equal(t, 2, store.state.CurrentLevel)
	// Two level advances plus the quit save.
	assert.Equal(t, 3, store.saves)
}

// TestSession_SanityFloorEndsInGameOver drives sanity to zero through a
// costly challenge and expects the game-over exit.
func TestSession_SanityFloorEndsInGameOver(t *testing.T) {
	cat := testCatalogue(
		easyChallenge("drain", 0, 10, MaxSanity),
		easyChallenge("other", 0, 10, 5),
	)
	presenter := &fakePresenter{inputs: []string{"Ada", "1", "yes"}}
	store := &fakeStore{}

	s := NewSession(cat, presenter, store, nil)
	outcome, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, OutcomeGameOver, outcome)
	assert.Equal(t, 1, presenter.gameOvers)
	require.NotNil(t, store.state)
	assert.Equal(t, 0, store.state.Sanity)
}

// TestSession_MetaCommands verifies stats, save and the invalid-input
// paths are recovered inside the loop.
func TestSession_MetaCommands(t *testing.T) {
	cat := testCatalogue(easyChallenge("only", 0, 10, 5))
	presenter := &fakePresenter{inputs: []string{"Ada", "stats", "save", "bogus", "99", "quit"}}
	store := &fakeStore{}

	s := NewSession(cat, presenter, store, nil)
	outcome, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, OutcomeQuit, outcome)
	assert.Equal(t, 1, presenter.statsShown)
	assert.GreaterOrEqual(t, presenter.countKind(KindSuccess), 1, "manual save confirms")
	assert.GreaterOrEqual(t, presenter.countKind(KindError), 1, "non-numeric input surfaces an error")
	assert.GreaterOrEqual(t, presenter.countKind(KindWarning), 1, "out-of-range number surfaces a warning")
}

// TestSession_AlreadyCompletedBlockedAtMenu verifies re-entry into a
// completed challenge is refused with a warning and awards nothing.
func TestSession_AlreadyCompletedBlockedAtMenu(t *testing.T) {
	cat := testCatalogue(
		easyChallenge("done", 0, 10, 5),
		easyChallenge("open", 0, 10, 5),
	)
	saved := NewPlayerState("Grace")
	saved.CompleteChallenge("done", 10)
	presenter := &fakePresenter{inputs: []string{"1", "quit"}}
	store := &fakeStore{state: saved}

	s := NewSession(cat, presenter, store, nil)
	outcome, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, OutcomeQuit, outcome)
	assert.GreaterOrEqual(t, presenter.countKind(KindWarning), 1)
	assert.Equal(t, 10, store.state.Experience, "no double award")
	assert.Empty(t, presenter.chIntros, "attempt machine never entered")
}

// TestSession_MenuShowsSanityMeter verifies the meter renders with the
// menu each iteration.
func TestSession_MenuShowsSanityMeter(t *testing.T) {
	cat := testCatalogue(easyChallenge("only", 0, 10, 5))
	presenter := &fakePresenter{inputs: []string{"Ada", "quit"}}
	store := &fakeStore{}

	s := NewSession(cat, presenter, store, nil)
	_, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, []int{MaxSanity}, presenter.meters)
}

// TestSession_IDStable verifies each session carries one stable ID.
func TestSession_IDStable(t *testing.T) {
	cat := testCatalogue(easyChallenge("only", 0, 10, 5))
	s := NewSession(cat, &fakePresenter{}, &fakeStore{}, nil)

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, s.ID(), s.ID())
}
