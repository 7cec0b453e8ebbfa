// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/AleutianAI/ghost-protocol/pkg/logging"
	"github.com/AleutianAI/ghost-protocol/pkg/narrative"
)

// SaveStore persists player state between sessions. Load reports a
// missing save with an error wrapping os.ErrNotExist so a fresh run
// can be told apart from a corrupt or unreadable one.
type SaveStore interface {
	Save(state *PlayerState) error
	Load() (*PlayerState, error)
}

// Outcome is how a session ended. Every outcome persists state on the
// way out.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeGameOver
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Session owns one full play-through of the main loop: load or create
// the player, iterate level menus, dispatch meta commands and attempt
// runs, and evaluate the termination predicates after every mutation.
type Session struct {
	id        string
	cat       *Catalogue
	presenter Presenter
	store     SaveStore
	attempts  *AttemptMachine
	log       *logging.Logger
}

// NewSession wires a session over the given catalogue, presenter and
// store. A nil logger falls back to the package default.
func NewSession(cat *Catalogue, presenter Presenter, store SaveStore, log *logging.Logger) *Session {
	if log == nil {
		log = logging.Default()
	}
	id := uuid.New().String()
	log = log.With("session_id", id)
	return &Session{
		id:        id,
		cat:       cat,
		presenter: presenter,
		store:     store,
		attempts:  NewAttemptMachine(presenter, store, log),
		log:       log,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Run plays the game to one of the three outcomes. An error return
// means an unrecoverable presenter or store failure; a best-effort
// final save is attempted before the error propagates.
func (s *Session) Run() (Outcome, error) {
	state, err := s.loadOrCreate()
	if err != nil {
		return OutcomeQuit, err
	}

	outcome, err := s.loop(state)
	if err != nil {
		// The session is already lost; keep whatever progress we can.
		if saveErr := s.store.Save(state); saveErr != nil {
			s.log.Error("final save failed", "error", saveErr)
		}
		return outcome, err
	}

	s.log.Info("session finished",
		"outcome", outcome.String(),
		"level", state.CurrentLevel,
		"experience", state.Experience,
		"completed", len(state.CompletedChallenges))
	return outcome, nil
}

func (s *Session) loadOrCreate() (*PlayerState, error) {
	state, err := s.store.Load()
	switch {
	case err == nil:
		s.log.Info("save loaded", "player", state.PlayerName, "level", state.CurrentLevel)
		if perr := s.presenter.ShowMessage(KindInfo,
			fmt.Sprintf("Welcome back, %s. Your progress has been restored.", state.PlayerName)); perr != nil {
			return nil, perr
		}
		if perr := s.presenter.Pause(); perr != nil {
			return nil, perr
		}
		return state, nil

	case errors.Is(err, os.ErrNotExist):
		name, perr := s.presenter.ReadLine("Before we begin, what should we call you? ")
		if perr != nil {
			return nil, perr
		}
		if name == "" {
			name = "Unknown"
		}
		state = NewPlayerState(name)
		s.log.Info("new game started", "player", name)
		if perr := s.presenter.ShowIntro(name); perr != nil {
			return nil, perr
		}
		return state, nil

	default:
		return nil, fmt.Errorf("loading save: %w", err)
	}
}

func (s *Session) loop(state *PlayerState) (Outcome, error) {
	for {
		levelChallenges := s.cat.ByLevel(state.CurrentLevel)

		if len(levelChallenges) == 0 {
			if state.AllCompleted(s.cat) {
				if err := s.presenter.ShowEnding(len(state.DiscoveredSecrets)); err != nil {
					return OutcomeWin, err
				}
				if err := s.store.Save(state); err != nil {
					return OutcomeWin, fmt.Errorf("saving on win: %w", err)
				}
				return OutcomeWin, nil
			}
			state.CurrentLevel++
			if err := s.store.Save(state); err != nil {
				return OutcomeQuit, fmt.Errorf("saving on level advance: %w", err)
			}
			continue
		}

		if err := s.renderMenu(state, levelChallenges); err != nil {
			return OutcomeQuit, err
		}

		line, err := s.presenter.ReadLine("> ")
		if err != nil {
			return OutcomeQuit, fmt.Errorf("reading command: %w", err)
		}

		switch cmd := strings.ToLower(strings.TrimSpace(line)); cmd {
		case "stats":
			if err := s.presenter.ShowStats(state, s.cat); err != nil {
				return OutcomeQuit, err
			}
			if err := s.presenter.Pause(); err != nil {
				return OutcomeQuit, err
			}

		case "save":
			if err := s.store.Save(state); err != nil {
				if perr := s.presenter.ShowMessage(KindError, "The save failed. The machine resists."); perr != nil {
					return OutcomeQuit, perr
				}
				return OutcomeQuit, fmt.Errorf("manual save: %w", err)
			}
			if err := s.presenter.ShowMessage(KindSuccess, "Progress saved."); err != nil {
				return OutcomeQuit, err
			}

		case "quit":
			if err := s.store.Save(state); err != nil {
				return OutcomeQuit, fmt.Errorf("saving on quit: %w", err)
			}
			if err := s.presenter.ShowMessage(KindInfo, "The Ghost Protocol awaits your return..."); err != nil {
				return OutcomeQuit, err
			}
			return OutcomeQuit, nil

		default:
			if err := s.dispatchChoice(state, levelChallenges, cmd); err != nil {
				return OutcomeQuit, err
			}
		}

		if state.IsInsane() {
			if err := s.presenter.ShowGameOver(); err != nil {
				return OutcomeGameOver, err
			}
			if err := s.store.Save(state); err != nil {
				return OutcomeGameOver, fmt.Errorf("saving on game over: %w", err)
			}
			return OutcomeGameOver, nil
		}
	}
}

func (s *Session) renderMenu(state *PlayerState, levelChallenges []Challenge) error {
	header := narrative.LevelTitle(state.CurrentLevel)
	if err := s.presenter.ShowSanityMeter(state.Sanity); err != nil {
		return err
	}

	items := make([]MenuItem, 0, len(levelChallenges))
	for i, ch := range levelChallenges {
		items = append(items, MenuItem{
			Index:      i + 1,
			Title:      ch.Title,
			Completed:  state.HasCompleted(ch.ID),
			XPReward:   ch.XPReward,
			SanityCost: ch.SanityCost,
		})
	}
	return s.presenter.ShowMenu(header, items, []string{"stats", "save", "quit"})
}

func (s *Session) dispatchChoice(state *PlayerState, levelChallenges []Challenge, cmd string) error {
	n, err := strconv.Atoi(cmd)
	if err != nil {
		return s.presenter.ShowMessage(KindError, "Invalid input. The terminal does not understand.")
	}
	if n < 1 || n > len(levelChallenges) {
		return s.presenter.ShowMessage(KindWarning, "Invalid challenge number.")
	}

	ch := levelChallenges[n-1]
	if state.HasCompleted(ch.ID) {
		return s.presenter.ShowMessage(KindWarning, "You've already completed this challenge.")
	}

	outcome, err := s.attempts.Run(state, &ch)
	if err != nil {
		return err
	}
	s.log.Debug("attempt resolved", "challenge_id", ch.ID, "outcome", outcome.String())
	return nil
}
