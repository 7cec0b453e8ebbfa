// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import (
	"fmt"
	"io"
	"os"
)

// fakePresenter scripts ReadLine returns and records every render call
// so tests can assert on the exact interaction sequence.
type fakePresenter struct {
	inputs []string
	pos    int

	messages    []fakeMessage
	menus       int
	statsShown  int
	intros      int
	chIntros    []string
	completions []int
	endings     int
	gameOvers   int
	meters      []int
	pauses      int
}

type fakeMessage struct {
	kind MessageKind
	text string
}

func (p *fakePresenter) ReadLine(prompt string) (string, error) {
	if p.pos >= len(p.inputs) {
		return "", io.EOF
	}
	line := p.inputs[p.pos]
	p.pos++
	return line, nil
}

func (p *fakePresenter) ShowMenu(header string, items []MenuItem, commands []string) error {
	p.menus++
	return nil
}

func (p *fakePresenter) ShowMessage(kind MessageKind, text string) error {
	p.messages = append(p.messages, fakeMessage{kind: kind, text: text})
	return nil
}

func (p *fakePresenter) ShowStats(state *PlayerState, cat *Catalogue) error {
	p.statsShown++
	return nil
}

func (p *fakePresenter) ShowChallengeIntro(ch *Challenge) error {
	p.chIntros = append(p.chIntros, ch.ID)
	return nil
}

func (p *fakePresenter) ShowCompletion(xp int) error {
	p.completions = append(p.completions, xp)
	return nil
}

func (p *fakePresenter) ShowIntro(playerName string) error {
	p.intros++
	return nil
}

func (p *fakePresenter) ShowEnding(secretsFound int) error {
	p.endings++
	return nil
}

func (p *fakePresenter) ShowGameOver() error {
	p.gameOvers++
	return nil
}

func (p *fakePresenter) ShowSanityMeter(sanity int) error {
	p.meters = append(p.meters, sanity)
	return nil
}

func (p *fakePresenter) Pause() error {
	p.pauses++
	return nil
}

func (p *fakePresenter) countKind(kind MessageKind) int {
	n := 0
	for _, m := range p.messages {
		if m.kind == kind {
			n++
		}
	}
	return n
}

var _ Presenter = (*fakePresenter)(nil)

// fakeStore is an in-memory SaveStore. A nil held state reports
// os.ErrNotExist from Load, matching a first run.
type fakeStore struct {
	state   *PlayerState
	saves   int
	saveErr error
	loadErr error
}

func (s *fakeStore) Save(state *PlayerState) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	copied := *state
	s.state = &copied
	return nil
}

func (s *fakeStore) Load() (*PlayerState, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.state == nil {
		return nil, fmt.Errorf("no save: %w", os.ErrNotExist)
	}
	return s.state, nil
}

var _ SaveStore = (*fakeStore)(nil)
