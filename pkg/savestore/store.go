// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package savestore persists player state as pretty-printed JSON at a
// fixed path. Writes are atomic: the file is written to a temp sibling
// and renamed into place, so a reader never observes a truncated save.
package savestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AleutianAI/ghost-protocol/pkg/game"
	"github.com/AleutianAI/ghost-protocol/pkg/logging"
)

// DefaultFileName is the save file name used when no path is configured.
const DefaultFileName = "game_save.json"

// ErrCorrupt marks a save file that exists but cannot be decoded into a
// valid player state. A missing file is reported via os.ErrNotExist
// instead, so callers can distinguish "never played" from "damaged".
var ErrCorrupt = errors.New("save file is corrupt")

// Store reads and writes one save file.
type Store struct {
	path string
	log  *logging.Logger
}

var _ game.SaveStore = (*Store)(nil)

// New returns a store bound to the given path. A nil logger falls back
// to the package default.
func New(path string, log *logging.Logger) *Store {
	if path == "" {
		path = DefaultFileName
	}
	if log == nil {
		log = logging.Default()
	}
	return &Store{path: path, log: log}
}

// Path returns the save file location.
func (s *Store) Path() string {
	return s.path
}

// saveFile is the on-disk schema. The essential fields are pointers so
// a decode can tell "absent" from "zero": a save missing the player
// name, sanity or experience is corrupt, while missing collections
// just default to empty. Unknown keys are ignored for forward
// compatibility.
type saveFile struct {
	CurrentLevel        int      `json:"current_level"`
	CompletedChallenges []string `json:"completed_challenges"`
	DiscoveredSecrets   []string `json:"discovered_secrets"`
	PlayerName          *string  `json:"player_name"`
	Sanity              *int     `json:"sanity"`
	Experience          *int     `json:"experience"`
}

// Save writes the state atomically. The temp file lives in the same
// directory as the target so the final rename stays on one filesystem.
func (s *Store) Save(state *game.PlayerState) error {
	doc := saveFile{
		CurrentLevel:        state.CurrentLevel,
		CompletedChallenges: sortedKeys(state.CompletedChallenges),
		DiscoveredSecrets:   sortedKeys(state.DiscoveredSecrets),
		PlayerName:          &state.PlayerName,
		Sanity:              &state.Sanity,
		Experience:          &state.Experience,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp save: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp save: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing save file: %w", err)
	}

	s.log.Debug("state saved",
		"path", s.path,
		"level", state.CurrentLevel,
		"completed", len(state.CompletedChallenges))
	return nil
}

// Load reads and decodes the save file. A missing file returns an error
// wrapping os.ErrNotExist; a present-but-undecodable file returns an
// error wrapping ErrCorrupt.
func (s *Store) Load() (*game.PlayerState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no save at %s: %w", s.path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("reading save: %w", err)
	}

	var doc saveFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if doc.PlayerName == nil || doc.Sanity == nil || doc.Experience == nil {
		return nil, fmt.Errorf("%w: missing essential fields", ErrCorrupt)
	}

	state := game.NewPlayerState(*doc.PlayerName)
	state.CurrentLevel = doc.CurrentLevel
	state.Sanity = *doc.Sanity
	state.Experience = *doc.Experience
	for _, id := range doc.CompletedChallenges {
		state.CompletedChallenges[id] = struct{}{}
	}
	for _, secret := range doc.DiscoveredSecrets {
		state.DiscoveredSecrets[secret] = struct{}{}
	}

	s.log.Debug("state loaded",
		"path", s.path,
		"player", state.PlayerName,
		"level", state.CurrentLevel)
	return state, nil
}

// Exists reports whether a save file is present without reading it.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Delete removes the save file. Deleting an absent save is not an
// error.
func (s *Store) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing save: %w", err)
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
