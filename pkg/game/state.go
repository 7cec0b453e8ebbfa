// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

const (
	// MaxSanity is the upper clamp for the sanity meter.
	MaxSanity = 100

	// MaxLevel is the highest level experience can unlock.
	MaxLevel = 10

	// xpPerLevel is the experience required per level of progression.
	xpPerLevel = 100
)

// PlayerState is the full mutable record of one player's run. All
// mutation goes through its methods so invariants hold at every point
// in a session: sanity stays within [0, MaxSanity], the level never
// decreases, and completed challenge IDs form a set.
type PlayerState struct {
	PlayerName          string
	CurrentLevel        int
	Sanity              int
	Experience          int
	CompletedChallenges map[string]struct{}
	DiscoveredSecrets   map[string]struct{}
}

// NewPlayerState returns a fresh run for the named player: level 0,
// full sanity, no experience, nothing completed.
func NewPlayerState(name string) *PlayerState {
	return &PlayerState{
		PlayerName:          name,
		CurrentLevel:        0,
		Sanity:              MaxSanity,
		Experience:          0,
		CompletedChallenges: make(map[string]struct{}),
		DiscoveredSecrets:   make(map[string]struct{}),
	}
}

// CompleteChallenge records the challenge as solved and banks its
// experience reward. Adding the ID twice leaves the set unchanged but
// the reward is credited each call; callers gate on HasCompleted to
// avoid double awards. Level is recomputed from total experience and
// only ever moves up.
func (s *PlayerState) CompleteChallenge(challengeID string, rewardXP int) {
	s.CompletedChallenges[challengeID] = struct{}{}
	s.Experience += rewardXP

	newLevel := s.Experience / xpPerLevel
	if newLevel > MaxLevel {
		newLevel = MaxLevel
	}
	if newLevel > s.CurrentLevel {
		s.CurrentLevel = newLevel
	}
}

// ModifySanity shifts sanity by amount, clamping to [0, MaxSanity].
func (s *PlayerState) ModifySanity(amount int) {
	s.Sanity += amount
	if s.Sanity < 0 {
		s.Sanity = 0
	}
	if s.Sanity > MaxSanity {
		s.Sanity = MaxSanity
	}
}

// DiscoverSecret records a named secret the player has uncovered.
func (s *PlayerState) DiscoverSecret(secret string) {
	s.DiscoveredSecrets[secret] = struct{}{}
}

// HasCompleted reports whether the challenge has already been solved.
func (s *PlayerState) HasCompleted(challengeID string) bool {
	_, ok := s.CompletedChallenges[challengeID]
	return ok
}

// IsInsane reports whether sanity has been fully depleted.
func (s *PlayerState) IsInsane() bool {
	return s.Sanity <= 0
}

// RemainingByLevel returns the catalogued challenges of the given level
// the player has not yet completed, in catalogue order.
func (s *PlayerState) RemainingByLevel(cat *Catalogue, level int) []Challenge {
	var out []Challenge
	for _, ch := range cat.ByLevel(level) {
		if !s.HasCompleted(ch.ID) {
			out = append(out, ch)
		}
	}
	return out
}

// AllCompleted reports whether every catalogued challenge is solved.
func (s *PlayerState) AllCompleted(cat *Catalogue) bool {
	for _, ch := range cat.All() {
		if !s.HasCompleted(ch.ID) {
			return false
		}
	}
	return true
}
