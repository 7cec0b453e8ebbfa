// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package game implements the Ghost Protocol engine: the challenge
// catalogue, player state, the per-challenge attempt machine, and the
// session loop.
//
// The package performs no I/O of its own. Terminal rendering goes through
// the Presenter interface and persistence goes through the SaveStore
// interface, so the engine can be driven entirely by fakes in tests.
package game

import "strings"

// ValidatorKind selects the comparison strategy a challenge uses to judge
// an answer. Validators are data, not closures: a single evaluator
// interprets the kind, which keeps the catalogue inspectable and the
// predicates trivially pure.
type ValidatorKind int

const (
	// ValidatorExact compares the raw input byte-for-byte against the
	// first accepted answer. Used for digits, identifiers and passwords
	// where case is significant.
	ValidatorExact ValidatorKind = iota

	// ValidatorCaseFold compares case-insensitively against the first
	// accepted answer. Interior whitespace is significant.
	ValidatorCaseFold

	// ValidatorAnyOf accepts the input when its loose normalization
	// (lowercased, '-' and '_' folded to spaces, whitespace collapsed)
	// equals any accepted answer. Used for puzzles with several valid
	// spellings.
	ValidatorAnyOf

	// ValidatorSubstring accepts the input when its tight normalization
	// (lowercased, all whitespace plus '-' and '_' removed) contains any
	// accepted answer. Used for open-ended answers.
	ValidatorSubstring
)

// Validator is a pure predicate over the raw user input.
//
// Validation must be total: any string, including empty or very long
// input, yields a deterministic boolean in time linear in the input
// length. Input decoding problems are a Presenter concern and never
// reach the validator.
type Validator struct {
	Kind    ValidatorKind
	Answers []string
}

// Evaluate reports whether answer is accepted. Leading and trailing
// whitespace never count against the player.
func (v Validator) Evaluate(answer string) bool {
	answer = strings.TrimSpace(answer)
	switch v.Kind {
	case ValidatorExact:
		return len(v.Answers) > 0 && answer == v.Answers[0]
	case ValidatorCaseFold:
		return len(v.Answers) > 0 && strings.EqualFold(answer, v.Answers[0])
	case ValidatorAnyOf:
		got := normalizeLoose(answer)
		for _, want := range v.Answers {
			if got == want {
				return true
			}
		}
		return false
	case ValidatorSubstring:
		got := normalizeTight(answer)
		for _, want := range v.Answers {
			if strings.Contains(got, want) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// normalizeLoose lowercases, folds '-' and '_' to spaces, and collapses
// runs of whitespace to a single space with the ends trimmed.
func normalizeLoose(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// normalizeTight lowercases and strips all whitespace and '_'. Hyphens
// survive so payloads that hinge on them, like a SQL comment, stay exact.
func normalizeTight(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '_':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Challenge is an immutable puzzle descriptor. The ID doubles as the
// completion-set key and is stable across releases.
type Challenge struct {
	ID          string
	Title       string
	Description string
	Level       int
	XPReward    int
	SanityCost  int
	Validator   Validator
	Hints       []string
}

// Validate runs the challenge's validator on the raw answer.
func (c *Challenge) Validate(answer string) bool {
	return c.Validator.Evaluate(answer)
}
