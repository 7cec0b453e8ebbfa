// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import "testing"

func TestValidator_Evaluate(t *testing.T) {
	tests := []struct {
		name      string
		validator Validator
		answer    string
		want      bool
	}{
		// Exact
		{
			name:      "exact match",
			validator: Validator{Kind: ValidatorExact, Answers: []string{"6666"}},
			answer:    "6666",
			want:      true,
		},
		{
			name:      "exact rejects surrounding whitespace difference only after trim",
			validator: Validator{Kind: ValidatorExact, Answers: []string{"6666"}},
			answer:    "  6666  ",
			want:      true,
		},
		{
			name:      "exact is case sensitive",
			validator: Validator{Kind: ValidatorExact, Answers: []string{"ghost_admin_2024"}},
			answer:    "GHOST_ADMIN_2024",
			want:      false,
		},

		// Case-fold
		{
			name:      "casefold accepts different case",
			validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"welcome to the ghost protocol"}},
			answer:    "Welcome To The GHOST Protocol",
			want:      true,
		},
		{
			name:      "casefold trims whitespace",
			validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"ghost"}},
			answer:    "  GHOST ",
			want:      true,
		},
		{
			name:      "casefold rejects wrong word",
			validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"rotation"}},
			answer:    "rotate",
			want:      false,
		},

		// Any-of with loose normalization
		{
			name:      "anyof matches first alternative",
			validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"session hijacking", "session hijack"}},
			answer:    "Session Hijacking",
			want:      true,
		},
		{
			name:      "anyof folds hyphens to spaces",
			validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"cross origin resource sharing"}},
			answer:    "Cross-Origin Resource Sharing",
			want:      true,
		},
		{
			name:      "anyof folds underscores and collapses runs",
			validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"sandbox evasion"}},
			answer:    "sandbox__evasion",
			want:      true,
		},
		{
			name:      "anyof rejects non-member",
			validator: Validator{Kind: ValidatorAnyOf, Answers: []string{"buffer overflow", "overflow"}},
			answer:    "stack smash",
			want:      false,
		},

		// Substring with tight normalization
		{
			name:      "substring matches embedded needle",
			validator: Validator{Kind: ValidatorSubstring, Answers: []string{"ransom"}},
			answer:    "ransomware",
			want:      true,
		},
		{
			name:      "substring ignores spacing and case",
			validator: Validator{Kind: ValidatorSubstring, Answers: []string{"formatstring"}},
			answer:    "Format String vulnerability",
			want:      true,
		},
		{
			name:      "substring strips underscores",
			validator: Validator{Kind: ValidatorSubstring, Answers: []string{"secretpass"}},
			answer:    "Secret_Pass 2024",
			want:      true,
		},
		{
			name:      "substring sql payload with spaces",
			validator: Validator{Kind: ValidatorSubstring, Answers: []string{"'or'1'='1'--", "'or1=1--", "admin'--"}},
			answer:    "' OR '1'='1' --",
			want:      true,
		},
		{
			name:      "substring sql payload needs the comment",
			validator: Validator{Kind: ValidatorSubstring, Answers: []string{"'or'1'='1'--", "'or1=1--", "admin'--"}},
			answer:    "' OR '1'='1'",
			want:      false,
		},
		{
			name:      "substring rejects absent needle",
			validator: Validator{Kind: ValidatorSubstring, Answers: []string{"malware"}},
			answer:    "benign software",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.validator.Evaluate(tt.answer)
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestChallenge_Validate(t *testing.T) {
	ch := Challenge{
		ID:        "welcome",
		Validator: Validator{Kind: ValidatorCaseFold, Answers: []string{"welcome to the ghost protocol"}},
	}

	if !ch.Validate("WELCOME TO THE GHOST PROTOCOL") {
		t.Error("expected case-insensitive match to pass")
	}
	if ch.Validate("goodbye") {
		t.Error("expected wrong answer to fail")
	}
}
