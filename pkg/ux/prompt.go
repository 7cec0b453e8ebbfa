// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Confirm asks a yes/no question with an interactive form on a TTY,
// falling back to a plain y/N prompt otherwise. The fallback defaults
// to no, matching the destructive operations it guards.
func Confirm(title string) (bool, error) {
	if !isInteractive() {
		fmt.Printf("%s [y/N]: ", title)
		var answer string
		if _, err := fmt.Scanln(&answer); err != nil {
			// Empty input reads as an error from Scanln; treat as "no".
			return false, nil
		}
		return strings.HasPrefix(strings.ToLower(answer), "y"), nil
	}

	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return confirmed, nil
}

func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
