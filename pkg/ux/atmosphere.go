// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// AtmosphereLevel defines how much of the horror dressing the terminal
// output carries.
type AtmosphereLevel string

const (
	// AtmosphereFull enables all visual flourishes: colors, typewriter
	// pacing, glitch effects, the works.
	AtmosphereFull AtmosphereLevel = "full"

	// AtmosphereStandard enables colors and icons but no timed effects.
	AtmosphereStandard AtmosphereLevel = "standard"

	// AtmosphereMinimal uses icons and basic formatting only.
	AtmosphereMinimal AtmosphereLevel = "minimal"

	// AtmospherePlain outputs unstyled text suitable for piping and CI.
	AtmospherePlain AtmosphereLevel = "plain"
)

// Atmosphere holds the current terminal dressing configuration.
type Atmosphere struct {
	// Level controls styling and effects richness.
	Level AtmosphereLevel

	// Effects gates the timed typewriter/glitch sequences separately,
	// so slow terminals can keep colors but skip the theatrics.
	Effects bool
}

var (
	currentAtmosphere = Atmosphere{
		Level:   AtmosphereFull,
		Effects: true,
	}
	atmosphereMu sync.RWMutex
)

// GetAtmosphere returns the current atmosphere settings.
func GetAtmosphere() Atmosphere {
	atmosphereMu.RLock()
	defer atmosphereMu.RUnlock()
	return currentAtmosphere
}

// SetAtmosphere replaces the current atmosphere settings.
func SetAtmosphere(a Atmosphere) {
	atmosphereMu.Lock()
	defer atmosphereMu.Unlock()
	currentAtmosphere = a
}

// SetAtmosphereLevel updates just the level.
func SetAtmosphereLevel(level AtmosphereLevel) {
	atmosphereMu.Lock()
	defer atmosphereMu.Unlock()
	currentAtmosphere.Level = level
	currentAtmosphere.Effects = level == AtmosphereFull
}

// ParseAtmosphereLevel converts a string to an AtmosphereLevel,
// defaulting to full for unrecognized values.
func ParseAtmosphereLevel(s string) AtmosphereLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return AtmosphereStandard
	case "minimal":
		return AtmosphereMinimal
	case "plain", "machine", "none":
		return AtmospherePlain
	default:
		return AtmosphereFull
	}
}

// DetectAtmosphere picks a level from the environment: NO_COLOR and
// non-TTY stdout both degrade to plain so piped output stays clean.
func DetectAtmosphere() AtmosphereLevel {
	if os.Getenv("NO_COLOR") != "" {
		return AtmospherePlain
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return AtmospherePlain
	}
	return AtmosphereFull
}
