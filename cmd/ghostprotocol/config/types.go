// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"os"
	"path/filepath"
)

type GameConfig struct {
	// Save: where the save file lives
	Save SaveConfig `yaml:"save"`

	// Display: atmosphere level and effect toggles
	Display DisplayConfig `yaml:"display"`

	// Logging: diagnostic output for debugging sessions
	Logging LoggingConfig `yaml:"logging"`
}

type SaveConfig struct {
	Path string `yaml:"path"` // e.g. ~/.ghostprotocol/game_save.json
}

type DisplayConfig struct {
	// Atmosphere can be "full", "standard", "minimal", or "plain".
	// Empty means auto-detect from the terminal.
	Atmosphere string `yaml:"atmosphere,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`   // e.g. ~/.ghostprotocol/logs
	Quiet bool   `yaml:"quiet"` // suppress stderr while the game owns the terminal
}

func DefaultConfig() GameConfig {
	return GameConfig{
		Save: SaveConfig{
			Path: "~/.ghostprotocol/game_save.json",
		},
		Display: DisplayConfig{
			Atmosphere: "",
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "~/.ghostprotocol/logs",
			Quiet: true,
		},
	}
}

// SavePath returns the save file location with ~ expanded.
func (c GameConfig) SavePath() string {
	return ExpandPath(c.Save.Path)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
