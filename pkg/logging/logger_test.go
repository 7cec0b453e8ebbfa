// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevelString verifies level names render for display.
func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

// TestParseLevel verifies config strings map to levels, with Info as
// the safe fallback.
func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
}

// TestFileLogging verifies quiet file logging writes one JSON object
// per line with the service attribute attached.
func TestFileLogging(t *testing.T) {
	dir := t.TempDir()

	logger := New(Config{
		Level:   LevelDebug,
		LogDir:  dir,
		Service: "test",
		Quiet:   true,
	})
	logger.Info("challenge completed", "challenge_id", "welcome", "xp", 50)
	logger.Debug("answer evaluated", "attempt", 1)
	require.NoError(t, logger.Close())

	filename := "test_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "challenge completed", entry["msg"])
	assert.Equal(t, "test", entry["service"])
	assert.Equal(t, "welcome", entry["challenge_id"])
	assert.EqualValues(t, 50, entry["xp"])
}

// TestLevelFiltering verifies messages below the configured level are
// dropped.
func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger := New(Config{
		Level:   LevelWarn,
		LogDir:  dir,
		Service: "filter",
		Quiet:   true,
	})
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")
	require.NoError(t, logger.Close())

	filename := "filter_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "dropped")
	assert.Equal(t, 2, strings.Count(string(data), "kept"))
}

// TestWithAttributes verifies child loggers carry their attributes
// into every entry without modifying the parent.
func TestWithAttributes(t *testing.T) {
	dir := t.TempDir()

	logger := New(Config{
		Level:  LevelInfo,
		LogDir: dir,
		Quiet:  true,
	})
	child := logger.With("session_id", "abc-123")
	child.Info("session started")
	logger.Info("no session attr")
	require.NoError(t, logger.Close())

	filename := "ghostprotocol_" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "abc-123")
	assert.NotContains(t, lines[1], "abc-123")
}

// TestCloseWithoutFile verifies Close is safe for stderr-only loggers
// and can be called more than once.
func TestCloseWithoutFile(t *testing.T) {
	logger := New(Config{Level: LevelInfo})
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
}

// TestDefault verifies the default logger is usable as-is.
func TestDefault(t *testing.T) {
	logger := Default()
	require.NotNil(t, logger)
	require.NotNil(t, logger.Slog())
	assert.Equal(t, "ghostprotocol", logger.config.Service)
	require.NoError(t, logger.Close())
}

// TestBadLogDirDegrades verifies an unwritable log directory does not
// break logging.
func TestBadLogDirDegrades(t *testing.T) {
	logger := New(Config{
		Level:  LevelInfo,
		LogDir: "/dev/null/not-a-dir",
	})
	logger.Info("still works")
	require.NoError(t, logger.Close())
	assert.Nil(t, logger.file)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".ghostprotocol/logs"), expandPath("~/.ghostprotocol/logs"))
	assert.Equal(t, "/var/log/game", expandPath("/var/log/game"))
	assert.Equal(t, "relative/path", expandPath("relative/path"))
	assert.Equal(t, "", expandPath(""))
}
