// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/AleutianAI/ghost-protocol/cmd/ghostprotocol/config"
	"github.com/AleutianAI/ghost-protocol/pkg/logging"
	"github.com/AleutianAI/ghost-protocol/pkg/ux"
)

// resolveAtmosphere picks the display level: the CLI flag wins, then
// the config file, then terminal auto-detection.
func resolveAtmosphere(flag, configured string) ux.AtmosphereLevel {
	if flag != "" {
		return ux.ParseAtmosphereLevel(flag)
	}
	if configured != "" {
		return ux.ParseAtmosphereLevel(configured)
	}
	return ux.DetectAtmosphere()
}

// savePath returns the effective save file location, honoring the
// --save override.
func savePath() string {
	if savePathFlag != "" {
		return config.ExpandPath(savePathFlag)
	}
	return config.Global.SavePath()
}

// newLogger builds the logger from the loaded config. Callers own
// Close.
func newLogger() *logging.Logger {
	lc := config.Global.Logging
	return logging.New(logging.Config{
		Level:   logging.ParseLevel(lc.Level),
		LogDir:  lc.Dir,
		Service: "game",
		Quiet:   lc.Quiet,
	})
}
