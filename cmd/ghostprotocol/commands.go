// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/AleutianAI/ghost-protocol/cmd/ghostprotocol/config"
	"github.com/AleutianAI/ghost-protocol/pkg/ux"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	atmosphereLevel string // display atmosphere override (full/standard/minimal/plain)
	savePathFlag    string // save file path override
	resetForce      bool   // skip the reset confirmation

	rootCmd = &cobra.Command{
		Use:   "ghostprotocol",
		Short: "A horror-themed hacking puzzle game for your terminal",
		Long: `THE HACK: Ghost Protocol is a terminal puzzle game. Solve
cybersecurity challenges across five levels of a haunted system,
watch your sanity, and find out what is really living in the code.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			ux.SetAtmosphereLevel(resolveAtmosphere(atmosphereLevel, config.Global.Display.Atmosphere))
			return nil
		},
		// Bare invocation starts the game. Errors are styled by
		// main, so cobra stays quiet about them.
		RunE:          runPlay,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Start a new game or resume the saved one",
		RunE:  runPlay,
	}

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show progress from the saved game",
		RunE:  runStats,
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved game and start over",
		RunE:  runReset,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&atmosphereLevel, "atmosphere", "",
		"display atmosphere: full, standard, minimal, or plain (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&savePathFlag, "save", "",
		"override the save file path")
	resetCmd.Flags().BoolVar(&resetForce, "force", false,
		"delete without asking for confirmation")

	rootCmd.AddCommand(playCmd, statsCmd, resetCmd)
}
