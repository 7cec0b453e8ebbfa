// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AleutianAI/ghost-protocol/pkg/game"
	"github.com/AleutianAI/ghost-protocol/pkg/savestore"
	"github.com/AleutianAI/ghost-protocol/pkg/ux"
	"github.com/spf13/cobra"
)

// runStats renders the saved game's progress without starting a
// session.
func runStats(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Close()

	store := savestore.New(savePath(), logger)
	state, err := store.Load()
	if errors.Is(err, os.ErrNotExist) {
		ux.Info("No saved game found. Run 'ghostprotocol play' to start one.")
		return nil
	}
	if errors.Is(err, savestore.ErrCorrupt) {
		return fmt.Errorf("the save file is corrupt; run 'ghostprotocol reset' to start over")
	}
	if err != nil {
		return err
	}

	term := ux.NewTerminal(os.Stdout, ux.NewScriptedReader(nil))
	if err := term.ShowStats(state, game.DefaultCatalogue()); err != nil {
		return err
	}
	ux.Separator()
	return nil
}
