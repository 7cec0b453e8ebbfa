// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/AleutianAI/ghost-protocol/pkg/game"
	"github.com/AleutianAI/ghost-protocol/pkg/savestore"
	"github.com/AleutianAI/ghost-protocol/pkg/ux"
	"github.com/spf13/cobra"
)

// runPlay wires the catalogue, the presenter, and the save store into
// a session and runs it to completion. All three outcomes (win, game
// over, quit) are normal exits; only infrastructure failures return an
// error.
func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Close()

	store := savestore.New(savePath(), logger)
	term := ux.NewTerminal(nil, nil)
	session := game.NewSession(game.DefaultCatalogue(), term, store, logger)

	outcome, err := session.Run()
	if err != nil {
		logger.Error("session failed", "error", err.Error())
		return err
	}
	logger.Info("session ended", "outcome", outcome.String())
	return nil
}
