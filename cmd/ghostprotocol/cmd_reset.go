// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/AleutianAI/ghost-protocol/pkg/savestore"
	"github.com/AleutianAI/ghost-protocol/pkg/ux"
	"github.com/spf13/cobra"
)

// runReset deletes the save file after an interactive confirmation,
// unless --force was given.
func runReset(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Close()

	store := savestore.New(savePath(), logger)
	if !store.Exists() {
		ux.Warning("No saved game to delete.")
		return nil
	}

	if !resetForce {
		ux.Title("SYSTEM RESET")
		ok, err := ux.Confirm("Delete your saved game? This cannot be undone.")
		if err != nil {
			return err
		}
		if !ok {
			ux.Muted("Reset cancelled.")
			return nil
		}
	}

	if err := store.Delete(); err != nil {
		return err
	}
	logger.Info("save deleted", "path", store.Path())
	ux.Success("Save deleted. The system remembers you anyway.")
	return nil
}
