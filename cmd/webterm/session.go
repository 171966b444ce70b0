package main

import (
	"github.com/koisuji02/webterm/internal/content"
	"github.com/koisuji02/webterm/internal/games/grid"
	"github.com/koisuji02/webterm/internal/shell"
	"github.com/koisuji02/webterm/internal/storage"
)

// loadEnv reads the documents the shell answers from. A broken project
// catalog is logged and replaced by an empty one.
func loadEnv() (shell.Env, error) {
	profile, err := content.LoadProfile(flagContent)
	if err != nil {
		return shell.Env{}, err
	}

	catalog, err := content.LoadCatalog(flagProjectsDir)
	if err != nil {
		logger.Warn("could not load projects, continuing without them", "error", err)
		catalog = content.Catalog{}
	}
	if catalog.Empty() {
		logger.Info("no projects configured", "dir", flagProjectsDir)
	}

	env := shell.Env{
		Profile:  profile,
		Projects: catalog,
	}
	if flagSeed != 0 {
		env.Rand = grid.NewRand(flagSeed)
	}
	return env, nil
}

// openStore opens the score database, or returns nil if it is unavailable.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
