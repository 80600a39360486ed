package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/relations-core/internal/domain/services"
	"github.com/ersonp/relations-core/internal/infrastructure/config"
	"github.com/ersonp/relations-core/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config  *config.Config
	Store   *sqlite.Repository
	Service *services.RelationshipService
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := os.MkdirAll(config.ConfigDir(cwd), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	store, err := sqlite.NewRepository(cfg.SQLite)
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(context.Background()); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	return fn(&Deps{
		Config:  cfg,
		Store:   store,
		Service: services.NewRelationshipService(store),
	})
}
