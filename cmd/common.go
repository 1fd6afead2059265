package cmd

import (
	"context"
	"fmt"

	"ics-diff/core/config"
	"ics-diff/core/database"
	"ics-diff/core/report"
	"ics-diff/core/source"
	"ics-diff/core/storage"

	"go.uber.org/zap"
)

// newSourceLoader builds the loader shared by all commands. Object storage is
// wired only when enabled so file and git refs work without credentials.
func newSourceLoader(cfg *config.Config, l *zap.Logger, extra ...source.Option) (*source.Loader, error) {
	opts := append([]source.Option{source.WithLogger(l)}, extra...)

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		opts = append(opts, source.WithStorage(client, cfg.Storage.Bucket))
	}

	return source.NewLoader(cfg.Source, opts...), nil
}

// openStore connects to the history database and migrates it.
func openStore(ctx context.Context, cfg *config.Config) (*report.Store, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	store := report.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
