// Package backends opens the repository Set named by the store config.
package backends

import (
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/repository/memory"
	mongorepo "alcyxob/workout-tracker/internal/repository/mongo"
	"alcyxob/workout-tracker/internal/repository/postgres"
	"context"
	"fmt"
	"time"
)

// CloseFunc releases the backend's connections.
type CloseFunc func() error

// Open connects to the configured backend and returns its repositories.
// When cfg.Store.Seed is set the sample workouts are loaded into an empty store.
func Open(ctx context.Context, cfg config.Config, logger logging.Logger) (*repository.Set, CloseFunc, error) {
	var (
		set     *repository.Set
		closeFn CloseFunc
	)
	switch cfg.Store.Backend {
	case config.BackendMemory, "":
		set = memory.NewSet()
		closeFn = func() error { return nil }

	case config.BackendMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, db, err := mongorepo.Connect(connectCtx, cfg.Database.URI, cfg.Database.Name)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to mongodb: %w", err)
		}
		if err := mongorepo.EnsureIndexes(connectCtx, db); err != nil {
			_ = mongorepo.Disconnect(client)
			return nil, nil, fmt.Errorf("ensure mongodb indexes: %w", err)
		}
		set = mongorepo.NewSet(db)
		closeFn = func() error { return mongorepo.Disconnect(client) }

	case config.BackendPostgres:
		db, err := postgres.Open(cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		set = postgres.NewSet(db)
		closeFn = func() error { return postgres.Close(db) }

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	logger.Infof("Using %q store backend", backendName(cfg.Store.Backend))

	if cfg.Store.Seed {
		n, err := repository.Seed(ctx, set.Workouts)
		if err != nil {
			_ = closeFn()
			return nil, nil, err
		}
		if n > 0 {
			logger.Infof("Seeded %d sample workouts", n)
		}
	}
	return set, closeFn, nil
}

func backendName(b string) string {
	if b == "" {
		return config.BackendMemory
	}
	return b
}
