package app

import (
	"context"
	"fmt"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
	"github.com/adanyl0v/go-task-tracker/internal/storage/postgres"
	"github.com/adanyl0v/go-task-tracker/internal/storage/sqlite"
)

func (a *App) MustOpenStorage() {
	ctx := context.Background()
	logger := a.logger.With().
		Str("storage_driver", a.cfg.Storage.Driver).
		Logger()

	var (
		s   storage.Storage
		err error
	)
	switch a.cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		s, err = postgres.Connect(ctx, logger, a.cfg.Postgres)
	case config.StorageDriverSQLite:
		s, err = sqlite.Open(ctx, logger, a.cfg.SQLite.Path)
	default:
		err = fmt.Errorf("unknown storage driver: %s", a.cfg.Storage.Driver)
	}
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to open storage")
		panic(err)
	}

	a.storage = s
}

func (a *App) closeStorage() error {
	err := a.storage.Close()
	if err != nil {
		a.logger.Error().
			Err(err).
			Msg("failed to close storage")
		return err
	}
	a.logger.Info().Msg("closed storage")
	return nil
}
