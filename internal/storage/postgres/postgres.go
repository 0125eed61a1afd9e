// Package postgres implements storage.Storage on top of a pgx connection pool.
package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

//go:embed schema.sql
var schema string

type Storage struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

var _ storage.Storage = (*Storage)(nil)

// Connect opens a pool, pings the server and makes sure the schema exists.
func Connect(ctx context.Context, logger zerolog.Logger, cfg config.PostgresConfig) (*Storage, error) {
	connURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host,
		cfg.Port, cfg.Database, cfg.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(connURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pgPool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	err = pgPool.Ping(pingCtx)
	if err != nil {
		pgPool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	err = createSchema(ctx, pgPool)
	if err != nil {
		pgPool.Close()
		return nil, err
	}

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("connected to postgres")
	return New(logger, pgPool), nil
}

func createSchema(ctx context.Context, pgPool *pgxpool.Pool) error {
	_, err := pgPool.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func New(logger zerolog.Logger, pgPool *pgxpool.Pool) *Storage {
	return &Storage{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *Storage) Close() error {
	s.pgPool.Close()
	s.logger.Info().Msg("disconnected from postgres")
	return nil
}
