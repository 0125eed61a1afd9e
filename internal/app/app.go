// Package app wires configuration, logging, storage and the HTTP server
// together. Everything is created once in main and never replaced.
package app

import (
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

type App struct {
	logger  zerolog.Logger
	cfg     *config.Config
	storage storage.Storage
}

func New() *App {
	return &App{
		logger: newDefaultLogger(),
	}
}
