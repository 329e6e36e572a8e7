package main

import (
	"database/sql"
	"log/slog"

	"tasktrackr/internal/config"
	"tasktrackr/internal/platform/postgres"
	"tasktrackr/internal/service"
)

// application holds the long-lived dependencies of the server: the
// configuration, the root logger, the shared database handle, and the
// services built on top of it. Everything is injected at construction;
// there are no package-level globals.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskService service.TaskService
	userService service.UserService
}

// newApplication wires stores and services onto the shared database
// handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	taskStore := postgres.NewPostgresTaskStore(db, logger)
	userStore := postgres.NewPostgresUserStore(db, logger)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		taskService: service.NewTaskService(taskStore, logger),
		userService: service.NewUserService(userStore, logger),
	}
}

// cleanup releases resources held by the application. Called after the
// HTTP server has drained.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}
