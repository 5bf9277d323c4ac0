// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/taskmd/internal/domain"
	"github.com/runoshun/taskmd/internal/infra/config"
	"github.com/runoshun/taskmd/internal/infra/mdstore"
	"github.com/runoshun/taskmd/internal/infra/workspace"
	"github.com/runoshun/taskmd/internal/usecase"
)

// Config holds the application configuration paths.
type Config struct {
	WorkspaceRoot string // Directory holding the ledger file
	LedgerPath    string // Path to the ledger file (TODO.md by default)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store        domain.LedgerStore
	ConfigLoader domain.ConfigLoader

	// Pointer fields
	Logger *slog.Logger

	// Configuration
	Config Config
}

// New creates a new Container by resolving the workspace root from the
// given directory.
func New(dir string) (*Container, error) {
	root, err := workspace.Resolve(dir)
	if err != nil {
		return nil, err
	}

	configLoader := config.NewLoader(root)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	cfg := Config{
		WorkspaceRoot: root,
		LedgerPath:    filepath.Join(root, appConfig.File),
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(appConfig.LogLevel),
	}))

	return &Container{
		Store:        mdstore.New(cfg.LedgerPath),
		ConfigLoader: configLoader,
		Logger:       logger,
		Config:       cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, store domain.LedgerStore, configLoader domain.ConfigLoader, logger *slog.Logger) *Container {
	return &Container{
		Store:        store,
		ConfigLoader: configLoader,
		Logger:       logger,
		Config:       cfg,
	}
}

// parseLogLevel parses a log level string into slog.Level.
func parseLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Store, c.Logger)
}
