// Package app provides the application context and dependency management
// for the menumap CLI. It centralizes configuration, logging and the
// lifecycle of the loaded dataset.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/menumap/cmd/application"
	"github.com/agentstation/menumap/pkg/errors"
	"github.com/agentstation/menumap/pkg/menus"
)

var _ application.Application = (*App)(nil)

// App represents the menumap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Dataset is loaded once, on first use. A failed load is cached too:
	// the file is never re-read for the lifetime of the process.
	mu         sync.RWMutex
	dataset    *menus.Dataset
	datasetErr error
	loaded     bool
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment and
// config file, which can be replaced using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.NewConfigError("app", "loading configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the format requested with -o/--format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Dataset returns the dataset read from the configured data path,
// loading it on first use. Safe for concurrent callers.
func (a *App) Dataset() (*menus.Dataset, error) {
	a.mu.RLock()
	if a.loaded {
		ds, err := a.dataset, a.datasetErr
		a.mu.RUnlock()
		return ds, err
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.loaded {
		return a.dataset, a.datasetErr
	}

	a.logger.Debug().Str("path", a.config.DataPath).Msg("Loading dataset")
	a.dataset, a.datasetErr = menus.LoadFile(a.config.DataPath)
	a.loaded = true
	return a.dataset, a.datasetErr
}

// Shutdown performs graceful shutdown of the application.
// The dataset holds no open resources.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Application shutdown")
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithDataset sets a preloaded dataset (useful for testing).
func WithDataset(ds *menus.Dataset) Option {
	return func(a *App) error {
		a.dataset = ds
		a.datasetErr = nil
		a.loaded = true
		return nil
	}
}
