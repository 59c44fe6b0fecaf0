// Package app provides the application context and dependency management
// for the romcheck CLI. It centralizes configuration, logging, and
// lifecycle management so commands only depend on the small slice of it
// they declare.
package app

import (
	"context"

	"github.com/rs/zerolog"
)

// App represents the romcheck application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// and config files, which flag parsing later refines.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
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

// DATFile returns the DAT file path from configuration, if any.
func (a *App) DATFile() string {
	return a.config.DATFile
}

// SetType returns the configured ROM set layout.
func (a *App) SetType() string {
	return a.config.SetType
}

// Quiet reports whether minimal output was requested.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// Shutdown performs graceful shutdown of the application. Romcheck runs
// no background tasks today, so this is a hook for command cleanup.
func (a *App) Shutdown(_ context.Context) error {
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
