// Package app provides the application context and dependency management
// for the weather CLI. It centralizes configuration, logging and the
// construction of provider clients.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/weather/internal/appcontext"
	"github.com/agentstation/weather/internal/auth"
	"github.com/agentstation/weather/pkg/errors"
	"github.com/agentstation/weather/pkg/weatherapi"
)

// App represents the weather application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	store *auth.Store
	now   func() time.Time

	// extra client options, used by tests to point at a fake provider
	clientOpts []weatherapi.Option
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment that
// can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		now:     time.Now,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.store == nil {
		app.store = auth.NewStore()
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

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Verbose reports whether verbose output was requested.
func (a *App) Verbose() bool {
	return a.config.Verbose
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Now returns the current time.
func (a *App) Now() time.Time {
	return a.now()
}

// AuthStore returns the credential store.
func (a *App) AuthStore() *auth.Store {
	return a.store
}

// ConfiguredKey returns the API key from environment or config file.
func (a *App) ConfiguredKey() string {
	return a.config.APIKey
}

// Client builds a provider client. The key is resolved on every call so a
// key stored mid-session is picked up and nothing holds it afterwards.
func (a *App) Client() (*weatherapi.Client, error) {
	key, source, err := auth.Resolve(a.config.APIKey, a.store)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Str("source", string(source)).Msg("Resolved API key")

	opts := []weatherapi.Option{
		weatherapi.WithBaseURL(a.config.BaseURL),
		weatherapi.WithTimeout(a.config.Timeout),
		weatherapi.WithRateLimit(a.config.RateLimit, a.config.RateBurst),
		weatherapi.WithClock(a.now),
		weatherapi.WithLogger(a.logger),
	}
	opts = append(opts, a.clientOpts...)

	return weatherapi.NewClient(key, opts...), nil
}

// Shutdown flushes anything pending before exit. The CLI holds no
// background work, so this only records the shutdown.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return ctx.Err()
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

// WithAuthStore sets the credential store.
func WithAuthStore(store *auth.Store) Option {
	return func(a *App) error {
		a.store = store
		return nil
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(a *App) error {
		if now != nil {
			a.now = now
		}
		return nil
	}
}

// WithClientOptions appends options applied to every provider client.
func WithClientOptions(opts ...weatherapi.Option) Option {
	return func(a *App) error {
		a.clientOpts = append(a.clientOpts, opts...)
		return nil
	}
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
