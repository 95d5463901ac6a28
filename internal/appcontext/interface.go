// Package appcontext provides the shared application context interface
// used by all commands. Commands depend on this interface rather than on
// the concrete App, which keeps them testable with Mock.
package appcontext

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/weather/internal/auth"
	"github.com/agentstation/weather/pkg/weatherapi"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/weather/app implements it.
type Interface interface {
	// Client builds a provider client for one command invocation. The API key
	// is resolved on every call; it fails when no key is configured or stored.
	Client() (*weatherapi.Client, error)

	// AuthStore returns the credential store holding the API key.
	AuthStore() *auth.Store

	// ConfiguredKey returns the key supplied by environment or config file, if any.
	ConfiguredKey() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Verbose reports whether provider error codes should be shown.
	Verbose() bool

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// Now returns the current wall-clock time.
	Now() time.Time

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
