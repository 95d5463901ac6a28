package appcontext

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/weather/internal/auth"
	"github.com/agentstation/weather/pkg/weatherapi"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	ClientFunc        func() (*weatherapi.Client, error)
	AuthStoreFunc     func() *auth.Store
	ConfiguredKeyFunc func() string
	LoggerFunc        func() *zerolog.Logger
	OutputFormatFunc  func() string
	VerboseFunc       func() bool
	NoColorFunc       func() bool
	NowFunc           func() time.Time
	VersionFunc       func() string
	CommitFunc        func() string
	DateFunc          func() string
	BuiltByFunc       func() string
}

// Client returns a client using the mock function or one with no key.
func (m *Mock) Client() (*weatherapi.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return weatherapi.NewClient(""), nil
}

// AuthStore returns a store using the mock function or the OS store.
func (m *Mock) AuthStore() *auth.Store {
	if m.AuthStoreFunc != nil {
		return m.AuthStoreFunc()
	}
	return auth.NewStore()
}

// ConfiguredKey returns the key using the mock function or "".
func (m *Mock) ConfiguredKey() string {
	if m.ConfiguredKeyFunc != nil {
		return m.ConfiguredKeyFunc()
	}
	return ""
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Verbose returns the mock value or false.
func (m *Mock) Verbose() bool {
	if m.VerboseFunc != nil {
		return m.VerboseFunc()
	}
	return false
}

// NoColor returns the mock value or true.
func (m *Mock) NoColor() bool {
	if m.NoColorFunc != nil {
		return m.NoColorFunc()
	}
	return true
}

// Now returns the mock time or time.Now.
func (m *Mock) Now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	return time.Now()
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}

var _ Interface = (*Mock)(nil)
