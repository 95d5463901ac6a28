// Package constants provides shared constants used throughout the weather client.
// This includes timeouts, limits, file permissions and provider identifiers
// that should be consistent across the application.
package constants

import "time"

// Application identity
const (
	// AppName is the name printed in banners and version output
	AppName = "weather"

	// KeyringService is the credential store service name for the API key
	KeyringService = "weather_app"

	// KeyringUser is the credential store user name for the API key
	KeyringUser = "weather_app_user"

	// APIKeyEnv is the environment variable that may carry the API key
	APIKeyEnv = "WEATHER_API_KEY"
)

// Provider constants
const (
	// DefaultBaseURL is the root of the weather provider API
	DefaultBaseURL = "http://api.weatherapi.com/v1"

	// ForecastHorizonDays is the furthest date, in days from today, the provider forecasts
	ForecastHorizonDays = 14

	// DateLayout is the provider's date format for the dt parameter
	DateLayout = "2006-01-02"

	// HourLayout is the provider's local timestamp format for hourly entries
	HourLayout = "2006-01-02 15:04"
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the provider
	DefaultHTTPTimeout = 30 * time.Second

	// ShutdownTimeout bounds cleanup after a failed command
	ShutdownTimeout = 5 * time.Second
)

// Rate limiting constants
const (
	// DefaultRateLimit is the default requests per second towards the provider
	DefaultRateLimit = 10

	// BurstSize is the token bucket burst size for rate limiting
	BurstSize = 5
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
