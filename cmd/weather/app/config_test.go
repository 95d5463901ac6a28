package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agentstation/weather/pkg/constants"
)

// TestLoadConfig_Defaults verifies defaults when nothing is configured.
func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("WEATHER_BASE_URL", "")
	t.Setenv("WEATHER_TIMEOUT", "")
	t.Setenv("WEATHER_RATE_LIMIT", "")
	t.Setenv("WEATHER_RATE_BURST", "")
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.BaseURL != constants.DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", config.BaseURL, constants.DefaultBaseURL)
	}
	if config.Timeout != constants.DefaultHTTPTimeout {
		t.Errorf("Timeout = %v, want %v", config.Timeout, constants.DefaultHTTPTimeout)
	}
	if config.RateLimit != constants.DefaultRateLimit {
		t.Errorf("RateLimit = %v, want %v", config.RateLimit, constants.DefaultRateLimit)
	}
	if config.RateBurst != constants.BurstSize {
		t.Errorf("RateBurst = %d, want %d", config.RateBurst, constants.BurstSize)
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestLoadConfig_EnvironmentVariables verifies WEATHER_* variables are read.
func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", " secret-key ")
	t.Setenv("WEATHER_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("WEATHER_TIMEOUT", "5s")
	t.Setenv("WEATHER_RATE_LIMIT", "2.5")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.APIKey != "secret-key" {
		t.Errorf("APIKey = %q, want secret-key", config.APIKey)
	}
	if config.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("BaseURL = %s", config.BaseURL)
	}
	if config.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", config.Timeout)
	}
	if config.RateLimit != 2.5 {
		t.Errorf("RateLimit = %v, want 2.5", config.RateLimit)
	}
}

// TestLoadConfig_File verifies an explicit config file is read.
func TestLoadConfig_File(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "")
	t.Setenv("WEATHER_TIMEOUT", "")

	path := filepath.Join(t.TempDir(), "weather.yaml")
	content := "api_key: file-key\ntimeout: 12s\nformat: yaml\n"
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want file-key", config.APIKey)
	}
	if config.Timeout != 12*time.Second {
		t.Errorf("Timeout = %v, want 12s", config.Timeout)
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %q, want yaml", config.Format)
	}
	if config.ConfigFile != path {
		t.Errorf("ConfigFile = %q, want %q", config.ConfigFile, path)
	}
}

// TestLoadConfig_MissingFile verifies an explicit but missing file fails.
func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() with missing file = nil error")
	}
}

// TestConfig_UpdateFromFlags verifies flags take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "table", Timeout: 30 * time.Second}

	config.UpdateFromFlags(true, false, true, "json", "", 0)
	if !config.Verbose || !config.NoColor {
		t.Error("boolean flags not applied")
	}
	if config.Format != "json" {
		t.Errorf("Format = %q, want json", config.Format)
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("zero timeout flag changed Timeout to %v", config.Timeout)
	}

	config.UpdateFromFlags(false, false, false, "", "error", 3*time.Second)
	if config.Format != "json" {
		t.Errorf("empty format flag changed Format to %q", config.Format)
	}
	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", config.LogLevel)
	}
	if config.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", config.Timeout)
	}
}
