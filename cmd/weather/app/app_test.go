package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zalando/go-keyring"

	"github.com/agentstation/weather/internal/auth"
	"github.com/agentstation/weather/pkg/errors"
	"github.com/agentstation/weather/pkg/logging"
)

func newTestApp(t *testing.T, config *Config) *App {
	t.Helper()
	keyring.MockInit()

	app, err := New("1.0.0", "abc123", "2024-01-01", "test",
		WithConfig(config),
		WithLogger(logging.NewNopLogger()),
		WithAuthStore(auth.NewStore()),
		WithClock(func() time.Time { return time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC) }),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app := newTestApp(t, &Config{})

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.AuthStore() == nil {
		t.Error("AuthStore() returned nil")
	}
}

// TestApp_Client_KeyResolution verifies where the client key comes from.
func TestApp_Client_KeyResolution(t *testing.T) {
	app := newTestApp(t, &Config{})

	if _, err := app.Client(); !errors.IsAPIKeyError(err) {
		t.Fatalf("Client() without key error = %v, want API key error", err)
	}

	if _, err := app.AuthStore().StoreKey("stored", false); err != nil {
		t.Fatalf("StoreKey() failed: %v", err)
	}
	if _, err := app.Client(); err != nil {
		t.Fatalf("Client() with stored key failed: %v", err)
	}
}

// TestApp_Execute runs a full command against a fake provider.
func TestApp_Execute(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		fmt.Fprint(w, `{"location":{"name":"London","country":"United Kingdom"},"current":{"temp_c":16,"humidity":63,"last_updated":"2024-05-01 14:15","condition":{"text":"Sunny"}}}`)
	}))
	defer srv.Close()

	app := newTestApp(t, &Config{APIKey: "env-key", BaseURL: srv.URL, Timeout: time.Second, LogOutput: "discard"})

	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"current", "london", "-o", "json"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if gotKey != "env-key" {
		t.Errorf("key = %q, want env-key", gotKey)
	}
	if !strings.Contains(out.String(), `"Sunny"`) {
		t.Errorf("output missing condition: %s", out.String())
	}
	if app.Config().Format != "json" {
		t.Errorf("Format = %q, want json", app.Config().Format)
	}
}

// TestApp_Execute_InvalidFormat verifies flag validation before any request.
func TestApp_Execute_InvalidFormat(t *testing.T) {
	app := newTestApp(t, &Config{APIKey: "k", LogOutput: "discard"})

	err := app.Execute(context.Background(), []string{"current", "london", "-o", "xml"})
	if !errors.IsValidationError(err) {
		t.Fatalf("Execute() error = %v, want validation error", err)
	}
}

// TestApp_Shutdown verifies shutdown honours the context.
func TestApp_Shutdown(t *testing.T) {
	app := newTestApp(t, &Config{})

	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() = %v, want nil", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.Shutdown(ctx); err == nil {
		t.Error("Shutdown() with cancelled context = nil, want error")
	}
}
