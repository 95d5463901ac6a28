package auth

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/agentstation/weather/internal/appcontext"
	"github.com/agentstation/weather/internal/auth"
	"github.com/agentstation/weather/internal/cmd/emoji"
)

func newApp(t *testing.T) (*appcontext.Mock, *auth.Store) {
	t.Helper()
	keyring.MockInit()
	store := auth.NewStore()
	return &appcontext.Mock{
		AuthStoreFunc: func() *auth.Store { return store },
	}, store
}

func execute(t *testing.T, app appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAuthStore(t *testing.T) {
	app, store := newApp(t)

	out, err := execute(t, app, "first")
	require.NoError(t, err)
	assert.Contains(t, out, auth.MsgStored)
	assert.True(t, strings.HasPrefix(out, emoji.Success), "stored key is reported as success")

	out, err = execute(t, app, "second")
	require.NoError(t, err)
	assert.Contains(t, out, auth.MsgPresent)
	assert.True(t, strings.HasPrefix(out, emoji.Warning), "kept key is reported as a warning")
	assert.NotContains(t, out, emoji.Success)

	key, err := store.Authenticate()
	require.NoError(t, err)
	assert.Equal(t, "first", key)

	out, err = execute(t, app, "second", "--overwrite")
	require.NoError(t, err)
	assert.Contains(t, out, auth.MsgOverwritten)

	key, err = store.Authenticate()
	require.NoError(t, err)
	assert.Equal(t, "second", key)
}

func TestAuthStatus(t *testing.T) {
	app, store := newApp(t)

	out, err := execute(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No API key configured")

	_, err = store.StoreKey("abcdefgh1234", false)
	require.NoError(t, err)

	out, err = execute(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "API key configured")
	assert.Contains(t, out, "source: keyring")
	assert.Contains(t, out, "********1234")
	assert.NotContains(t, out, "abcdefgh1234")
}

func TestAuthStatusPrefersConfiguredKey(t *testing.T) {
	app, _ := newApp(t)
	app.ConfiguredKeyFunc = func() string { return "env-key-9876" }

	out, err := execute(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "source: env")
}

func TestAuthRemove(t *testing.T) {
	app, store := newApp(t)
	_, err := store.StoreKey("abc", false)
	require.NoError(t, err)

	out, err := execute(t, app, "remove")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed stored API key.")

	_, err = store.Authenticate()
	assert.Error(t, err)
}
