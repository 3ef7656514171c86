package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/codexcli/internal/event"
)

func writeCodexConfig(t *testing.T, contents string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".codex")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(contents), 0o600))
}

func TestAuthenticate_Success(t *testing.T) {
	writeCodexConfig(t, "api_key = \"test\"\n")

	store := NewStore(nil)
	assert.False(t, store.IsAuthenticated())

	require.NoError(t, store.Authenticate())
	assert.True(t, store.IsAuthenticated())

	key, ok := store.APIKey()
	assert.True(t, ok)
	assert.Equal(t, "test", key)
}

func TestAuthenticate_Idempotent(t *testing.T) {
	writeCodexConfig(t, "api_key = \"first\"\n")

	store := NewStore(nil)
	require.NoError(t, store.Authenticate())

	// A second call must not re-read the file.
	writeCodexConfig(t, "api_key = \"second\"\n")
	require.NoError(t, store.Authenticate())

	key, _ := store.APIKey()
	assert.Equal(t, "first", key)
}

func TestAuthenticate_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store := NewStore(nil)
	err := store.Authenticate()

	assert.ErrorIs(t, err, ErrCredentialsNotFound)
	assert.False(t, store.IsAuthenticated())
}

func TestAuthenticate_MissingKey(t *testing.T) {
	writeCodexConfig(t, "model = \"default\"\n")

	store := NewStore(nil)
	assert.ErrorIs(t, store.Authenticate(), ErrCredentialsNotFound)
}

func TestAuthenticate_EmptyKey(t *testing.T) {
	writeCodexConfig(t, "api_key = \"\"\n")

	store := NewStore(nil)
	assert.ErrorIs(t, store.Authenticate(), ErrCredentialsNotFound)
	assert.False(t, store.IsAuthenticated())
}

func TestAuthenticate_MalformedFile(t *testing.T) {
	writeCodexConfig(t, "api_key = [unbalanced\n")

	store := NewStore(nil)
	err := store.Authenticate()

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCredentialsNotFound)
	assert.False(t, store.IsAuthenticated())
}

func TestReset(t *testing.T) {
	writeCodexConfig(t, "api_key = \"test\"\n")

	store := NewStore(nil)
	require.NoError(t, store.Authenticate())
	require.NoError(t, store.Reset())

	assert.False(t, store.IsAuthenticated())
	_, ok := store.APIKey()
	assert.False(t, ok)
}

func TestObserverNotifications(t *testing.T) {
	writeCodexConfig(t, "api_key = \"test\"\n")

	bus := event.NewBus()
	defer bus.Close()

	var seen []event.Type
	bus.Subscribe(event.CredentialsChanged, func(e event.Event) { seen = append(seen, e.Type) })
	bus.Subscribe(event.CredentialsReset, func(e event.Event) { seen = append(seen, e.Type) })

	store := NewStore(bus)
	require.NoError(t, store.Authenticate())
	require.NoError(t, store.Authenticate()) // no-op, no second notification
	require.NoError(t, store.Reset())

	assert.Equal(t, []event.Type{event.CredentialsChanged, event.CredentialsReset}, seen)
}
