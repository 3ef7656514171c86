// Package credentials holds the authorization secret for the codex
// binary and the lifecycle around it: load once from the codex
// configuration file, expose the authenticated state, reset on demand.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/opencode-ai/codexcli/internal/event"
	"github.com/opencode-ai/codexcli/internal/logging"
)

// ErrCredentialsNotFound means the codex configuration file is missing
// or does not carry an api_key. Recoverable by user action; hosts
// should surface it as an authentication state, not a crash.
var ErrCredentialsNotFound = errors.New("codex credentials not found")

// codexConfig is the subset of ~/.codex/config.toml this adapter reads.
type codexConfig struct {
	APIKey string `toml:"api_key"`
}

// Store guards the secret with a single-writer/multi-reader discipline
// so concurrent streaming calls never observe a half-updated value.
// Construct it empty via NewStore; mutate only through Authenticate
// and Reset.
type Store struct {
	mu     sync.RWMutex
	apiKey string
	bus    *event.Bus
}

// NewStore creates an unauthenticated store. bus may be nil when no
// observer notifications are wanted.
func NewStore(bus *event.Bus) *Store {
	return &Store{bus: bus}
}

// IsAuthenticated reports whether a secret is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey != ""
}

// APIKey returns a snapshot of the secret and whether one is held.
func (s *Store) APIKey() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey, s.apiKey != ""
}

// Authenticate loads the secret from ~/.codex/config.toml. It is
// idempotent: once authenticated it succeeds without touching the
// file system again. A missing file or missing api_key yields
// ErrCredentialsNotFound; an unreadable or malformed file yields a
// wrapped generic error.
func (s *Store) Authenticate() error {
	if s.IsAuthenticated() {
		return nil
	}

	path, err := ConfigPath()
	if err != nil {
		return fmt.Errorf("resolve codex config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrCredentialsNotFound
		}
		return fmt.Errorf("read codex config: %w", err)
	}

	var cfg codexConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse codex config: %w", err)
	}
	if cfg.APIKey == "" {
		return ErrCredentialsNotFound
	}

	s.mu.Lock()
	if s.apiKey != "" {
		// Lost the race against a concurrent Authenticate; keep the
		// value already stored.
		s.mu.Unlock()
		return nil
	}
	s.apiKey = cfg.APIKey
	s.mu.Unlock()

	logging.Debug().Str("path", path).Msg("codex credentials loaded")
	s.notify(event.CredentialsChanged)
	return nil
}

// Reset clears the stored secret unconditionally. It always succeeds.
func (s *Store) Reset() error {
	s.mu.Lock()
	s.apiKey = ""
	s.mu.Unlock()

	s.notify(event.CredentialsReset)
	return nil
}

func (s *Store) notify(t event.Type) {
	if s.bus != nil {
		s.bus.Publish(event.Event{Type: t})
	}
}

// ConfigPath is the fixed location of the codex configuration file
// under the user's home directory.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".codex", "config.toml"), nil
}
