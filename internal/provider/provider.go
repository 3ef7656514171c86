// Package provider defines the capability-provider contract consumed
// by host registries, and implements it for the codex CLI.
package provider

import (
	"context"

	"github.com/opencode-ai/codexcli/pkg/types"
)

// CompletionStream is an ordered, finite, non-restartable sequence of
// completion events. Recv returns io.EOF after the terminal event;
// Close abandons the stream and releases the underlying process.
type CompletionStream interface {
	Recv() (types.CompletionEvent, error)
	Close() error
}

// Provider is the stable entry point a host registry consumes.
type Provider interface {
	// ID returns the unique provider identifier.
	ID() string

	// Name returns the human-readable provider name.
	Name() string

	// Icon returns the icon token hosts use to render the provider.
	Icon() string

	// Models returns the list of available models.
	Models() []types.Model

	// DefaultModel returns the model used when a request names none.
	DefaultModel() types.Model

	// IsAuthenticated reports the credential state.
	IsAuthenticated() bool

	// Authenticate loads credentials; idempotent on success.
	Authenticate() error

	// ResetCredentials clears any held credentials.
	ResetCredentials() error

	// StreamCompletion runs one completion call and streams its
	// events. It fails fast, without side effects, when the provider
	// is unauthenticated.
	StreamCompletion(ctx context.Context, req types.CompletionRequest) (CompletionStream, error)
}
