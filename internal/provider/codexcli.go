package provider

import (
	"context"
	"errors"

	"github.com/opencode-ai/codexcli/internal/codex"
	"github.com/opencode-ai/codexcli/internal/credentials"
	"github.com/opencode-ai/codexcli/internal/logging"
	"github.com/opencode-ai/codexcli/pkg/types"
)

const (
	// ProviderID is the unique identifier of the codex CLI provider.
	ProviderID = "codex-cli"
	// ProviderName is the display name.
	ProviderName = "Codex CLI"
	// ProviderIcon is the icon token hosts render.
	ProviderIcon = "ai"
)

// DefaultModelID is the model used when a request names none; model
// resolution beyond that lives inside the codex binary.
const DefaultModelID = "default"

// ErrNoAPIKey means a streaming call was attempted while the
// credential store holds no secret. Returned synchronously, before
// any process is spawned.
var ErrNoAPIKey = errors.New("codex-cli: no API key configured")

// CodexProvider exposes the codex binary as a streaming completion
// provider. Settings are immutable per call; the credential store is
// the only shared mutable state across concurrent calls.
type CodexProvider struct {
	settings types.Settings
	creds    *credentials.Store
}

var _ Provider = (*CodexProvider)(nil)

// New creates a codex CLI provider over the given settings and
// credential store.
func New(settings types.Settings, creds *credentials.Store) *CodexProvider {
	return &CodexProvider{settings: settings, creds: creds}
}

func (p *CodexProvider) ID() string   { return ProviderID }
func (p *CodexProvider) Name() string { return ProviderName }
func (p *CodexProvider) Icon() string { return ProviderIcon }

// Models returns the model variants the codex binary serves. Image
// input is unsupported; MaxTokens stays 0 because the binary manages
// its own context budget.
func (p *CodexProvider) Models() []types.Model {
	return []types.Model{
		{
			ID:            DefaultModelID,
			Name:          ProviderName,
			ProviderID:    ProviderID,
			SupportsTools: true,
		},
	}
}

// DefaultModel returns the model used when a request names none.
func (p *CodexProvider) DefaultModel() types.Model {
	return p.Models()[0]
}

// SupportsToolChoice reports whether a tool choice mode is honored.
// Only "auto" and "none" are; forcing a specific tool is not.
func (p *CodexProvider) SupportsToolChoice(choice types.ToolChoice) bool {
	return choice == types.ToolChoiceAuto || choice == types.ToolChoiceNone
}

// CountTokens always returns 0: no local tokenizer is available.
func (p *CodexProvider) CountTokens(types.CompletionRequest) int {
	return 0
}

// IsAuthenticated reports the credential state.
func (p *CodexProvider) IsAuthenticated() bool {
	return p.creds.IsAuthenticated()
}

// Authenticate loads credentials through the store.
func (p *CodexProvider) Authenticate() error {
	return p.creds.Authenticate()
}

// ResetCredentials clears the stored secret.
func (p *CodexProvider) ResetCredentials() error {
	return p.creds.Reset()
}

// StreamCompletion runs one completion call: snapshot the API key,
// build the invocation, spawn and feed the child, and hand back the
// pull-based event stream. Unauthenticated calls return ErrNoAPIKey
// before anything is spawned.
func (p *CodexProvider) StreamCompletion(ctx context.Context, req types.CompletionRequest) (CompletionStream, error) {
	apiKey, ok := p.creds.APIKey()
	if !ok {
		return nil, ErrNoAPIKey
	}

	model := req.Model
	if model == "" {
		model = DefaultModelID
	}

	cmd := codex.BuildCommand(ctx, model, p.settings, apiKey)
	proc, err := codex.StartProcess(cmd, codex.SerializePrompt(req))
	if err != nil {
		return nil, err
	}

	stream := codex.NewEventStream(proc)
	logging.Debug().
		Str("provider", ProviderID).
		Str("model", model).
		Str("call", stream.ID()).
		Int("messages", len(req.Messages)).
		Msg("completion started")
	return stream, nil
}
