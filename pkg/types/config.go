// Package types holds the value objects shared between the codexcli
// provider, its configuration loader, and host applications.
package types

// Settings configures how the codex binary is invoked. It is supplied
// by the host (or internal/config) and treated as immutable per call.
// The zero value is usable: the binary is resolved from PATH and no
// MCP servers are forwarded.
type Settings struct {
	// BinaryPath is the codex executable. Empty means "codex" looked
	// up on the caller's PATH.
	BinaryPath string `json:"binaryPath,omitempty"`

	// MCPServers maps a server name to the definition forwarded to the
	// codex binary as configuration overrides.
	MCPServers map[string]MCPServer `json:"mcpServers,omitempty"`
}

// MCPServer describes an auxiliary MCP server the codex binary may
// launch for extended capability. The adapter never speaks MCP itself,
// it only renders these into -c overrides.
type MCPServer struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Model describes one model variant offered by a provider.
type Model struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProviderID string `json:"providerID"`

	// MaxTokens is 0 when the context budget is unknown; the codex
	// binary manages its own budget.
	MaxTokens      int  `json:"maxTokens,omitempty"`
	SupportsTools  bool `json:"supportsTools"`
	SupportsImages bool `json:"supportsImages"`
}
