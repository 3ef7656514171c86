// Package codex drives a locally-installed codex binary for one
// completion call: it builds the invocation, supervises the child
// process, and decodes its line-oriented output into completion
// events.
package codex

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/opencode-ai/codexcli/pkg/types"
)

// DefaultBinary is the executable name used when settings carry no
// explicit path; it is resolved via the caller's PATH.
const DefaultBinary = "codex"

// apiKeyEnv is the environment variable the codex binary reads the
// authorization secret from.
const apiKeyEnv = "CODEX_API_KEY"

// BuildCommand describes one invocation of the codex binary. It is
// pure with respect to process state: nothing is spawned, pipes are
// attached by StartProcess. Stderr stays discarded.
//
// MCP server definitions are rendered as -c overrides in sorted name
// order so the argument list is deterministic.
func BuildCommand(ctx context.Context, model string, settings types.Settings, apiKey string) *exec.Cmd {
	bin := settings.BinaryPath
	if bin == "" {
		bin = DefaultBinary
	}

	args := []string{"exec", "--model", model}

	names := make([]string, 0, len(settings.MCPServers))
	for name := range settings.MCPServers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		srv := settings.MCPServers[name]
		args = append(args, "-c", fmt.Sprintf("mcp_servers.%s.command=%q", name, srv.Command))
		if len(srv.Args) > 0 {
			args = append(args, "-c", fmt.Sprintf("mcp_servers.%s.args=%s", name, renderList(srv.Args)))
		}
		if len(srv.Env) > 0 {
			args = append(args, "-c", fmt.Sprintf("mcp_servers.%s.env=%s", name, renderTable(srv.Env)))
		}
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Env = append(os.Environ(), apiKeyEnv+"="+apiKey)
	return cmd
}

// renderList renders a TOML list literal: ["a","b"].
func renderList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return "[" + strings.Join(quoted, ",") + "]"
}

// renderTable renders a TOML inline table with sorted keys:
// {A="1",B="2"}.
func renderTable(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%q", k, m[k])
	}
	return "{" + strings.Join(pairs, ",") + "}"
}
