package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/codexcli/pkg/types"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestLoad_Empty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings := Load(t.TempDir())
	assert.Equal(t, types.Settings{}, settings)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "codex.json"), `{
		"binaryPath": "/usr/local/bin/codex",
		"mcpServers": {
			"calc": {"command": "mcp-calc", "args": ["--fast"]}
		}
	}`)

	settings := Load(dir)
	assert.Equal(t, "/usr/local/bin/codex", settings.BinaryPath)
	require.Contains(t, settings.MCPServers, "calc")
	assert.Equal(t, []string{"--fast"}, settings.MCPServers["calc"].Args)
}

func TestLoad_JSONCAndInterpolation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CALC_TOKEN", "sekrit")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "codex.jsonc"), `{
		// forwarded to the codex binary
		"mcpServers": {
			"calc": {"command": "mcp-calc", "env": {"TOKEN": "{env:CALC_TOKEN}"}},
		},
	}`)

	settings := Load(dir)
	require.Contains(t, settings.MCPServers, "calc")
	assert.Equal(t, "sekrit", settings.MCPServers["calc"].Env["TOKEN"])
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "codexcli", "codex.json"),
		`{"binaryPath": "/global/codex", "mcpServers": {"fs": {"command": "mcp-fs"}}}`)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "codex.json"), `{"binaryPath": "/project/codex"}`)

	settings := Load(dir)
	assert.Equal(t, "/project/codex", settings.BinaryPath)
	assert.Contains(t, settings.MCPServers, "fs", "global servers survive project override")
}

func TestLoad_EnvOverridesEverything(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CODEXCLI_BINARY", "/env/codex")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "codex.json"), `{"binaryPath": "/project/codex"}`)

	settings := Load(dir)
	assert.Equal(t, "/env/codex", settings.BinaryPath)
}

func TestLoad_MalformedFileSkipped(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "codex.json"), `{"binaryPath": `)

	settings := Load(dir)
	assert.Equal(t, types.Settings{}, settings)
}
