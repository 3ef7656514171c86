// Package config loads provider settings for the codexcli CLI. Host
// applications that already have a settings layer can skip it and
// construct types.Settings directly.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tidwall/jsonc"

	"github.com/opencode-ai/codexcli/internal/logging"
	"github.com/opencode-ai/codexcli/pkg/types"
)

// Load merges settings from, in priority order:
//
//  1. global config (~/.config/codexcli/codex.json[c])
//  2. project config (<directory>/codex.json[c])
//  3. CODEXCLI_CONFIG file override
//  4. environment variables (CODEXCLI_BINARY)
//
// Absent files are skipped; malformed files are logged and skipped.
// The zero Settings is valid, so Load never fails the caller.
func Load(directory string) types.Settings {
	settings := types.Settings{}

	loaded := make(map[string]bool)
	loadOnce := func(path string) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return
		}
		if loaded[absPath] {
			return
		}
		if loadSettingsFile(path, &settings) {
			loaded[absPath] = true
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		globalDir := filepath.Join(home, ".config", "codexcli")
		loadOnce(filepath.Join(globalDir, "codex.json"))
		loadOnce(filepath.Join(globalDir, "codex.jsonc"))
	}

	if directory != "" {
		loadOnce(filepath.Join(directory, "codex.json"))
		loadOnce(filepath.Join(directory, "codex.jsonc"))
	}

	if configPath := os.Getenv("CODEXCLI_CONFIG"); configPath != "" {
		loadOnce(configPath)
	}

	if bin := os.Getenv("CODEXCLI_BINARY"); bin != "" {
		settings.BinaryPath = bin
	}

	return settings
}

// loadSettingsFile loads one config file into settings, reporting
// whether it was applied.
func loadSettingsFile(path string, settings *types.Settings) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	data = jsonc.ToJSON(data)
	data = interpolate(data)

	var fileSettings types.Settings
	if err := json.Unmarshal(data, &fileSettings); err != nil {
		logging.Warn().Str("path", path).Err(err).Msg("skipping malformed settings file")
		return false
	}

	merge(settings, fileSettings)
	return true
}

var envPattern = regexp.MustCompile(`\{env:([^}]+)\}`)

// interpolate replaces {env:VAR} placeholders with environment values.
func interpolate(data []byte) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		varName := envPattern.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(varName)))
	})
}

// merge applies source over target; later files win field by field.
func merge(target *types.Settings, source types.Settings) {
	if source.BinaryPath != "" {
		target.BinaryPath = source.BinaryPath
	}
	if source.MCPServers != nil {
		if target.MCPServers == nil {
			target.MCPServers = make(map[string]types.MCPServer)
		}
		for name, srv := range source.MCPServers {
			target.MCPServers[name] = srv
		}
	}
}
