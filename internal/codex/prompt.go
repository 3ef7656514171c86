package codex

import (
	"strings"

	"github.com/opencode-ai/codexcli/pkg/types"
)

// SerializePrompt flattens a request into the text fed to the codex
// binary's stdin: one "<role>: <content>" line per message, in request
// order.
func SerializePrompt(req types.CompletionRequest) string {
	var b strings.Builder
	for _, m := range req.Messages {
		b.WriteString(rolePrefix(m.Role))
		b.WriteString(" ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}

func rolePrefix(role types.Role) string {
	switch role {
	case types.RoleSystem:
		return "system:"
	case types.RoleUser:
		return "user:"
	case types.RoleAssistant:
		return "assistant:"
	case types.RoleTool:
		return "tool:"
	default:
		return "user:"
	}
}
