package codex

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/opencode-ai/codexcli/pkg/types"
)

// DecodeLine maps one output line to a completion event. Recognized
// record shapes, in order:
//
//  1. tool use: type "tool" or "tool_use" carrying an id, a name
//     (under "name" or "tool_name") and an input payload
//  2. {"content": "..."} text
//  3. {"text": "..."} text
//
// Anything else, including lines that are not JSON at all, comes back
// verbatim as text. The codex binary interleaves plain output with
// structured records, so an unrecognized line is content, not an
// error.
func DecodeLine(line string) types.CompletionEvent {
	if !gjson.Valid(line) {
		return types.TextEvent{Text: line}
	}
	rec := gjson.Parse(line)

	if ev, ok := decodeToolUse(rec); ok {
		return ev
	}
	if content := rec.Get("content"); content.Type == gjson.String {
		return types.TextEvent{Text: content.String()}
	}
	if text := rec.Get("text"); text.Type == gjson.String {
		return types.TextEvent{Text: text.String()}
	}
	return types.TextEvent{Text: line}
}

func decodeToolUse(rec gjson.Result) (types.ToolUseEvent, bool) {
	recType := rec.Get("type").String()
	if recType != "tool" && recType != "tool_use" {
		return types.ToolUseEvent{}, false
	}

	id := rec.Get("id")
	name := rec.Get("name")
	if !name.Exists() {
		name = rec.Get("tool_name")
	}
	input := rec.Get("input")
	if !id.Exists() || !name.Exists() || !input.Exists() {
		return types.ToolUseEvent{}, false
	}

	ev := types.ToolUseEvent{
		ID:            id.String(),
		Name:          name.String(),
		Input:         json.RawMessage(input.Raw),
		RawInput:      rec.Get("raw_input").String(),
		InputComplete: true,
	}
	if complete := rec.Get("input_complete"); complete.Exists() {
		ev.InputComplete = complete.Bool()
	}
	return ev, true
}
