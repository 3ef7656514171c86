package codex

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/codexcli/pkg/types"
)

func TestDecodeLine_ContentField(t *testing.T) {
	ev := DecodeLine(`{"content":"hello"}`)
	assert.Equal(t, types.TextEvent{Text: "hello"}, ev)
}

func TestDecodeLine_TextField(t *testing.T) {
	ev := DecodeLine(`{"text":"world"}`)
	assert.Equal(t, types.TextEvent{Text: "world"}, ev)
}

func TestDecodeLine_ContentWinsOverText(t *testing.T) {
	ev := DecodeLine(`{"content":"a","text":"b"}`)
	assert.Equal(t, types.TextEvent{Text: "a"}, ev)
}

func TestDecodeLine_RawFallback(t *testing.T) {
	for _, line := range []string{
		"plain output, no JSON at all",
		`{"status":"thinking"}`, // valid JSON, unrecognized shape
		`{"content":42}`,        // content is not text
		`[1,2,3]`,
		"{truncated",
	} {
		ev := DecodeLine(line)
		assert.Equal(t, types.TextEvent{Text: line}, ev, "line %q", line)
	}
}

func TestDecodeLine_ToolUse(t *testing.T) {
	ev := DecodeLine(`{"type":"tool_use","id":"t1","name":"run","input":{}}`)

	tool, ok := ev.(types.ToolUseEvent)
	require.True(t, ok)
	assert.Equal(t, "t1", tool.ID)
	assert.Equal(t, "run", tool.Name)
	assert.JSONEq(t, `{}`, string(tool.Input))
	assert.Empty(t, tool.RawInput)
	assert.True(t, tool.InputComplete)
}

func TestDecodeLine_ToolUseVariants(t *testing.T) {
	// "tool" type with the alternate name field and explicit flags.
	ev := DecodeLine(`{"type":"tool","id":"t2","tool_name":"search","input":{"q":"x"},"raw_input":"{\"q\":","input_complete":false}`)

	tool, ok := ev.(types.ToolUseEvent)
	require.True(t, ok)
	assert.Equal(t, "search", tool.Name)
	assert.Equal(t, json.RawMessage(`{"q":"x"}`), tool.Input)
	assert.Equal(t, `{"q":`, tool.RawInput)
	assert.False(t, tool.InputComplete)
}

func TestDecodeLine_IncompleteToolRecordFallsBack(t *testing.T) {
	// Tool type but no input payload: not a tool use. The record has
	// no content/text either, so it surfaces verbatim.
	line := `{"type":"tool_use","id":"t3","name":"run"}`
	assert.Equal(t, types.TextEvent{Text: line}, DecodeLine(line))
}
