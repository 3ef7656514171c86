package types

import "encoding/json"

// StopReason says why a completion stream ended.
type StopReason string

const (
	// StopEndTurn is the only reason this adapter produces: the codex
	// binary closed its output without a prior read error.
	StopEndTurn StopReason = "end_turn"
)

// CompletionEvent is one unit of streamed model output. It is a closed
// sum: TextEvent, ToolUseEvent, or StopEvent. Consumers should switch
// exhaustively so new variants cannot be silently ignored.
type CompletionEvent interface {
	completionEvent()
}

// TextEvent carries a fragment of assistant text.
type TextEvent struct {
	Text string `json:"text"`
}

// ToolUseEvent carries one tool invocation decoded from the stream.
type ToolUseEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Input is the structured payload as it appeared on the wire.
	Input json.RawMessage `json:"input"`

	// RawInput is the optional raw-text form of the input; empty when
	// the record did not carry one.
	RawInput string `json:"rawInput,omitempty"`

	// InputComplete is true unless the record marked the input as
	// still streaming.
	InputComplete bool `json:"inputComplete"`
}

// StopEvent terminates the stream.
type StopEvent struct {
	Reason StopReason `json:"reason"`
}

func (TextEvent) completionEvent()    {}
func (ToolUseEvent) completionEvent() {}
func (StopEvent) completionEvent()    {}
