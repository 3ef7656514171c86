package codex

import "fmt"

// InvocationError means the codex binary failed to spawn or its stdin
// could not be fed. Not retried at this layer.
type InvocationError struct {
	Err error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("codex invocation failed: %v", e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// StreamReadError means a read from the child's stdout failed
// mid-stream. Events delivered before the failure remain valid.
type StreamReadError struct {
	Err error
}

func (e *StreamReadError) Error() string {
	return fmt.Sprintf("codex stream read failed: %v", e.Err)
}

func (e *StreamReadError) Unwrap() error { return e.Err }
