package codex

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/codexcli/internal/logging"
	"github.com/opencode-ai/codexcli/pkg/types"
)

// EventStream turns the child's newline-delimited output into a
// finite, single-pass sequence of completion events. It is pull-based:
// each Recv reads at most one line, blocking while the child is quiet.
//
// End-of-output appends exactly one StopEvent, after which Recv
// returns io.EOF. Closing the stream before the terminal event kills
// the child; no orphan processes outlive the call.
type EventStream struct {
	proc *Process
	r    *bufio.Reader
	id   string
	log  zerolog.Logger

	mu     sync.Mutex
	eof    bool // output exhausted, Stop not yet delivered
	done   bool // terminal event (or error) delivered
	closed atomic.Bool
}

// NewEventStream starts decoding the process's standard output. Each
// stream carries a ulid so concurrent calls can be told apart in logs.
func NewEventStream(proc *Process) *EventStream {
	id := ulid.Make().String()
	log := logging.With().Str("call", id).Logger()
	log.Debug().Int("pid", proc.PID()).Msg("codex stream started")

	return &EventStream{
		proc: proc,
		r:    bufio.NewReader(proc.Stdout()),
		id:   id,
		log:  log,
	}
}

// ID identifies this call in logs.
func (s *EventStream) ID() string { return s.id }

// Recv returns the next completion event. After the terminal
// StopEvent, and after Close, it returns io.EOF. A pipe read failure
// ends the sequence with *StreamReadError; events already delivered
// remain valid.
func (s *EventStream) Recv() (types.CompletionEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done || s.closed.Load() {
		return nil, io.EOF
	}
	if s.eof {
		return s.stop()
	}

	line, err := s.r.ReadString('\n')
	switch {
	case err == nil:
		return DecodeLine(trimLine(line)), nil
	case errors.Is(err, io.EOF):
		if s.closed.Load() {
			// EOF came from Close killing the child, not from the
			// child finishing its turn.
			s.done = true
			return nil, io.EOF
		}
		if line != "" {
			// Final line without a trailing newline still decodes.
			s.eof = true
			return DecodeLine(trimLine(line)), nil
		}
		return s.stop()
	default:
		s.done = true
		if s.closed.Load() {
			return nil, io.EOF
		}
		s.proc.Kill()
		s.log.Debug().Err(err).Msg("codex stream read failed")
		return nil, &StreamReadError{Err: err}
	}
}

// stop delivers the terminal event and reaps the child.
func (s *EventStream) stop() (types.CompletionEvent, error) {
	s.done = true
	s.proc.Wait()
	s.log.Debug().Msg("codex stream ended")
	return types.StopEvent{Reason: types.StopEndTurn}, nil
}

// Close abandons the stream. If the terminal event has not been
// reached the child is forcibly terminated; there is no graceful
// shutdown protocol at this layer. Idempotent, and safe to call
// concurrently with a blocked Recv.
func (s *EventStream) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		s.proc.Kill()
		s.log.Debug().Msg("codex stream closed")
	}
	return nil
}

func trimLine(line string) string {
	return strings.TrimRight(line, "\r\n")
}
