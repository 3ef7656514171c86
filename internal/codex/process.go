package codex

import (
	"io"
	"os/exec"
	"sync"
)

// Process owns the child for the duration of one call. It is created
// by StartProcess and terminated either by the stream reaching its
// end or by Kill; a child never outlives the logical call.
type Process struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser

	mu     sync.Mutex
	reaped bool
}

// StartProcess spawns the child described by cmd, writes the full
// prompt to its stdin and closes it, signaling end-of-input. The
// protocol is request-then-stream, so the write completes before any
// reading starts. Spawn and write failures both surface as
// *InvocationError; on a write failure the child is killed first.
func StartProcess(cmd *exec.Cmd, prompt string) (*Process, error) {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &InvocationError{Err: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &InvocationError{Err: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &InvocationError{Err: err}
	}

	p := &Process{cmd: cmd, stdout: stdout}

	if _, err := io.WriteString(stdin, prompt); err != nil {
		p.Kill()
		return nil, &InvocationError{Err: err}
	}
	if err := stdin.Close(); err != nil {
		p.Kill()
		return nil, &InvocationError{Err: err}
	}

	return p, nil
}

// Stdout is the child's standard output pipe.
func (p *Process) Stdout() io.Reader { return p.stdout }

// PID returns the child's process id.
func (p *Process) PID() int { return p.cmd.Process.Pid }

// Wait reaps the child after its output has been fully consumed.
// The child's exit status is not part of the stream contract, so the
// error is discarded; Wait only guarantees the process is gone.
func (p *Process) Wait() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.reaped {
		return
	}
	p.reaped = true
	_ = p.cmd.Wait()
}

// Kill forcibly terminates and reaps the child. Safe to call more
// than once and after Wait.
func (p *Process) Kill() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.reaped {
		return
	}
	p.reaped = true
	_ = p.cmd.Process.Kill()
	_ = p.cmd.Wait()
}
