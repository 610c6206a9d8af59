package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds one external command invocation.
const DefaultTimeout = 120 * time.Second

// DefaultExecutable is the companion management command the dashboard
// delegates to.
const DefaultExecutable = "cloudlab"

// Result is the outcome of one bridged invocation. Exactly one shape is
// produced per call: a completed run (Err empty, Success reflecting the
// exit code, output captured) or a failure with a distinguishing reason
// in Err (timeout, executable missing, or the raw invocation error).
type Result struct {
	Success bool
	Stdout  string
	Stderr  string
	Command string
	Err     string
}

// Failed reports whether the invocation never completed (as opposed to
// completing with a non-zero exit code).
func (r Result) Failed() bool { return r.Err != "" }

// Outcome classifies the result for instrumentation labels.
func (r Result) Outcome() string {
	switch {
	case r.Err == "" && r.Success:
		return "ok"
	case r.Err == "":
		return "exit"
	case strings.Contains(r.Err, "timed out"):
		return "timeout"
	case strings.Contains(r.Err, "not found in PATH"):
		return "not_found"
	default:
		return "error"
	}
}

// Bridge forwards sub-commands to the external management executable.
// The zero value uses DefaultExecutable and DefaultTimeout. Concurrent
// Run calls are independent; each owns its own child process.
type Bridge struct {
	Executable string
	Timeout    time.Duration
}

// Run invokes the executable with args, capturing both output streams as
// text. The child is killed and reaped when the timeout elapses
// (CommandContext semantics), so no invocation can block indefinitely.
func (b Bridge) Run(ctx context.Context, args ...string) Result {
	exe := b.Executable
	if exe == "" {
		exe = DefaultExecutable
	}
	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// #nosec G204 -- args come from the HTTP boundary, one decoded path segment each
	cmd := exec.CommandContext(ctx, exe, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	display := strings.TrimSpace(exe + " " + strings.Join(args, " "))
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{Command: display, Err: fmt.Sprintf("Command timed out after %d seconds", int(timeout.Seconds()))}
	}
	var ee *exec.ExitError
	switch {
	case err == nil, errors.As(err, &ee):
		// Completed; a non-zero exit code is a result, not a failure.
		return Result{
			Success: err == nil,
			Stdout:  stdout.String(),
			Stderr:  stderr.String(),
			Command: display,
		}
	case errors.Is(err, exec.ErrNotFound):
		return Result{Command: display, Err: exe + " command not found in PATH"}
	default:
		return Result{Command: display, Err: err.Error()}
	}
}
