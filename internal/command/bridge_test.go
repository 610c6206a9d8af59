package command

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"
)

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("unix-only test")
	}
}

func TestRun_NotFound(t *testing.T) {
	b := Bridge{Executable: "definitely-not-a-real-executable-xyz"}
	res := b.Run(context.Background(), "status")
	if !res.Failed() {
		t.Fatalf("expected failure result, got %+v", res)
	}
	if !strings.Contains(res.Err, "not found in PATH") {
		t.Fatalf("expected not-found reason, got %q", res.Err)
	}
}

func TestRun_SuccessCapturesStdout(t *testing.T) {
	requireUnix(t)
	b := Bridge{Executable: "echo"}
	res := b.Run(context.Background(), "hello", "world")
	if res.Failed() {
		t.Fatalf("unexpected failure: %q", res.Err)
	}
	if !res.Success {
		t.Fatalf("echo should exit zero")
	}
	if res.Stdout != "hello world\n" {
		t.Fatalf("stdout: got %q", res.Stdout)
	}
	if res.Command != "echo hello world" {
		t.Fatalf("command echo: got %q", res.Command)
	}
}

func TestRun_NonZeroExitIsNotFailure(t *testing.T) {
	requireUnix(t)
	b := Bridge{Executable: "false"}
	res := b.Run(context.Background())
	if res.Failed() {
		t.Fatalf("non-zero exit must not be a failure variant: %q", res.Err)
	}
	if res.Success {
		t.Fatalf("false should report success=false")
	}
}

func TestRun_Timeout(t *testing.T) {
	requireUnix(t)
	b := Bridge{Executable: "sleep", Timeout: 100 * time.Millisecond}
	start := time.Now()
	res := b.Run(context.Background(), "5")
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout not enforced, took %v", elapsed)
	}
	if !res.Failed() || !strings.Contains(res.Err, "timed out") {
		t.Fatalf("expected timeout reason, got %+v", res)
	}
}
