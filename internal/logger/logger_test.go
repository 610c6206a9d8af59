package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetup_FileDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.log")
	closer := Setup(Config{Path: path, Level: "info"})
	if closer == nil {
		t.Fatalf("file destination must return a closer")
	}
	slog.Info("hello", "service", "jupyter")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "service=jupyter") {
		t.Fatalf("log record missing attrs: %q", string(data))
	}
}

func TestSetup_ConsoleDestination(t *testing.T) {
	if closer := Setup(Config{}); closer != nil {
		t.Fatalf("console destination must not return a closer")
	}
}
