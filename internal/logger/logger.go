package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Default rotation parameters (lumberjack semantics).
const (
	DefaultMaxSizeMB  = 10 // MB
	DefaultMaxBackups = 3  // number of backup files
	DefaultMaxAgeDays = 7  // days
)

// Config describes the daemon's own logging destination. With an empty
// Path, colored text goes to stdout; otherwise output rotates at Path.
type Config struct {
	Path       string // log file; empty means console
	Level      string // debug, info, warn, error (default info)
	MaxSizeMB  int    // megabytes before rotation (default 10)
	MaxBackups int    // number of backups to keep (default 3)
	MaxAgeDays int    // days to keep (default 7)
	Compress   bool   // gzip rotated files
}

// Setup installs the process-wide slog default according to cfg and
// returns the underlying writer when a file destination is in use so the
// caller can close it on shutdown.
func Setup(cfg Config) io.Closer {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if cfg.Path == "" {
		slog.SetDefault(slog.New(NewColorTextHandler(os.Stdout, opts)))
		return nil
	}
	w := &lj.Logger{
		Filename:   cfg.Path,
		MaxSize:    valOr(cfg.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: valOr(cfg.MaxBackups, DefaultMaxBackups),
		MaxAge:     valOr(cfg.MaxAgeDays, DefaultMaxAgeDays),
		Compress:   cfg.Compress,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
	return w
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func valOr(v int, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
