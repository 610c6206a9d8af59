package logtail

import (
	"os"
	"strings"
)

// DefaultLines is the window served when the caller does not ask for one.
const DefaultLines = 100

// Tail returns the last maxLines lines of path joined in original order,
// preserving a trailing newline when the file has one. An absent or
// unreadable file yields the placeholder for name instead of an error.
// Callers own clamping maxLines; values <= 0 fall back to DefaultLines
// here so the function stays total.
func Tail(path, name string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultLines
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Placeholder(name)
	}
	s := string(data)
	trailingNL := strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	out := strings.Join(lines, "\n")
	if trailingNL {
		out += "\n"
	}
	return out
}

// Placeholder is the fixed text served when a service has no log file.
func Placeholder(name string) string {
	return "No logs available for " + name
}
