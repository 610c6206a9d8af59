package server

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cloudlab-sh/dashd/internal/logtail"
)

// isSafeName validates service names to avoid path traversal when used in filenames.
// Allowed characters: A-Z a-z 0-9 . _ - and no consecutive dots forming "..".
func isSafeName(s string) bool {
	if s == "" {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '_' || r == '-' {
			continue
		}
		return false
	}
	// disallow path separators just in case (platform independent)
	if strings.ContainsAny(s, "/\\") {
		return false
	}
	return true
}

// splitCommandPath turns the catch-all command parameter into argv.
// The router matches against the already percent-decoded request path,
// so segments arrive decoded exactly once; empty segments are dropped.
func splitCommandPath(raw string) []string {
	parts := strings.Split(raw, "/")
	args := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		args = append(args, p)
	}
	return args
}

// clampLines bounds the untrusted lines query parameter.
func clampLines(n int) int {
	if n < 1 {
		return logtail.DefaultLines
	}
	if n > maxTailLines {
		return maxTailLines
	}
	return n
}

func writeJSON(c *gin.Context, code int, v any) {
	c.Header("Content-Type", "application/json")
	c.Status(code)
	_ = json.NewEncoder(c.Writer).Encode(v)
}
