package server

import (
	"reflect"
	"testing"

	"github.com/cloudlab-sh/dashd/internal/logtail"
)

func TestIsSafeName(t *testing.T) {
	good := []string{"jupyter", "tunnel_jupyter", "svc-1", "a.b"}
	bad := []string{"", "..", "a/b", `a\b`, "a b", "../etc", "a..b"}
	for _, s := range good {
		if !isSafeName(s) {
			t.Fatalf("expected %q to be safe", s)
		}
	}
	for _, s := range bad {
		if isSafeName(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestSplitCommandPath(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"/", nil},
		{"", nil},
		{"/kernel/list", []string{"kernel", "list"}},
		{"/start//jupyter", []string{"start", "jupyter"}},
		// The router hands over segments already decoded; a literal
		// percent sequence must pass through untouched.
		{"/a%20b", []string{"a%20b"}},
	}
	for _, tc := range cases {
		got := splitCommandPath(tc.in)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitCommandPath(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClampLines(t *testing.T) {
	if got := clampLines(0); got != logtail.DefaultLines {
		t.Fatalf("clamp(0) = %d", got)
	}
	if got := clampLines(-5); got != logtail.DefaultLines {
		t.Fatalf("clamp(-5) = %d", got)
	}
	if got := clampLines(50); got != 50 {
		t.Fatalf("clamp(50) = %d", got)
	}
	if got := clampLines(maxTailLines + 1); got != maxTailLines {
		t.Fatalf("clamp(max+1) = %d", got)
	}
}
