package envcat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestList_DefaultFirst(t *testing.T) {
	root := t.TempDir()
	venv := filepath.Join(root, "venv")
	envs := filepath.Join(root, "envs")
	for _, d := range []string{venv, filepath.Join(envs, "ml"), filepath.Join(envs, "web")} {
		if err := os.MkdirAll(d, 0o750); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	// A stray file under envs must be skipped.
	if err := os.WriteFile(filepath.Join(envs, "README"), []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := List(venv, envs)
	if len(got) != 3 {
		t.Fatalf("expected 3 environments, got %d: %+v", len(got), got)
	}
	if !got[0].Default || got[0].Name != "cloudlab" || got[0].Path != venv {
		t.Fatalf("default env must lead: %+v", got[0])
	}
	for _, e := range got[1:] {
		if e.Default {
			t.Fatalf("discovered env marked default: %+v", e)
		}
		if e.Name != "ml" && e.Name != "web" {
			t.Fatalf("unexpected env %q", e.Name)
		}
	}
}

func TestList_NoDefault(t *testing.T) {
	root := t.TempDir()
	envs := filepath.Join(root, "envs")
	if err := os.MkdirAll(filepath.Join(envs, "only"), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got := List(filepath.Join(root, "venv"), envs)
	if len(got) != 1 || got[0].Default {
		t.Fatalf("expected single non-default env, got %+v", got)
	}
}

func TestList_NothingKnown(t *testing.T) {
	root := t.TempDir()
	got := List(filepath.Join(root, "venv"), filepath.Join(root, "envs"))
	if len(got) != 0 {
		t.Fatalf("expected empty catalog, got %+v", got)
	}
}
