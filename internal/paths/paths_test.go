package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLayoutPaths(t *testing.T) {
	l := Layout{Root: "/tmp/.cloudlab"}
	if got := l.PIDFile("jupyter"); got != filepath.Join("/tmp/.cloudlab", "pids", "jupyter.pid") {
		t.Fatalf("pid file: %q", got)
	}
	if got := l.LogFile("ssh"); got != filepath.Join("/tmp/.cloudlab", "logs", "ssh.log") {
		t.Fatalf("log file: %q", got)
	}
	if got := l.ConfigFile(); got != filepath.Join("/tmp/.cloudlab", "config.json") {
		t.Fatalf("config file: %q", got)
	}
}

func TestEnsureDirs(t *testing.T) {
	l := Layout{Root: filepath.Join(t.TempDir(), ".cloudlab")}
	if err := l.EnsureDirs(); err != nil {
		t.Fatalf("ensure dirs: %v", err)
	}
	for _, d := range []string{l.Root, l.PIDDir(), l.LogDir()} {
		st, err := os.Stat(d)
		if err != nil || !st.IsDir() {
			t.Fatalf("expected directory %s: %v", d, err)
		}
	}
}

func TestDefaultUnderHome(t *testing.T) {
	l := Default()
	if filepath.Base(l.Root) != ".cloudlab" {
		t.Fatalf("default root: %q", l.Root)
	}
}
