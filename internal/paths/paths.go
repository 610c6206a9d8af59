package paths

import (
	"os"
	"path/filepath"
)

// Layout resolves the well-known files and directories under the cloudlab
// root. The on-disk layout is a read contract shared with the cloudlab CLI:
//
//	<root>/config.json       persisted configuration
//	<root>/dashboard.html    static dashboard asset
//	<root>/pids/<name>.pid   process marker files
//	<root>/logs/<name>.log   per-service logs
//	<root>/venv              default environment
//	<root>/envs/<name>       discovered environments
type Layout struct {
	Root string
}

// Default returns the layout rooted at ~/.cloudlab. If the home directory
// cannot be resolved the current directory is used as a last resort.
func Default() Layout {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Layout{Root: filepath.Join(home, ".cloudlab")}
}

func (l Layout) ConfigFile() string    { return filepath.Join(l.Root, "config.json") }
func (l Layout) DashboardHTML() string { return filepath.Join(l.Root, "dashboard.html") }
func (l Layout) PIDDir() string        { return filepath.Join(l.Root, "pids") }
func (l Layout) LogDir() string        { return filepath.Join(l.Root, "logs") }
func (l Layout) DefaultEnv() string    { return filepath.Join(l.Root, "venv") }
func (l Layout) EnvsDir() string       { return filepath.Join(l.Root, "envs") }

// PIDFile returns the marker file path for a service name.
func (l Layout) PIDFile(name string) string {
	return filepath.Join(l.PIDDir(), name+".pid")
}

// LogFile returns the log file path for a service name.
func (l Layout) LogFile(name string) string {
	return filepath.Join(l.LogDir(), name+".log")
}

// EnsureDirs creates the root, pid and log directories if missing so the
// daemon can come up on a fresh machine before the CLI has run.
func (l Layout) EnsureDirs() error {
	for _, dir := range []string{l.Root, l.PIDDir(), l.LogDir()} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	return nil
}
