package envcat

import (
	"os"
	"path/filepath"
)

// Environment describes one isolated runtime environment known to the
// dashboard. The default environment, when present, is always listed
// first; discovered environments follow in directory enumeration order,
// which is not guaranteed stable across platforms.
type Environment struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
	Path    string `json:"path"`
}

// List enumerates environments. defaultDir (the managed venv) is emitted
// first with Default set when it exists; then every directory entry under
// envsDir. Non-directory entries are skipped. No validation beyond "is a
// directory" is performed.
func List(defaultDir, envsDir string) []Environment {
	envs := make([]Environment, 0, 4)
	if st, err := os.Stat(defaultDir); err == nil && st.IsDir() {
		envs = append(envs, Environment{Name: "cloudlab", Default: true, Path: defaultDir})
	}
	entries, err := os.ReadDir(envsDir)
	if err != nil {
		return envs
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		envs = append(envs, Environment{
			Name: e.Name(),
			Path: filepath.Join(envsDir, e.Name()),
		})
	}
	return envs
}
