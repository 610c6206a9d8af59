package config

import (
	"encoding/json"
	"os"
	"strconv"
)

// Documented port defaults, applied whenever config.json omits a key.
const (
	DefaultJupyterPort   = 8888
	DefaultVscodePort    = 8080
	DefaultSSHPort       = 7681
	DefaultDashboardPort = 3000
)

// Config is the per-request view of config.json. Raw holds the decoded
// file verbatim, key case preserved, so the status snapshot can echo it
// back untouched; typed accessors apply defaults for missing or
// malformed keys. The zero value behaves as an empty configuration.
type Config struct {
	Raw map[string]any
}

// Load reads config.json fresh. It never fails: a missing, unreadable or
// corrupted file yields an empty Config, and callers rely on accessor
// defaults. No caching, so edits take effect without a restart.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}
	}
	return Config{Raw: raw}
}

// Int returns the named key as an int, or def when absent or not numeric.
func (c Config) Int(key string, def int) int {
	raw, ok := c.Raw[key]
	if !ok {
		return def
	}
	switch n := raw.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return def
}

func (c Config) JupyterPort() int   { return c.Int("jupyter_port", DefaultJupyterPort) }
func (c Config) VscodePort() int    { return c.Int("vscode_port", DefaultVscodePort) }
func (c Config) SSHPort() int       { return c.Int("ssh_port", DefaultSSHPort) }
func (c Config) DashboardPort() int { return c.Int("dashboard_port", DefaultDashboardPort) }

// TunnelURLs returns the service to public URL map, empty when unset.
func (c Config) TunnelURLs() map[string]string {
	out := make(map[string]string)
	raw, ok := c.Raw["tunnel_urls"].(map[string]any)
	if !ok {
		return out
	}
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
