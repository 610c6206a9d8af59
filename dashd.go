// Package dashd reports the live operational state of the local cloudlab
// services (notebook server, editor server, terminal bridge and their
// tunnels) and bridges management sub-commands to the cloudlab CLI. It is
// embeddable: the Dashboard handler can be mounted in any mux.
package dashd

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cloudlab-sh/dashd/internal/command"
	"github.com/cloudlab-sh/dashd/internal/envcat"
	"github.com/cloudlab-sh/dashd/internal/metrics"
	"github.com/cloudlab-sh/dashd/internal/paths"
	"github.com/cloudlab-sh/dashd/internal/server"
	"github.com/cloudlab-sh/dashd/internal/status"
	"github.com/cloudlab-sh/dashd/internal/sysinfo"
)

// Version is reported by /api/health.
const Version = "1.2.0"

// Re-export core types for external consumers.
// These are aliases so conversions are zero-cost.

type Snapshot = status.Snapshot

type Environment = envcat.Environment

type SystemInfo = sysinfo.Info

type CommandResult = command.Result

// Dashboard is a thin facade over the internal status engine.
// It provides a stable public API for embedding.
type Dashboard struct {
	agg *status.Aggregator
}

// New constructs a Dashboard over ~/.cloudlab with a metrics collector
// selected by capability probe.
func New() *Dashboard { return NewWithRoot("") }

// NewWithRoot constructs a Dashboard over an explicit root directory;
// empty means the default ~/.cloudlab.
func NewWithRoot(root string) *Dashboard {
	layout := paths.Default()
	if root != "" {
		layout = paths.Layout{Root: root}
	}
	return &Dashboard{agg: status.NewAggregator(layout, sysinfo.Detect(), command.Bridge{})}
}

// Snapshot assembles one point-in-time status snapshot.
func (d *Dashboard) Snapshot(ctx context.Context) Snapshot { return d.agg.Snapshot(ctx) }

// Logs returns the tail of one service's log file.
func (d *Dashboard) Logs(service string, lines int) string { return d.agg.Logs(service, lines) }

// Kernels returns the kernel listing, or a substitute string on failure.
func (d *Dashboard) Kernels(ctx context.Context) string { return d.agg.Kernels(ctx) }

// Environments lists known environments, default first.
func (d *Dashboard) Environments() []Environment { return d.agg.Environments() }

// Run forwards a sub-command to the cloudlab executable.
func (d *Dashboard) Run(ctx context.Context, args ...string) CommandResult {
	return d.agg.Bridge.Run(ctx, args...)
}

// Root returns the root directory the dashboard observes.
func (d *Dashboard) Root() string { return d.agg.Layout.Root }

// EnsureDirs creates the expected directory layout under the root.
func (d *Dashboard) EnsureDirs() error { return d.agg.Layout.EnsureDirs() }

// Handler returns the dashboard HTTP surface for mounting in any mux.
func (d *Dashboard) Handler() http.Handler {
	return server.NewRouter(d.agg, Version).Handler()
}

// NewServer returns an http.Server serving the dashboard on addr.
func (d *Dashboard) NewServer(addr string) *http.Server {
	return server.NewServer(addr, server.NewRouter(d.agg, Version))
}

// RegisterMetrics registers the dashboard's Prometheus collectors with
// the default registry. Safe to call multiple times.
func RegisterMetrics() error { return metrics.Register(prometheus.DefaultRegisterer) }
