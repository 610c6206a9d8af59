package status

import (
	"context"
	"time"

	"github.com/cloudlab-sh/dashd/internal/command"
	"github.com/cloudlab-sh/dashd/internal/config"
	"github.com/cloudlab-sh/dashd/internal/detector"
	"github.com/cloudlab-sh/dashd/internal/envcat"
	"github.com/cloudlab-sh/dashd/internal/logtail"
	"github.com/cloudlab-sh/dashd/internal/metrics"
	"github.com/cloudlab-sh/dashd/internal/paths"
	"github.com/cloudlab-sh/dashd/internal/sysinfo"
)

// Fixed service and tunnel names the dashboard tracks. Tunnel helpers
// have no dedicated port and are checked by PID marker only.
var (
	Services = []string{"jupyter", "vscode", "ssh"}
	Tunnels  = []string{"tunnel_jupyter", "tunnel_vscode", "tunnel_ssh", "tunnel_dashboard"}
)

// KernelTimeout bounds the internal kernel-listing query, shorter than
// the general bridge timeout since it runs inside every status request.
const KernelTimeout = 30 * time.Second

// KernelsUnavailable substitutes for the kernel listing when the bridge
// cannot produce one.
const KernelsUnavailable = "Unable to list kernels"

// Snapshot is one consistent point-in-time assembly of everything the
// dashboard shows. It is a pure value, rebuilt on every request. Field
// names are the dashboard wire contract.
type Snapshot struct {
	Jupyter         bool                 `json:"jupyter"`
	Vscode          bool                 `json:"vscode"`
	SSH             bool                 `json:"ssh"`
	Dashboard       bool                 `json:"dashboard"`
	TunnelJupyter   bool                 `json:"tunnel_jupyter"`
	TunnelVscode    bool                 `json:"tunnel_vscode"`
	TunnelSSH       bool                 `json:"tunnel_ssh"`
	TunnelDashboard bool                 `json:"tunnel_dashboard"`
	Config          map[string]any       `json:"config"`
	TunnelURLs      map[string]string    `json:"tunnel_urls"`
	System          sysinfo.Info         `json:"system"`
	Kernels         string               `json:"kernels"`
	Environments    []envcat.Environment `json:"environments"`
}

// Aggregator assembles snapshots. All sub-collections are read-only and
// independent; any one of them failing substitutes its documented
// default rather than aborting the snapshot.
type Aggregator struct {
	Layout    paths.Layout
	Collector sysinfo.Collector
	Bridge    command.Bridge
}

func NewAggregator(layout paths.Layout, collector sysinfo.Collector, bridge command.Bridge) *Aggregator {
	return &Aggregator{Layout: layout, Collector: collector, Bridge: bridge}
}

func (a *Aggregator) serviceUp(name string, port int) bool {
	up := detector.ServiceUp(a.Layout.PIDFile(name), port)
	metrics.SetServiceUp(name, up)
	return up
}

func (a *Aggregator) tunnelUp(name string) bool {
	up := detector.ProcessAlive(a.Layout.PIDFile(name))
	metrics.SetServiceUp(name, up)
	return up
}

// Snapshot loads configuration fresh, resolves liveness for every fixed
// service and tunnel name, and collects metrics, kernels and
// environments. The dashboard's own liveness is always true: a dead
// dashboard cannot produce a snapshot.
func (a *Aggregator) Snapshot(ctx context.Context) Snapshot {
	start := time.Now()
	cfg := config.Load(a.Layout.ConfigFile())

	raw := cfg.Raw
	if raw == nil {
		raw = map[string]any{}
	}
	snap := Snapshot{
		Jupyter:         a.serviceUp("jupyter", cfg.JupyterPort()),
		Vscode:          a.serviceUp("vscode", cfg.VscodePort()),
		SSH:             a.serviceUp("ssh", cfg.SSHPort()),
		Dashboard:       true,
		TunnelJupyter:   a.tunnelUp("tunnel_jupyter"),
		TunnelVscode:    a.tunnelUp("tunnel_vscode"),
		TunnelSSH:       a.tunnelUp("tunnel_ssh"),
		TunnelDashboard: a.tunnelUp("tunnel_dashboard"),
		Config:          raw,
		TunnelURLs:      cfg.TunnelURLs(),
		System:          a.Collector.Collect(),
		Kernels:         a.Kernels(ctx),
		Environments:    a.Environments(),
	}
	metrics.ObserveSnapshotDuration(time.Since(start).Seconds())
	return snap
}

// Kernels runs the kernel-listing query through the bridge under its own
// shorter timeout, tolerating failure with a fixed substitute string.
func (a *Aggregator) Kernels(ctx context.Context) string {
	b := a.Bridge
	b.Timeout = KernelTimeout
	res := b.Run(ctx, "kernel", "list")
	metrics.IncBridgeRun(res.Outcome())
	if res.Failed() {
		return KernelsUnavailable
	}
	return res.Stdout
}

// Environments lists the known isolated runtime environments, default
// environment first.
func (a *Aggregator) Environments() []envcat.Environment {
	return envcat.List(a.Layout.DefaultEnv(), a.Layout.EnvsDir())
}

// Logs serves the tail of one service's log file.
func (a *Aggregator) Logs(service string, lines int) string {
	return logtail.Tail(a.Layout.LogFile(service), service, lines)
}
