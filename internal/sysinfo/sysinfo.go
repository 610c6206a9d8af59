package sysinfo

import (
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Info is a best-effort snapshot of host utilization and capacity.
// Numeric fields stay at their placeholder values when the backend
// cannot provide them; a dashboard must never go dark over metrics.
type Info struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent"`
	CPUCount      int     `json:"cpu_count"`
	MemoryTotalGB float64 `json:"memory_total"`
	DiskTotalGB   float64 `json:"disk_total"`
	Platform      string  `json:"platform"`
	GoVersion     string  `json:"go_version"`
}

// Collector produces host metrics snapshots. It must be safe for
// concurrent use.
type Collector interface {
	Collect() Info
}

// Detect probes the metrics backend once at startup and returns either a
// working collector or a stub. Selecting the capability up front keeps
// request handling free of repeated feature checks.
func Detect() Collector {
	if _, err := mem.VirtualMemory(); err != nil {
		slog.Warn("system metrics backend unavailable, serving placeholders", "error", err)
		return stubCollector{}
	}
	return gopsutilCollector{sampleWindow: 100 * time.Millisecond}
}

type gopsutilCollector struct {
	sampleWindow time.Duration
}

func (g gopsutilCollector) Collect() Info {
	info := baseInfo()
	if pct, err := cpu.Percent(g.sampleWindow, false); err == nil && len(pct) > 0 {
		info.CPUPercent = pct[0]
	} else if err != nil {
		slog.Debug("cpu sample failed", "error", err)
	}
	if n, err := cpu.Counts(true); err == nil {
		info.CPUCount = n
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.MemoryPercent = vm.UsedPercent
		info.MemoryTotalGB = roundGB(vm.Total)
	} else {
		slog.Debug("memory sample failed", "error", err)
	}
	if du, err := disk.Usage("/"); err == nil {
		info.DiskPercent = du.UsedPercent
		info.DiskTotalGB = roundGB(du.Total)
	} else {
		slog.Debug("disk sample failed", "error", err)
	}
	return info
}

// stubCollector serves zero/one placeholders when the backend is absent.
type stubCollector struct{}

func (stubCollector) Collect() Info { return baseInfo() }

func baseInfo() Info {
	return Info{
		CPUCount:  1,
		Platform:  runtime.GOOS,
		GoVersion: runtime.Version(),
	}
}

// roundGB converts bytes to gigabytes rounded to one decimal, matching
// the dashboard's display contract.
func roundGB(b uint64) float64 {
	return math.Round(float64(b)/(1<<30)*10) / 10
}
