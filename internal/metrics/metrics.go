package metrics

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Package-level Prometheus collectors. They are registered via Register.
var (
	regOK atomic.Bool

	serviceUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "dashd",
			Subsystem: "service",
			Name:      "up",
			Help:      "Last liveness verdict per service (1 = up).",
		}, []string{"service"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashd",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of API requests by route and status code.",
		}, []string{"route", "code"},
	)
	bridgeRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashd",
			Subsystem: "bridge",
			Name:      "runs_total",
			Help:      "External command invocations by outcome (ok, exit, timeout, not_found, error).",
		}, []string{"outcome"},
	)
	snapshotDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dashd",
			Subsystem: "status",
			Name:      "snapshot_duration_seconds",
			Help:      "Time spent assembling one status snapshot.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// Register registers all metrics with the provided registerer.
// It is safe to call multiple times; subsequent calls after success are no-ops.
func Register(r prometheus.Registerer) error {
	if regOK.Load() {
		return nil
	}
	cs := []prometheus.Collector{serviceUp, httpRequests, bridgeRuns, snapshotDuration}
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			// If already registered, ignore (allows double Register with default registry)
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	regOK.Store(true)
	return nil
}

// Handler returns an http.Handler that serves Prometheus metrics for the DefaultGatherer.
func Handler() http.Handler { return promhttp.Handler() }

// Below are lightweight helpers used by internal packages to record metrics.
// They no-op if Register hasn't been called.

func SetServiceUp(service string, up bool) {
	if regOK.Load() {
		v := 0.0
		if up {
			v = 1.0
		}
		serviceUp.WithLabelValues(service).Set(v)
	}
}

func IncRequest(route string, code string) {
	if regOK.Load() {
		httpRequests.WithLabelValues(route, code).Inc()
	}
}

func IncBridgeRun(outcome string) {
	if regOK.Load() {
		bridgeRuns.WithLabelValues(outcome).Inc()
	}
}

func ObserveSnapshotDuration(seconds float64) {
	if regOK.Load() {
		snapshotDuration.Observe(seconds)
	}
}
