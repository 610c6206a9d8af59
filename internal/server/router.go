package server

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cloudlab-sh/dashd/internal/command"
	"github.com/cloudlab-sh/dashd/internal/logtail"
	"github.com/cloudlab-sh/dashd/internal/metrics"
	"github.com/cloudlab-sh/dashd/internal/status"
)

// maxTailLines caps the caller-controlled lines parameter. The tail
// reader itself treats the value as trusted; clamping is this boundary's
// job.
const maxTailLines = 10000

// Router serves the dashboard HTTP surface.
// Endpoints:
//
//	GET /, /index.html, /dashboard.html   static dashboard asset
//	GET /api/health                       liveness of the dashboard itself
//	GET /api/status                       full status snapshot
//	GET /api/logs?service=...&lines=...   service log tail
//	GET /api/kernels                      kernel listing via the bridge
//	GET /api/environments                 environment catalog
//	GET /api/command/<args...>            forward to the cloudlab command
//	GET /metrics                          Prometheus metrics
//
// Every response carries permissive CORS headers; OPTIONS always
// answers 200 with an empty body.
type Router struct {
	agg     *status.Aggregator
	version string
}

// NewRouter constructs a Router around an aggregator.
func NewRouter(agg *status.Aggregator, version string) *Router {
	return &Router{agg: agg, version: version}
}

// Handler returns an http.Handler powered by gin that can be mounted in
// any server/mux.
func (r *Router) Handler() http.Handler {
	g := gin.New()
	g.Use(gin.Recovery())
	g.Use(corsMiddleware())
	g.Use(requestMetrics())

	g.GET("/", r.handleIndex)
	g.GET("/index.html", r.handleIndex)
	g.GET("/dashboard.html", r.handleIndex)
	g.GET("/api/health", r.handleHealth)
	g.GET("/api/status", r.handleStatus)
	g.GET("/api/logs", r.handleLogs)
	g.GET("/api/kernels", r.handleKernels)
	g.GET("/api/environments", r.handleEnvironments)
	g.GET("/api/command/*cmd", r.handleCommand)
	g.GET("/metrics", gin.WrapH(metrics.Handler()))
	g.NoRoute(r.handleNotFound)
	return g
}

// NewServer returns an http.Server on addr using this router. The caller
// owns ListenAndServe and Shutdown.
func NewServer(addr string, r *Router) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Command requests block in the bridge for up to its full
		// timeout; the write window must outlast it or the response is
		// lost to an expired deadline.
		WriteTimeout: command.DefaultTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncRequest(route, strconv.Itoa(c.Writer.Status()))
	}
}

// --- Handlers ---

func (r *Router) handleIndex(c *gin.Context) {
	p := r.agg.Layout.DashboardHTML()
	if _, err := os.Stat(p); err != nil {
		writeJSON(c, http.StatusNotFound, gin.H{"error": "Dashboard HTML not found"})
		return
	}
	c.File(p)
}

func (r *Router) handleHealth(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"status": "ok", "version": r.version})
}

func (r *Router) handleStatus(c *gin.Context) {
	writeJSON(c, http.StatusOK, r.agg.Snapshot(c.Request.Context()))
}

func (r *Router) handleLogs(c *gin.Context) {
	service := c.DefaultQuery("service", "jupyter")
	if !isSafeName(service) {
		writeJSON(c, http.StatusBadRequest, gin.H{"error": "invalid service name"})
		return
	}
	lines := logtail.DefaultLines
	if s := c.Query("lines"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			lines = clampLines(n)
		}
	}
	writeJSON(c, http.StatusOK, gin.H{
		"service": service,
		"log":     r.agg.Logs(service, lines),
	})
}

func (r *Router) handleKernels(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"kernels": r.agg.Kernels(c.Request.Context())})
}

func (r *Router) handleEnvironments(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"environments": r.agg.Environments()})
}

func (r *Router) handleCommand(c *gin.Context) {
	args := splitCommandPath(c.Param("cmd"))
	if len(args) == 0 {
		writeJSON(c, http.StatusBadRequest, gin.H{"error": "No command specified"})
		return
	}
	res := r.agg.Bridge.Run(c.Request.Context(), args...)
	metrics.IncBridgeRun(res.Outcome())
	if res.Failed() {
		writeJSON(c, http.StatusOK, gin.H{"success": false, "error": res.Err})
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"success": res.Success,
		"stdout":  res.Stdout,
		"stderr":  res.Stderr,
		"command": res.Command,
	})
}

func (r *Router) handleNotFound(c *gin.Context) {
	writeJSON(c, http.StatusNotFound, gin.H{"error": "Not found", "path": c.Request.URL.Path})
}
