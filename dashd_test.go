package dashd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFacadeSnapshotAndHandler(t *testing.T) {
	d := NewWithRoot(t.TempDir())
	if err := d.EnsureDirs(); err != nil {
		t.Fatalf("ensure dirs: %v", err)
	}

	snap := d.Snapshot(context.Background())
	if !snap.Dashboard {
		t.Fatalf("dashboard must report up")
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	d.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("health: got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["version"] != Version {
		t.Fatalf("version: %v", body["version"])
	}
}

func TestRegisterMetricsIdempotent(t *testing.T) {
	if err := RegisterMetrics(); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := RegisterMetrics(); err != nil {
		t.Fatalf("second register: %v", err)
	}
}
