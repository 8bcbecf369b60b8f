//go:build integration
// +build integration

package integration_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GoSim-25-26J-441/optimizer-core/internal/optimizerd"
	"github.com/GoSim-25-26J-441/optimizer-core/internal/rules"
	"github.com/GoSim-25-26J-441/optimizer-core/pkg/config"
)

// startHTTPServer stands up the HTTP gateway with the daemon's limiter
// middleware, as cmd/optimizerd wires it.
func startHTTPServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.DefaultConfig()
	limiter := optimizerd.NewConcurrencyLimiter(cfg.MaxConcurrent)
	srv := httptest.NewServer(limiter.Middleware(optimizerd.NewHTTPServer(nil).Handler()))
	t.Cleanup(srv.Close)
	return srv
}

func TestIntegration_HTTPHealthz(t *testing.T) {
	srv := startHTTPServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body["status"])
	}
}

func TestIntegration_HTTPOptimizeEndpoints(t *testing.T) {
	srv := startHTTPServer(t)

	resp, err := http.Post(srv.URL+"/v1/optimize/heat", "application/json",
		strings.NewReader(`{"target_property":"fast_diffusion","desired_value":0}`))
	if err != nil {
		t.Fatalf("optimize heat request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var heat rules.HeatParams
	if err := json.NewDecoder(resp.Body).Decode(&heat); err != nil {
		t.Fatalf("invalid heat params json: %v", err)
	}
	if heat.DiffusionRate != 5.0 || heat.TimeSteps != 50 {
		t.Fatalf("unexpected heat params: %+v", heat)
	}

	resp, err = http.Post(srv.URL+"/v1/optimize/nbody", "application/json",
		strings.NewReader(`{"target_behavior":"minimize_collisions","body_count":0}`))
	if err != nil {
		t.Fatalf("optimize nbody request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var nbody rules.NBodyParams
	if err := json.NewDecoder(resp.Body).Decode(&nbody); err != nil {
		t.Fatalf("invalid nbody params json: %v", err)
	}
	want := rules.NBodyParams{NumBodies: 100, TimeSteps: 200, DeltaT: 0.005, GConstant: 0.5}
	if nbody != want {
		t.Fatalf("got %+v, want %+v", nbody, want)
	}
}
