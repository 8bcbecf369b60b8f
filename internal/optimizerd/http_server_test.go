package optimizerd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GoSim-25-26J-441/optimizer-core/internal/rules"
)

func newTestHTTPServer() *HTTPServer {
	return NewHTTPServer(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func TestHTTPServerHealthz(t *testing.T) {
	srv := newTestHTTPServer()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body["status"])
	}
	if body["timestamp"] == "" {
		t.Fatalf("expected timestamp to be set")
	}
}

func TestHTTPServerOptimizeHeat(t *testing.T) {
	srv := newTestHTTPServer()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/optimize/heat",
		strings.NewReader(`{"target_property":"fast_diffusion","desired_value":0}`))

	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var params rules.HeatParams
	if err := json.Unmarshal(rr.Body.Bytes(), &params); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := rules.HeatParams{Width: 100, Height: 100, DiffusionRate: 5.0, TimeSteps: 50, DeltaT: 0.1, DeltaX: 1.0}
	if params != want {
		t.Fatalf("got %+v, want %+v", params, want)
	}
}

func TestHTTPServerOptimizeHeatUnknownGoal(t *testing.T) {
	srv := newTestHTTPServer()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/optimize/heat",
		strings.NewReader(`{"target_property":"unknown_xyz","desired_value":1}`))

	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unknown goals must not be rejected, got %d", rr.Code)
	}
	var params rules.HeatParams
	if err := json.Unmarshal(rr.Body.Bytes(), &params); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if params != rules.DefaultHeatParams() {
		t.Fatalf("got %+v, want baseline %+v", params, rules.DefaultHeatParams())
	}
}

func TestHTTPServerOptimizeNBody(t *testing.T) {
	srv := newTestHTTPServer()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/optimize/nbody",
		strings.NewReader(`{"target_behavior":"high_activity","body_count":300}`))

	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var params rules.NBodyParams
	if err := json.Unmarshal(rr.Body.Bytes(), &params); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := rules.NBodyParams{NumBodies: 300, TimeSteps: 200, DeltaT: 0.02, GConstant: 5.0}
	if params != want {
		t.Fatalf("got %+v, want %+v", params, want)
	}
}

func TestHTTPServerOptimizeMethodNotAllowed(t *testing.T) {
	srv := newTestHTTPServer()

	for _, path := range []string{"/v1/optimize/heat", "/v1/optimize/nbody"} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.Handler().ServeHTTP(rr, req)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: expected 405 for GET, got %d", path, rr.Code)
		}
	}
}

func TestHTTPServerOptimizeInvalidBody(t *testing.T) {
	srv := newTestHTTPServer()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/optimize/heat", strings.NewReader("{not json"))

	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json error body: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("expected error message in body")
	}
}
