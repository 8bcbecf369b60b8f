package optimizerd

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoSim-25-26J-441/optimizer-core/internal/rules"
	"github.com/GoSim-25-26J-441/optimizer-core/pkg/logger"
	"github.com/GoSim-25-26J-441/optimizer-core/pkg/utils"
)

// HTTPServer exposes the optimizer over JSON HTTP, mirroring the gRPC
// surface for callers that do not speak gRPC.
type HTTPServer struct {
	mux *http.ServeMux
	log *slog.Logger
}

// NewHTTPServer creates a new HTTPServer. A nil log falls back to the
// process default logger.
func NewHTTPServer(log *slog.Logger) *HTTPServer {
	if log == nil {
		log = logger.Default
	}
	s := &HTTPServer{
		mux: http.NewServeMux(),
		log: log,
	}

	s.mux.HandleFunc("/healthz", s.handleHealthz)
	s.mux.HandleFunc("/v1/optimize/heat", s.handleOptimizeHeat)
	s.mux.HandleFunc("/v1/optimize/nbody", s.handleOptimizeNBody)

	return s
}

func (s *HTTPServer) Handler() http.Handler {
	return s.mux
}

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// handleOptimizeHeat handles POST /v1/optimize/heat
func (s *HTTPServer) handleOptimizeHeat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var goal struct {
		TargetProperty string  `json:"target_property"`
		DesiredValue   float64 `json:"desired_value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	params := rules.DeriveHeatParams(goal.TargetProperty)
	s.log.Info("optimized heat goal",
		"request_id", utils.GenerateRequestID(),
		"target_property", goal.TargetProperty,
		"desired_value", goal.DesiredValue,
		"diffusion_rate", params.DiffusionRate,
		"time_steps", params.TimeSteps,
		"delta_t", params.DeltaT,
	)

	s.writeJSON(w, http.StatusOK, params)
}

// handleOptimizeNBody handles POST /v1/optimize/nbody
func (s *HTTPServer) handleOptimizeNBody(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var goal struct {
		TargetBehavior string `json:"target_behavior"`
		BodyCount      int32  `json:"body_count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	params := rules.DeriveNBodyParams(goal.TargetBehavior, goal.BodyCount)
	s.log.Info("optimized n-body goal",
		"request_id", utils.GenerateRequestID(),
		"target_behavior", goal.TargetBehavior,
		"body_count", goal.BodyCount,
		"num_bodies", params.NumBodies,
		"g_constant", params.GConstant,
		"delta_t", params.DeltaT,
	)

	s.writeJSON(w, http.StatusOK, params)
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "error", err)
	}
}

func (s *HTTPServer) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		s.log.Error("error response encode failed", "error", err)
	}
}
