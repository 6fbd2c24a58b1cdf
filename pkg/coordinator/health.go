package coordinator

import (
	"encoding/json"
	"net/http"

	"github.com/cuemby/gridworks/pkg/metrics"
)

// HealthMux builds the coordinator's plaintext HTTP surface: liveness,
// readiness and Prometheus scraping, served alongside the gRPC listener
// on a separate port.
func (s *Server) HealthMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleReady reports ready once at least this process has a usable
// scheduler wired in; the coordinator has no external dependency to
// wait on (no database, no broker), so readiness is equivalent to
// liveness here.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.scheduler == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}
