package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	if health["status"] != "up" {
		log.Warn().
			Str("error", health["error"]).
			Msg("Health check failed")
		s.sendJSON(w, http.StatusServiceUnavailable, false, "Health check failed", health)
		return
	}
	s.sendJSON(w, http.StatusOK, true, "Health check successful", health)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Message: message}); err != nil {
		log.Error().Err(err).Msg("Error encoding JSON response")
	}
}
