package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"userapi-go/internal/config"
	"userapi-go/internal/database"
	"userapi-go/internal/user"

	"github.com/rs/zerolog/log"
)

// HealthChecker reports the state of a backing service
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

// Server represents the HTTP server and its dependencies
type Server struct {
	config      *config.Config
	db          HealthChecker
	userHandler *user.Handler
	metrics     *metrics
}

// NewServer creates a new server instance
func NewServer(config *config.Config, db *database.DB) (*Server, error) {
	userRepo := user.NewRepository(db)

	return newServer(config, db, userRepo), nil
}

func newServer(config *config.Config, db HealthChecker, store user.Store) *Server {
	return &Server{
		config:      config,
		db:          db,
		userHandler: user.NewHandler(store),
		metrics:     newMetrics(),
	}
}

// Start builds the HTTP server. The caller runs ListenAndServe and Shutdown.
func (s *Server) Start() (*http.Server, error) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info().
		Int("port", s.config.Port).
		Str("env", s.config.Env).
		Msg("Starting server")

	return srv, nil
}

// sendJSON sends a JSON response with consistent formatting
func (s *Server) sendJSON(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: success,
		Message: message,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("Error encoding JSON response")
	}
}
