package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgallion1/aoc2023/internal/config"
	"github.com/dgallion1/aoc2023/internal/puzzle"
	"github.com/dgallion1/aoc2023/internal/stats"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API for solving puzzles.
type Server struct {
	router   chi.Router
	registry *puzzle.Registry
	runner   *puzzle.Runner
	stats    *stats.SolveStats
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server. st may be nil, in which
// case /api/stats reports unavailable.
func NewServer(reg *puzzle.Registry, runner *puzzle.Runner, st *stats.SolveStats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		registry: reg,
		runner:   runner,
		stats:    st,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints, when an API key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Get("/api/puzzles", s.handleListPuzzles)
		r.Post("/api/puzzles/{day}/solve", s.handleSolve)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
