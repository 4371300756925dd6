package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdfweld/pdfweld/internal/config"
)

// Server is the HTTP API for the merge service.
type Server struct {
	router chi.Router
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		log: log,
		cfg: cfg,
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

	r.Get("/health", s.handleHealth)

	r.Post("/api/merge", s.handleMerge)
	r.Post("/api/outline", s.handleOutline)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
