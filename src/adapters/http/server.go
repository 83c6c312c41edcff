package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"placedir/src/services/directory"
)

// Server carries the HTTP surface of the directory API. Static assets
// for the browser client are served by a plain file server mount; the
// API contract itself is JSON only.
type Server struct {
	logger           *slog.Logger
	server           *http.Server
	mux              *http.ServeMux
	port             int
	directoryService *directory.DirectoryService
}

func NewServer(
	logger *slog.Logger,
	port int,
	directoryService *directory.DirectoryService,
	staticDir string,
) *Server {
	server := &Server{
		mux:              http.NewServeMux(),
		port:             port,
		logger:           logger,
		directoryService: directoryService,
	}

	server.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      server.mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Directory contract
	server.mux.HandleFunc("GET /api/establishments", server.ListEstablishments)
	server.mux.HandleFunc("POST /api/establishments", server.CreateEstablishment)
	server.mux.HandleFunc("GET /api/establishments/{id}", server.GetEstablishment)
	server.mux.HandleFunc("PUT /api/establishments/{id}", server.UpdateEstablishment)
	server.mux.HandleFunc("DELETE /api/establishments/{id}", server.DeleteEstablishment)

	// Geo helpers
	server.mux.HandleFunc("GET /api/nearby", server.Nearby)
	server.mux.HandleFunc("GET /api/geocode", server.Geocode)

	// Browser client assets; external collaborator, not part of the
	// API contract
	if staticDir != "" {
		server.mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	return server
}

// Handler exposes the mux for httptest-driven suites.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) Start() error {
	s.logger.Info("Server started", "port", s.port)

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
