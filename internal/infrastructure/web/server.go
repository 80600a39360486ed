// Package web exposes the admin HTTP surface: the relationships list page
// data, the single-record page data, and the form action endpoint that runs
// the bulk action engine and redirects.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ersonp/relations-core/internal/application/handlers"
	"github.com/ersonp/relations-core/internal/domain/ports"
	"github.com/ersonp/relations-core/internal/domain/services"
)

// Server is the admin HTTP server.
type Server struct {
	logger  *slog.Logger
	server  *http.Server
	mux     *http.ServeMux
	addr    string
	actions *handlers.ActionHandler
	service *services.RelationshipService
	auth    ports.Authorizer
}

// NewServer creates a new admin server.
func NewServer(
	logger *slog.Logger,
	addr string,
	actions *handlers.ActionHandler,
	service *services.RelationshipService,
	auth ports.Authorizer,
) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		addr:    addr,
		logger:  logger,
		actions: actions,
		service: service,
		auth:    auth,
	}

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.mux.HandleFunc("GET "+handlers.AdminPath, s.handleList)
	s.mux.HandleFunc("GET "+handlers.AdminPath+"/{id}", s.handleGet)
	s.mux.HandleFunc("POST "+handlers.AdminPath, s.handleAction)

	return s
}

// Handler returns the server's root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("admin server started", "addr", s.addr)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serving admin: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("admin server shutting down")
	return s.server.Shutdown(ctx)
}
