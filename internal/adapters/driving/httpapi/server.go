package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/custodia-labs/radar/internal/logger"
)

// maxBodyBytes caps request bodies. Questionnaires are a handful of short
// answers.
const maxBodyBytes = 1 << 20

// Server serves the JSON API.
type Server struct {
	ports  *Ports
	router *mux.Router
}

// NewServer creates a server over ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{ports: ports, router: mux.NewRouter()}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router
	r.Use(requestIDMiddleware, loggingMiddleware)

	r.NotFoundHandler = http.HandlerFunc(handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handleMethodNotAllowed)

	// Routes sit on the root router; a PathPrefix subrouter reports a
	// method mismatch as 404.
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/domains", s.handleDomains).Methods(http.MethodGet)
	r.HandleFunc("/v1/analyze/{domain}", s.handleAnalyze).Methods(http.MethodPost)
	r.HandleFunc("/v1/normalize", s.handleNormalize).Methods(http.MethodPost)
	r.HandleFunc("/v1/entities", s.handleEntities).Methods(http.MethodPost)
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("api listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
