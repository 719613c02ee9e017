// SPDX-License-Identifier: MIT
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Config holds the HTTP server configuration.
type Config struct {
	// Addr is the listen address, e.g. "127.0.0.1:8080".
	Addr string

	// ReadTimeout / WriteTimeout / IdleTimeout bound connection handling.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a local-only configuration with sane timeouts.
func DefaultConfig() Config {
	return Config{
		Addr:         "127.0.0.1:8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Server exposes the ranking pipeline over HTTP.
type Server struct {
	router *mux.Router
	server *http.Server
	log    zerolog.Logger
}

// New builds a Server with its routes wired; it does not start listening.
func New(cfg Config, log zerolog.Logger) *Server {
	s := &Server{
		router: mux.NewRouter(),
		log:    log,
	}
	s.routes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

func (s *Server) routes() {
	s.router.Use(s.logging)

	s.router.HandleFunc("/", s.handleWelcome).Methods(http.MethodGet)
	s.router.HandleFunc("/rank", s.handleRank).Methods(http.MethodPost)
	s.router.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
}

// Handler returns the routed handler, useful for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.server.Addr).Msg("http server listening")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info().Msg("http server shutting down")

		return s.server.Shutdown(shutdownCtx)
	}
}

// logging records method, path, status and latency for every request.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("latency", time.Since(start)).
			Msg("request")
	})
}

// statusWriter captures the response status code for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
