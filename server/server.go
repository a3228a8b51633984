// Package server exposes the query engine over HTTP. Each request parses a
// fresh query and loads a fresh table; nothing is cached between requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// Root is the directory table paths are resolved under. Queries cannot
	// reach files outside it.
	Root string
	// Logger receives request-level logs. Defaults to slog.Default.
	Logger *slog.Logger
}

// Server serves queries over HTTP.
type Server struct {
	router *chi.Mux
	cfg    Config
	log    *slog.Logger
}

// New creates a server for the given config.
func New(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	s := &Server{router: r, cfg: cfg, log: log}
	r.Get("/healthz", s.handleHealth)
	r.Post("/api/query", s.handleQuery)
	return s
}

// Router returns the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the server and blocks until a shutdown signal arrives or the
// listener fails. In-flight requests get a grace period to finish.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.cfg.Addr, "root", s.cfg.Root)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-done:
		s.log.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
