// Package server provides HTTP server lifecycle management with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/JaimeStill/scaffold/internal/config"
	"github.com/JaimeStill/scaffold/pkg/lifecycle"
)

// System manages the HTTP server lifecycle including startup and shutdown.
type System interface {
	Addr() string
	Start(lc *lifecycle.Coordinator) error
}

type server struct {
	http            *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
	addr            string
}

// New creates a server system with the specified configuration, handler, and logger.
func New(cfg *config.Config, handler http.Handler, logger *slog.Logger) System {
	return &server{
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
			WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		},
		logger:          logger.With("system", "server"),
		shutdownTimeout: cfg.ShutdownTimeoutDuration(),
		addr:            cfg.Server.Addr(),
	}
}

// Addr returns the bound address once Start succeeds, else the configured one.
func (s *server) Addr() string {
	return s.addr
}

// Start binds the listener, serves in the background, and registers graceful shutdown.
// Bind failures are returned synchronously.
func (s *server) Start(lc *lifecycle.Coordinator) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	s.addr = ln.Addr().String()

	go func() {
		s.logger.Info("server listening", "addr", s.addr)
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.http.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
		} else {
			s.logger.Info("server shutdown complete")
		}
	})

	return nil
}
