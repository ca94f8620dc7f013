// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until a stop signal arrives.
func (s *server) RunServer() {
	if err := s.run(context.Background()); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until parent is cancelled or a stop signal arrives, then shuts
// the servers down and waits for in-flight requests. It returns
// errServerStopped if serving ends on its own first.
func (s *server) run(parent context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if s.httpServer.listener == nil {
		if err := s.httpServer.listen(); err != nil {
			return err
		}
	}

	served := make(chan error, 1)
	go func() {
		served <- s.httpServer.serve()
	}()
	s.logger.Info().Str("address", s.httpServer.addr()).Msg("HTTP server launched")

	select {
	case <-ctx.Done():
	case err := <-served:
		if err == nil {
			err = errServerStopped
		} else {
			err = fmt.Errorf("%w: %w", errServerStopped, err)
		}
		s.logger.Err(err).Str("func", "*server.run").Msg("HTTP server stopped before shutdown was requested")
		return err
	}

	s.Shutdown()
	if err := <-served; err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
