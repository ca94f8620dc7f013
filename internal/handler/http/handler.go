// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	identityHeader string
	serverCfg      config.Server
	limiter        *rate.Limiter
	metrics        *httpMetrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Extra collectors (for example the
// connection pool statistics) are exposed on /metrics next to the request
// metrics.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger, collectors ...prometheus.Collector) *Handler {
	identityHeader := cfg.App.IdentityHeader
	if identityHeader == "" {
		identityHeader = config.DefaultIdentityHeader
	}

	var limiter *rate.Limiter
	if cfg.Server.RateLimit > 0 {
		burst := max(cfg.Server.RateBurst, 1)
		limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), burst)
	}

	logger.Info().
		Str("identity_header", identityHeader).
		Float64("rate_limit", cfg.Server.RateLimit).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("http handler created")

	return &Handler{
		services:       services,
		identityHeader: identityHeader,
		serverCfg:      cfg.Server,
		limiter:        limiter,
		metrics:        newHTTPMetrics(collectors...),
		logger:         logger,
	}
}
