// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/partner-service/internal/db"
	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/pkg/authentication"
	"github.com/canonical/partner-service/pkg/metrics"
	"github.com/canonical/partner-service/pkg/status"
)

// EndpointsInterface is implemented by every domain API.
type EndpointsInterface interface {
	RegisterEndpoints(mux chi.Router)
}

// GenerateEndpointInterface is implemented by the commission API, whose
// generation route runs outside the request transaction.
type GenerateEndpointInterface interface {
	RegisterGenerateEndpoint(mux chi.Router)
}

type RouterConfig struct {
	APIs        []EndpointsInterface
	Generator   GenerateEndpointInterface
	Auth        *authentication.Middleware
	CORSOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(origins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		if cfg.Auth != nil {
			r.Use(cfg.Auth.Authenticate())
		}

		if cfg.Generator != nil {
			cfg.Generator.RegisterGenerateEndpoint(r)
		}

		r.Group(func(r chi.Router) {
			r.Use(db.TransactionMiddleware(dbClient, logger))

			for _, api := range cfg.APIs {
				api.RegisterEndpoints(r)
			}
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
