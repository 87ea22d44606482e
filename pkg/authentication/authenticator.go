// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/tracing"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// AuthConfig locates the token issuer and carries the operator access policy.
type AuthConfig struct {
	Issuer  string
	JWKSURL string
	Policy  Policy
}

// NewJWTAuthenticator builds the verifier guarding the partner admin API.
// Keys come from JWKSURL when set, otherwise from OIDC discovery on Issuer.
func NewJWTAuthenticator(
	ctx context.Context,
	cfg AuthConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*JWTVerifier, error) {
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if len(cfg.Policy.AllowedSubjects) == 0 && cfg.Policy.RequiredScope == "" {
		return nil, fmt.Errorf("either allowed subjects or a required scope must be configured")
	}

	ctx = oidc.ClientContext(ctx, &otelHTTPClient)
	oidcConfig := &oidc.Config{SkipClientIDCheck: true}

	var idTokenVerifier *oidc.IDTokenVerifier
	if cfg.JWKSURL != "" {
		logger.Infof("Using manual JWKS URL: %s", cfg.JWKSURL)
		idTokenVerifier = oidc.NewVerifier(cfg.Issuer, oidc.NewRemoteKeySet(ctx, cfg.JWKSURL), oidcConfig)
	} else {
		logger.Infof("Using OIDC discovery for issuer: %s", cfg.Issuer)
		provider, err := oidc.NewProvider(ctx, cfg.Issuer)
		if err != nil {
			return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
		}
		idTokenVerifier = provider.Verifier(oidcConfig)
	}

	logger.Infof("Partner admin API requires scope %q or one of %d allowed subjects", cfg.Policy.RequiredScope, len(cfg.Policy.AllowedSubjects))

	return NewJWTVerifier(idTokenVerifier, cfg.Policy, tracer, monitor, logger), nil
}
