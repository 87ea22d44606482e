// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/tracing"
)

const apiResource = "partner_admin_api"

// Policy decides which verified tokens may operate the partner admin API.
// A token passes when its subject is allow-listed or it carries RequiredScope.
type Policy struct {
	AllowedSubjects []string
	RequiredScope   string
}

type operatorClaims struct {
	Subject  string   `json:"sub"`
	ClientID string   `json:"client_id"`
	Email    string   `json:"email"`
	Scope    string   `json:"scope"`
	Scopes   []string `json:"scp"`
}

func (c operatorClaims) operator() *Operator {
	var scopes []string
	scopes = append(scopes, strings.Fields(c.Scope)...)
	for _, s := range c.Scopes {
		if !slices.Contains(scopes, s) {
			scopes = append(scopes, s)
		}
	}

	return &Operator{
		Subject:  c.Subject,
		ClientID: c.ClientID,
		Email:    c.Email,
		Scopes:   scopes,
	}
}

func (p Policy) authorize(op *Operator) error {
	if len(p.AllowedSubjects) == 0 && p.RequiredScope == "" {
		return fmt.Errorf("unauthorized: no access policy configured")
	}

	if slices.Contains(p.AllowedSubjects, op.Subject) {
		return nil
	}

	if p.RequiredScope != "" && op.HasScope(p.RequiredScope) {
		return nil
	}

	return fmt.Errorf("unauthorized: missing scope %q or subject not allowed", p.RequiredScope)
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   Policy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Operator, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var claims operatorClaims
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	op := claims.operator()
	if err := v.policy.authorize(op); err != nil {
		v.logger.Security().AuthzFailure(op.Name(), apiResource)
		return nil, err
	}

	return op, nil
}

func NewJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	policy Policy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier: verifier,
		policy:   policy,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
