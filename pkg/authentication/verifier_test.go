// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

const testIssuer = "https://auth.example.com"

// payloadKeySet accepts any signature and hands back the JWT payload.
type payloadKeySet struct{}

func (payloadKeySet) VerifySignature(_ context.Context, jwt string) ([]byte, error) {
	parts := strings.Split(jwt, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed jwt")
	}
	return base64.RawURLEncoding.DecodeString(parts[1])
}

func unsignedJWT(t *testing.T, claims map[string]any) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "RS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("signature"))
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name          string
		policy        Policy
		claims        map[string]any
		expected      *Operator
		expectedError bool
		authzFailure  string
	}{
		{
			name:   "scope claim grants access",
			policy: Policy{RequiredScope: "partners:admin"},
			claims: map[string]any{
				"iss": testIssuer, "exp": exp,
				"sub": "operator-1", "email": "ops@example.com", "scope": "openid partners:admin",
			},
			expected: &Operator{Subject: "operator-1", Email: "ops@example.com", Scopes: []string{"openid", "partners:admin"}},
		},
		{
			name:   "scp array grants access",
			policy: Policy{RequiredScope: "partners:admin"},
			claims: map[string]any{
				"iss": testIssuer, "exp": exp,
				"sub": "billing-sync", "client_id": "billing-sync", "scp": []string{"partners:admin"},
			},
			expected: &Operator{Subject: "billing-sync", ClientID: "billing-sync", Scopes: []string{"partners:admin"}},
		},
		{
			name:   "allow-listed subject without scope",
			policy: Policy{AllowedSubjects: []string{"cron"}, RequiredScope: "partners:admin"},
			claims: map[string]any{
				"iss": testIssuer, "exp": exp, "sub": "cron",
			},
			expected: &Operator{Subject: "cron"},
		},
		{
			name:   "missing scope is rejected",
			policy: Policy{RequiredScope: "partners:admin"},
			claims: map[string]any{
				"iss": testIssuer, "exp": exp, "sub": "reader", "scope": "partners:read",
			},
			expectedError: true,
			authzFailure:  "reader",
		},
		{
			name:   "empty policy is rejected",
			policy: Policy{},
			claims: map[string]any{
				"iss": testIssuer, "exp": exp, "sub": "operator-1", "scope": "partners:admin",
			},
			expectedError: true,
			authzFailure:  "operator-1",
		},
		{
			name:   "foreign issuer is rejected",
			policy: Policy{RequiredScope: "partners:admin"},
			claims: map[string]any{
				"iss": "https://evil.example.com", "exp": exp, "sub": "operator-1", "scope": "partners:admin",
			},
			expectedError: true,
		},
		{
			name:   "expired token is rejected",
			policy: Policy{RequiredScope: "partners:admin"},
			claims: map[string]any{
				"iss": testIssuer, "exp": time.Now().Add(-time.Hour).Unix(), "sub": "operator-1", "scope": "partners:admin",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.JWTVerifier.VerifyToken").Return(ctx, trace.SpanFromContext(ctx))
			if tt.authzFailure != "" {
				mockSecurity := NewMockSecurityLoggerInterface(ctrl)
				mockSecurity.EXPECT().AuthzFailure(tt.authzFailure, "partner_admin_api")
				mockLogger.EXPECT().Security().Return(mockSecurity)
			}

			idTokenVerifier := oidc.NewVerifier(testIssuer, payloadKeySet{}, &oidc.Config{SkipClientIDCheck: true})
			v := NewJWTVerifier(idTokenVerifier, tt.policy, mockTracer, mockMonitor, mockLogger)

			op, err := v.VerifyToken(ctx, unsignedJWT(t, tt.claims))

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, op)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestNewJWTAuthenticator_RequiresPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	_, err := NewJWTAuthenticator(context.Background(), AuthConfig{}, mockTracer, mockMonitor, mockLogger)
	assert.ErrorContains(t, err, "issuer is required")

	_, err = NewJWTAuthenticator(context.Background(), AuthConfig{Issuer: testIssuer}, mockTracer, mockMonitor, mockLogger)
	assert.ErrorContains(t, err, "allowed subjects or a required scope")
}
