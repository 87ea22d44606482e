// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port               int      `envconfig:"port" default:"8080"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins"`

	// DSN is a PostgreSQL connection string, or sqlite://<path> for local runs.
	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	OIDCJWKSURL           string   `envconfig:"oidc_jwks_url"`
	AllowedSubjects       []string `envconfig:"allowed_subjects"`
	RequiredScope         string   `envconfig:"required_scope" default:"partners:admin"`

	ReferralCodePrefix string `envconfig:"referral_code_prefix" default:"PRT"`

	RedisAddr          string `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword      string `envconfig:"redis_password"`
	RedisDB            int    `envconfig:"redis_db" default:"0"`
	CommissionSchedule string `envconfig:"commission_schedule" default:"0 3 1 * *"`
	WorkerConcurrency  int    `envconfig:"worker_concurrency" default:"2"`
}
