// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pressly/goose/v3"

	"github.com/canonical/partner-service/internal/config"
	"github.com/canonical/partner-service/internal/db"
	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/migrations"
)

const sqliteScheme = "sqlite://"

// loadSpecs reads an optional .env file from the working directory before
// processing the environment. Variables already set are not overridden.
func loadSpecs() (*config.EnvSpec, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %v", err)
	}

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %s", err)
	}

	return specs, nil
}

func isSQLite(dsn string) bool {
	return strings.HasPrefix(dsn, sqliteScheme)
}

// openDatabase connects to PostgreSQL, or to SQLite when the DSN uses the
// sqlite:// scheme. SQLite databases are migrated on open.
func openDatabase(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*db.DBClient, error) {
	if isSQLite(specs.DSN) {
		path := strings.TrimPrefix(specs.DSN, sqliteScheme)

		dbClient, err := db.NewSQLiteClient(path, tracer, monitor, logger)
		if err != nil {
			return nil, err
		}

		if err := migrations.Up(ctx, dbClient.DB(), goose.DialectSQLite3); err != nil {
			dbClient.Close()
			return nil, fmt.Errorf("failed to migrate sqlite database: %v", err)
		}

		logger.Infof("Using SQLite database at %s", path)
		return dbClient, nil
	}

	return db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer,
		monitor,
		logger,
	)
}

func redisConnOpt(specs *config.EnvSpec) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     specs.RedisAddr,
		Password: specs.RedisPassword,
		DB:       specs.RedisDB,
	}
}
