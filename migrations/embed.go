// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var EmbedMigrations embed.FS

// ForDialect returns the migration set for the given goose dialect.
func ForDialect(dialect goose.Dialect) (fs.FS, error) {
	switch dialect {
	case goose.DialectPostgres:
		return fs.Sub(EmbedMigrations, "postgres")
	case goose.DialectSQLite3:
		return fs.Sub(EmbedMigrations, "sqlite")
	default:
		return nil, fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}

// NewProvider builds a goose provider over the embedded migrations of dialect.
func NewProvider(db *sql.DB, dialect goose.Dialect, opts ...goose.ProviderOption) (*goose.Provider, error) {
	fsys, err := ForDialect(dialect)
	if err != nil {
		return nil, err
	}

	return goose.NewProvider(dialect, db, fsys, opts...)
}

// Up applies every pending migration quietly. It is used to bootstrap SQLite
// databases in development and tests.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	provider, err := NewProvider(db, dialect, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %v", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %v", err)
	}

	return nil
}
