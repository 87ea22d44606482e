// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/partner-service/internal/types"
)

// programConfigID is the key of the singleton configuration row.
const programConfigID = "default"

func (s *Storage) GetProgramConfig(ctx context.Context) (*types.ProgramConfig, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProgramConfig")
	defer span.End()

	var (
		cfg   types.ProgramConfig
		rules []byte
	)

	err := s.db.Statement(ctx).
		Select("id", "default_percentage", "courtesy_rules", "base_referral_url", "notes", "updated_at").
		From("program_config").
		Where(sq.Eq{"id": programConfigID}).
		QueryRowContext(ctx).
		Scan(&cfg.ID, &cfg.DefaultPercentage, &rules, &cfg.BaseReferralURL, &cfg.Notes, &cfg.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get program config: %w", err)
	}

	if len(rules) > 0 {
		if err := json.Unmarshal(rules, &cfg.CourtesyRules); err != nil {
			return nil, fmt.Errorf("failed to decode courtesy rules: %w", err)
		}
	}

	return &cfg, nil
}

func (s *Storage) SaveProgramConfig(ctx context.Context, cfg *types.ProgramConfig) (*types.ProgramConfig, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SaveProgramConfig")
	defer span.End()

	rules, err := json.Marshal(cfg.CourtesyRules)
	if err != nil {
		return nil, fmt.Errorf("failed to encode courtesy rules: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("program_config").
		Columns("id", "default_percentage", "courtesy_rules", "base_referral_url", "notes", "updated_at").
		Values(programConfigID, cfg.DefaultPercentage, string(rules), cfg.BaseReferralURL, cfg.Notes, time.Now().UTC()).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			default_percentage = excluded.default_percentage,
			courtesy_rules = excluded.courtesy_rules,
			base_referral_url = excluded.base_referral_url,
			notes = excluded.notes,
			updated_at = excluded.updated_at`).
		ExecContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to save program config: %w", err)
	}

	return s.GetProgramConfig(ctx)
}
