// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/partner-service/internal/db"
	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var partnerColumns = []string{
	"id",
	"user_id",
	"organization_id",
	"referral_code",
	"status",
	"percentage_override",
	"tier_override",
	"joined_at",
	"suspended_at",
	"suspension_reason",
	"courtesy_applied_at",
	"courtesy_valid_until",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func scanPartner(row sq.RowScanner) (*types.Partner, error) {
	var p types.Partner
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.OrganizationID,
		&p.ReferralCode,
		&p.Status,
		&p.PercentageOverride,
		&p.TierOverride,
		&p.JoinedAt,
		&p.SuspendedAt,
		&p.SuspensionReason,
		&p.CourtesyAppliedAt,
		&p.CourtesyValidUntil,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) CreatePartner(ctx context.Context, p *types.Partner) (*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePartner")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate partner ID: %w", err)
	}

	joinedAt := p.JoinedAt
	if joinedAt.IsZero() {
		joinedAt = time.Now().UTC()
	}

	_, err = s.db.Statement(ctx).
		Insert("partners").
		Columns(partnerColumns...).
		Values(
			id.String(),
			p.UserID,
			p.OrganizationID,
			p.ReferralCode,
			string(p.Status),
			p.PercentageOverride,
			p.TierOverride,
			joinedAt,
			p.SuspendedAt,
			p.SuspensionReason,
			p.CourtesyAppliedAt,
			p.CourtesyValidUntil,
		).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "partner")
		}
		return nil, fmt.Errorf("failed to insert partner: %w", err)
	}

	return s.GetPartnerByID(ctx, id.String())
}

func (s *Storage) GetPartnerByID(ctx context.Context, id string) (*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPartnerByID")
	defer span.End()

	return s.getPartner(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetPartnerByOrganizationID(ctx context.Context, organizationID string) (*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPartnerByOrganizationID")
	defer span.End()

	return s.getPartner(ctx, sq.Eq{"organization_id": organizationID})
}

func (s *Storage) GetPartnerByUserID(ctx context.Context, userID string) (*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPartnerByUserID")
	defer span.End()

	return s.getPartner(ctx, sq.Eq{"user_id": userID})
}

func (s *Storage) GetPartnerByCode(ctx context.Context, code string) (*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPartnerByCode")
	defer span.End()

	return s.getPartner(ctx, sq.Eq{"referral_code": code})
}

func (s *Storage) getPartner(ctx context.Context, where sq.Eq) (*types.Partner, error) {
	p, err := scanPartner(
		s.db.Statement(ctx).
			Select(partnerColumns...).
			From("partners").
			Where(where).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}

	return p, nil
}

func (s *Storage) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ReferralCodeExists")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("partners").
		Where(sq.Eq{"referral_code": code}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check referral code: %w", err)
	}

	return count > 0, nil
}

func (s *Storage) ListPartners(ctx context.Context, status types.PartnerStatus, offset, limit uint64) ([]*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPartners")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(partnerColumns...).
		From("partners").
		OrderBy("joined_at", "id")

	if status != "" {
		query = query.Where(sq.Eq{"status": string(status)})
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	defer rows.Close()

	var partners []*types.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner: %w", err)
		}
		partners = append(partners, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner rows: %w", err)
	}

	return partners, nil
}

func (s *Storage) ListPartneredOrganizationIDs(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPartneredOrganizationIDs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("organization_id").
		From("partners").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partnered organizations: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan organization id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

// UpdatePartner persists the mutable partner fields. Identity fields
// (user, organization, code, joined_at) are never rewritten.
func (s *Storage) UpdatePartner(ctx context.Context, p *types.Partner) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePartner")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("partners").
		SetMap(map[string]interface{}{
			"status":              string(p.Status),
			"percentage_override": p.PercentageOverride,
			"tier_override":       p.TierOverride,
			"suspended_at":        p.SuspendedAt,
			"suspension_reason":   p.SuspensionReason,
		}).
		Where(sq.Eq{"id": p.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update partner: %w", err)
	}

	return checkAffected(res)
}

func (s *Storage) SetCourtesy(ctx context.Context, id string, appliedAt time.Time, validUntil *time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetCourtesy")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("partners").
		Set("courtesy_applied_at", appliedAt).
		Set("courtesy_valid_until", validUntil).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set courtesy: %w", err)
	}

	return checkAffected(res)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func checkAffected(res rowsAffecter) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
