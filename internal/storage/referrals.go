// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/partner-service/internal/types"
)

var referralColumns = []string{
	"id",
	"partner_id",
	"organization_id",
	"percentage_snapshot",
	"origin",
	"status",
	"created_at",
}

func scanReferral(row sq.RowScanner) (*types.Referral, error) {
	var r types.Referral
	err := row.Scan(
		&r.ID,
		&r.PartnerID,
		&r.OrganizationID,
		&r.PercentageSnapshot,
		&r.Origin,
		&r.Status,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateReferral persists a referral. The percentage snapshot is written
// once here, there is no statement that updates it afterwards.
func (s *Storage) CreateReferral(ctx context.Context, r *types.Referral) (*types.Referral, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateReferral")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate referral ID: %w", err)
	}

	created := *r
	created.ID = id.String()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	_, err = s.db.Statement(ctx).
		Insert("referrals").
		Columns(referralColumns...).
		Values(
			created.ID,
			created.PartnerID,
			created.OrganizationID,
			created.PercentageSnapshot,
			string(created.Origin),
			string(created.Status),
			created.CreatedAt,
		).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "referral")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "referral")
		}
		return nil, fmt.Errorf("failed to insert referral: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetReferralByID(ctx context.Context, id string) (*types.Referral, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetReferralByID")
	defer span.End()

	return s.getReferral(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetReferralByOrganizationID(ctx context.Context, organizationID string) (*types.Referral, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetReferralByOrganizationID")
	defer span.End()

	return s.getReferral(ctx, sq.Eq{"organization_id": organizationID})
}

func (s *Storage) getReferral(ctx context.Context, where sq.Eq) (*types.Referral, error) {
	r, err := scanReferral(
		s.db.Statement(ctx).
			Select(referralColumns...).
			From("referrals").
			Where(where).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get referral: %w", err)
	}

	return r, nil
}

// ListReferrals returns referrals ordered by creation, an empty partnerID or
// status disables the respective filter.
func (s *Storage) ListReferrals(ctx context.Context, partnerID string, status types.ReferralStatus) ([]*types.Referral, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListReferrals")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(referralColumns...).
		From("referrals").
		OrderBy("created_at", "id")

	if partnerID != "" {
		query = query.Where(sq.Eq{"partner_id": partnerID})
	}
	if status != "" {
		query = query.Where(sq.Eq{"status": string(status)})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	defer rows.Close()

	var referrals []*types.Referral
	for rows.Next() {
		r, err := scanReferral(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan referral: %w", err)
		}
		referrals = append(referrals, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return referrals, nil
}

func (s *Storage) CountReferrals(ctx context.Context, partnerID string, status types.ReferralStatus, since *time.Time) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountReferrals")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("referrals").
		Where(sq.Eq{"partner_id": partnerID})

	if status != "" {
		query = query.Where(sq.Eq{"status": string(status)})
	}
	if since != nil {
		query = query.Where(sq.GtOrEq{"created_at": *since})
	}

	var count int
	if err := query.QueryRowContext(ctx).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count referrals: %w", err)
	}

	return count, nil
}

func (s *Storage) SetReferralStatus(ctx context.Context, id string, status types.ReferralStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetReferralStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("referrals").
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update referral status: %w", err)
	}

	return checkAffected(res)
}
