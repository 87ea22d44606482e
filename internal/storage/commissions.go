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

var commissionColumns = []string{
	"id",
	"partner_id",
	"referral_id",
	"period_month",
	"period_year",
	"subscription_value",
	"percentage_applied",
	"commission_value",
	"status",
	"paid_at",
	"notes",
	"created_at",
}

func scanCommission(row sq.RowScanner) (*types.Commission, error) {
	var c types.Commission
	err := row.Scan(
		&c.ID,
		&c.PartnerID,
		&c.ReferralID,
		&c.PeriodMonth,
		&c.PeriodYear,
		&c.SubscriptionValue,
		&c.PercentageApplied,
		&c.CommissionValue,
		&c.Status,
		&c.PaidAt,
		&c.Notes,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// InsertCommission inserts c unless a commission already exists for the same
// (referral, period_month, period_year). On success c.ID is set.
func (s *Storage) InsertCommission(ctx context.Context, c *types.Commission) (InsertResult, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertCommission")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return InsertResultError, fmt.Errorf("failed to generate commission ID: %w", err)
	}

	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var insertedID string
	err = s.db.Statement(ctx).
		Insert("commissions").
		Columns(commissionColumns...).
		Values(
			id.String(),
			c.PartnerID,
			c.ReferralID,
			c.PeriodMonth,
			c.PeriodYear,
			c.SubscriptionValue,
			c.PercentageApplied,
			c.CommissionValue,
			string(c.Status),
			c.PaidAt,
			c.Notes,
			createdAt,
		).
		Suffix("ON CONFLICT (referral_id, period_month, period_year) DO NOTHING RETURNING id").
		QueryRowContext(ctx).
		Scan(&insertedID)

	switch {
	case err == nil:
		c.ID = insertedID
		c.CreatedAt = createdAt
		return InsertResultInserted, nil
	case isNoRows(err), IsDuplicateKeyError(err):
		return InsertResultAlreadyExists, nil
	default:
		return InsertResultError, fmt.Errorf("failed to insert commission: %w", err)
	}
}

func (s *Storage) GetCommissionByID(ctx context.Context, id string) (*types.Commission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCommissionByID")
	defer span.End()

	c, err := scanCommission(
		s.db.Statement(ctx).
			Select(commissionColumns...).
			From("commissions").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get commission: %w", err)
	}

	return c, nil
}

func (s *Storage) ListCommissions(ctx context.Context, filter types.CommissionFilter, offset, limit uint64) ([]*types.Commission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCommissions")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(commissionColumns...).
		From("commissions").
		OrderBy("period_year DESC", "period_month DESC", "created_at", "id")

	if filter.PartnerID != "" {
		query = query.Where(sq.Eq{"partner_id": filter.PartnerID})
	}
	if filter.PeriodMonth != 0 {
		query = query.Where(sq.Eq{"period_month": filter.PeriodMonth})
	}
	if filter.PeriodYear != 0 {
		query = query.Where(sq.Eq{"period_year": filter.PeriodYear})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	defer rows.Close()

	var commissions []*types.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commission: %w", err)
		}
		commissions = append(commissions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return commissions, nil
}

// SettleCommission moves a pending commission to status. The pending guard
// in the WHERE clause makes a concurrent settlement report ErrNotFound.
func (s *Storage) SettleCommission(ctx context.Context, id string, status types.CommissionStatus, paidAt *time.Time, notes *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SettleCommission")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("commissions").
		Set("status", string(status)).
		Set("paid_at", paidAt).
		Where(sq.Eq{"id": id, "status": string(types.CommissionStatusPending)})

	if notes != nil {
		query = query.Set("notes", *notes)
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to settle commission: %w", err)
	}

	return checkAffected(res)
}
