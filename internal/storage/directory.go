// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/partner-service/internal/types"
)

// The organizations, subscriptions and plans tables belong to the rest of
// the back office, this service only reads them.

func (s *Storage) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganization")
	defer span.End()

	var o types.Organization
	err := s.db.Statement(ctx).
		Select("id", "name", "status").
		From("organizations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.Status)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

func (s *Storage) ListOrganizations(ctx context.Context) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "status").
		From("organizations").
		OrderBy("name", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*types.Organization
	for rows.Next() {
		var o types.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Status); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, nil
}

// GetCurrentSubscription returns the most recent subscription of the
// organization whose status is one of statuses.
func (s *Storage) GetCurrentSubscription(ctx context.Context, organizationID string, statuses []types.SubscriptionStatus) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCurrentSubscription")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "organization_id", "plan_id", "status", "billing_period", "courtesy").
		From("subscriptions").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1)

	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, st := range statuses {
			values[i] = string(st)
		}
		query = query.Where(sq.Eq{"status": values})
	}

	var sub types.Subscription
	err := query.QueryRowContext(ctx).
		Scan(&sub.ID, &sub.OrganizationID, &sub.PlanID, &sub.Status, &sub.BillingPeriod, &sub.Courtesy)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

func (s *Storage) GetPlan(ctx context.Context, id string) (*types.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlan")
	defer span.End()

	var p types.Plan
	err := s.db.Statement(ctx).
		Select("id", "name", "monthly_price", "annual_price").
		From("plans").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Name, &p.MonthlyPrice, &p.AnnualPrice)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return &p, nil
}
