// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/partner-service/internal/db"
	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
	"github.com/canonical/partner-service/migrations"
)

func newSQLiteStorage(t *testing.T) (*Storage, *db.DBClient) {
	t.Helper()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	dbClient, err := db.NewSQLiteClient(":memory:", tracer, monitor, logger)
	require.NoError(t, err)
	t.Cleanup(dbClient.Close)

	require.NoError(t, migrations.Up(context.Background(), dbClient.DB(), goose.DialectSQLite3))

	_, err = dbClient.DB().Exec(`INSERT INTO organizations (id, name) VALUES
		('org-1', 'One'), ('org-2', 'Two'), ('org-3', 'Three')`)
	require.NoError(t, err)

	return NewStorage(dbClient, tracer, monitor, logger), dbClient
}

func createPartner(t *testing.T, s *Storage, userID, orgID, code string) *types.Partner {
	t.Helper()

	p, err := s.CreatePartner(context.Background(), &types.Partner{
		UserID:         userID,
		OrganizationID: orgID,
		ReferralCode:   code,
		Status:         types.PartnerStatusActive,
	})
	require.NoError(t, err)

	return p
}

func TestStorage_Partners(t *testing.T) {
	ctx := context.Background()
	s, _ := newSQLiteStorage(t)

	p := createPartner(t, s, "user-1", "org-1", "PRTAAAAAA")
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.JoinedAt.IsZero())
	assert.False(t, p.PercentageOverride.Valid)

	byCode, err := s.GetPartnerByCode(ctx, "PRTAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byCode.ID)

	byOrg, err := s.GetPartnerByOrganizationID(ctx, "org-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byOrg.ID)

	byUser, err := s.GetPartnerByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byUser.ID)

	_, err = s.GetPartnerByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := s.ReferralCodeExists(ctx, "PRTAAAAAA")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.ReferralCodeExists(ctx, "PRTZZZZZZ")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.CreatePartner(ctx, &types.Partner{UserID: "user-2", OrganizationID: "org-1", ReferralCode: "PRTBBBBBB", Status: types.PartnerStatusActive})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = s.CreatePartner(ctx, &types.Partner{UserID: "user-2", OrganizationID: "org-2", ReferralCode: "PRTAAAAAA", Status: types.PartnerStatusActive})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	now := time.Now().UTC().Truncate(time.Second)
	reason := "fraud review"
	tier := "Gold"
	p.Status = types.PartnerStatusSuspended
	p.SuspendedAt = &now
	p.SuspensionReason = &reason
	p.PercentageOverride = decimal.NewNullDecimal(decimal.RequireFromString("12.5"))
	p.TierOverride = &tier
	require.NoError(t, s.UpdatePartner(ctx, p))

	updated, err := s.GetPartnerByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, types.PartnerStatusSuspended, updated.Status)
	require.NotNil(t, updated.SuspensionReason)
	assert.Equal(t, reason, *updated.SuspensionReason)
	assert.True(t, updated.PercentageOverride.Valid)
	assert.True(t, updated.PercentageOverride.Decimal.Equal(decimal.RequireFromString("12.5")))
	require.NotNil(t, updated.TierOverride)
	assert.Equal(t, "Gold", *updated.TierOverride)

	suspended, err := s.ListPartners(ctx, types.PartnerStatusSuspended, 0, 0)
	require.NoError(t, err)
	assert.Len(t, suspended, 1)

	active, err := s.ListPartners(ctx, types.PartnerStatusActive, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, active)

	orgs, err := s.ListPartneredOrganizationIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"org-1"}, orgs)

	validUntil := now.AddDate(1, 0, 0)
	require.NoError(t, s.SetCourtesy(ctx, p.ID, now, &validUntil))

	withCourtesy, err := s.GetPartnerByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, withCourtesy.CourtesyAppliedAt)
	require.NotNil(t, withCourtesy.CourtesyValidUntil)
	assert.True(t, withCourtesy.CourtesyValidUntil.Equal(validUntil))

	assert.ErrorIs(t, s.SetCourtesy(ctx, "missing", now, nil), ErrNotFound)
	assert.ErrorIs(t, s.UpdatePartner(ctx, &types.Partner{ID: "missing", Status: types.PartnerStatusActive}), ErrNotFound)
}

func TestStorage_Referrals(t *testing.T) {
	ctx := context.Background()
	s, _ := newSQLiteStorage(t)

	p := createPartner(t, s, "user-1", "org-1", "PRTAAAAAA")
	start := time.Now().UTC().Add(-time.Hour)

	first, err := s.CreateReferral(ctx, &types.Referral{
		PartnerID:          p.ID,
		OrganizationID:     "org-2",
		PercentageSnapshot: decimal.NewFromInt(10),
		Origin:             types.ReferralOriginLink,
		Status:             types.ReferralStatusActive,
		CreatedAt:          start.Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	second, err := s.CreateReferral(ctx, &types.Referral{
		PartnerID:          p.ID,
		OrganizationID:     "org-3",
		PercentageSnapshot: decimal.RequireFromString("7.5"),
		Origin:             types.ReferralOriginManualCode,
		Status:             types.ReferralStatusActive,
	})
	require.NoError(t, err)

	_, err = s.CreateReferral(ctx, &types.Referral{
		PartnerID:          p.ID,
		OrganizationID:     "org-2",
		PercentageSnapshot: decimal.NewFromInt(10),
		Origin:             types.ReferralOriginLink,
		Status:             types.ReferralStatusActive,
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = s.CreateReferral(ctx, &types.Referral{
		PartnerID:          "missing",
		OrganizationID:     "org-9",
		PercentageSnapshot: decimal.NewFromInt(10),
		Origin:             types.ReferralOriginLink,
		Status:             types.ReferralStatusActive,
	})
	assert.ErrorIs(t, err, ErrForeignKeyViolation)

	byOrg, err := s.GetReferralByOrganizationID(ctx, "org-3")
	require.NoError(t, err)
	assert.Equal(t, second.ID, byOrg.ID)
	assert.True(t, byOrg.PercentageSnapshot.Equal(decimal.RequireFromString("7.5")))

	all, err := s.ListReferrals(ctx, p.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := s.CountReferrals(ctx, p.ID, types.ReferralStatusActive, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = s.CountReferrals(ctx, p.ID, types.ReferralStatusActive, &start)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, s.SetReferralStatus(ctx, first.ID, types.ReferralStatusCancelled))

	active, err := s.ListReferrals(ctx, "", types.ReferralStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	assert.ErrorIs(t, s.SetReferralStatus(ctx, "missing", types.ReferralStatusInactive), ErrNotFound)

	_, err = s.GetReferralByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_Commissions(t *testing.T) {
	ctx := context.Background()
	s, _ := newSQLiteStorage(t)

	p := createPartner(t, s, "user-1", "org-1", "PRTAAAAAA")
	r, err := s.CreateReferral(ctx, &types.Referral{
		PartnerID:          p.ID,
		OrganizationID:     "org-2",
		PercentageSnapshot: decimal.NewFromInt(10),
		Origin:             types.ReferralOriginLink,
		Status:             types.ReferralStatusActive,
	})
	require.NoError(t, err)

	c := &types.Commission{
		PartnerID:         p.ID,
		ReferralID:        r.ID,
		PeriodMonth:       3,
		PeriodYear:        2025,
		SubscriptionValue: decimal.RequireFromString("500.00"),
		PercentageApplied: decimal.NewFromInt(10),
		CommissionValue:   decimal.RequireFromString("50.00"),
		Status:            types.CommissionStatusPending,
	}

	res, err := s.InsertCommission(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, InsertResultInserted, res)
	assert.NotEmpty(t, c.ID)

	dup := *c
	dup.ID = ""
	res, err = s.InsertCommission(ctx, &dup)
	require.NoError(t, err)
	assert.Equal(t, InsertResultAlreadyExists, res)
	assert.Empty(t, dup.ID)

	stored, err := s.GetCommissionByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "50.00", stored.CommissionValue.StringFixed(2))
	assert.Nil(t, stored.PaidAt)

	listed, err := s.ListCommissions(ctx, types.CommissionFilter{PartnerID: p.ID, Status: types.CommissionStatusPending}, 0, 10)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	listed, err = s.ListCommissions(ctx, types.CommissionFilter{PeriodMonth: 4}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, listed)

	notes := "duplicate"
	require.NoError(t, s.SettleCommission(ctx, c.ID, types.CommissionStatusCancelled, nil, &notes))

	assert.ErrorIs(t, s.SettleCommission(ctx, c.ID, types.CommissionStatusPaid, nil, nil), ErrNotFound)

	cancelled, err := s.GetCommissionByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, types.CommissionStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.Notes)
	assert.Equal(t, "duplicate", *cancelled.Notes)
}

func TestStorage_ProgramConfig(t *testing.T) {
	ctx := context.Background()
	s, _ := newSQLiteStorage(t)

	seeded, err := s.GetProgramConfig(ctx)
	require.NoError(t, err)
	assert.True(t, seeded.DefaultPercentage.Equal(decimal.NewFromInt(10)))
	assert.False(t, seeded.CourtesyRules.Enabled)

	seeded.DefaultPercentage = decimal.RequireFromString("15.25")
	seeded.BaseReferralURL = "https://example.com/signup"
	seeded.CourtesyRules = types.CourtesyRules{
		Enabled:             true,
		RenewalPeriodMonths: 12,
		RenewalReferralGoal: 5,
		GracePeriodDays:     30,
		Tiers:               []types.Tier{{Name: "Silver", ReferralGoal: 30}, {Name: "Gold", ReferralGoal: 40}},
	}

	saved, err := s.SaveProgramConfig(ctx, seeded)
	require.NoError(t, err)
	assert.True(t, saved.DefaultPercentage.Equal(decimal.RequireFromString("15.25")))
	assert.Equal(t, "https://example.com/signup", saved.BaseReferralURL)
	assert.Equal(t, seeded.CourtesyRules, saved.CourtesyRules)
}

func TestStorage_Directory(t *testing.T) {
	ctx := context.Background()
	s, dbClient := newSQLiteStorage(t)

	_, err := dbClient.DB().Exec(`INSERT INTO plans (id, name, monthly_price, annual_price) VALUES ('plan-1', 'Pro', '49.90', '499')`)
	require.NoError(t, err)

	_, err = dbClient.DB().Exec(`INSERT INTO subscriptions (id, organization_id, plan_id, status, billing_period, courtesy, created_at) VALUES
		('sub-old', 'org-2', 'plan-1', 'cancelled', 'monthly', 0, '2024-01-01 00:00:00'),
		('sub-new', 'org-2', 'plan-1', 'active', 'annual', 1, '2025-01-01 00:00:00')`)
	require.NoError(t, err)

	org, err := s.GetOrganization(ctx, "org-2")
	require.NoError(t, err)
	assert.Equal(t, "Two", org.Name)

	_, err = s.GetOrganization(ctx, "org-9")
	assert.ErrorIs(t, err, ErrNotFound)

	orgs, err := s.ListOrganizations(ctx)
	require.NoError(t, err)
	assert.Len(t, orgs, 3)

	sub, err := s.GetCurrentSubscription(ctx, "org-2", []types.SubscriptionStatus{types.SubscriptionStatusActive, types.SubscriptionStatusTrial})
	require.NoError(t, err)
	assert.Equal(t, "sub-new", sub.ID)
	assert.Equal(t, types.BillingPeriodAnnual, sub.BillingPeriod)
	assert.True(t, sub.Courtesy)

	_, err = s.GetCurrentSubscription(ctx, "org-3", []types.SubscriptionStatus{types.SubscriptionStatusActive})
	assert.ErrorIs(t, err, ErrNotFound)

	plan, err := s.GetPlan(ctx, "plan-1")
	require.NoError(t, err)
	assert.True(t, plan.MonthlyPrice.Equal(decimal.RequireFromString("49.90")))
	assert.True(t, plan.AnnualPrice.Equal(decimal.NewFromInt(499)))
}
