// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/partner-service/internal/types"
)

// InsertResult is the outcome of an idempotent insert.
type InsertResult int

const (
	InsertResultError InsertResult = iota
	InsertResultInserted
	InsertResultAlreadyExists
)

func (r InsertResult) String() string {
	switch r {
	case InsertResultInserted:
		return "inserted"
	case InsertResultAlreadyExists:
		return "already_exists"
	default:
		return "error"
	}
}

type StorageInterface interface {
	CreatePartner(ctx context.Context, p *types.Partner) (*types.Partner, error)
	GetPartnerByID(ctx context.Context, id string) (*types.Partner, error)
	GetPartnerByOrganizationID(ctx context.Context, organizationID string) (*types.Partner, error)
	GetPartnerByUserID(ctx context.Context, userID string) (*types.Partner, error)
	GetPartnerByCode(ctx context.Context, code string) (*types.Partner, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
	ListPartners(ctx context.Context, status types.PartnerStatus, offset, limit uint64) ([]*types.Partner, error)
	ListPartneredOrganizationIDs(ctx context.Context) ([]string, error)
	UpdatePartner(ctx context.Context, p *types.Partner) error
	SetCourtesy(ctx context.Context, id string, appliedAt time.Time, validUntil *time.Time) error

	CreateReferral(ctx context.Context, r *types.Referral) (*types.Referral, error)
	GetReferralByID(ctx context.Context, id string) (*types.Referral, error)
	GetReferralByOrganizationID(ctx context.Context, organizationID string) (*types.Referral, error)
	ListReferrals(ctx context.Context, partnerID string, status types.ReferralStatus) ([]*types.Referral, error)
	CountReferrals(ctx context.Context, partnerID string, status types.ReferralStatus, since *time.Time) (int, error)
	SetReferralStatus(ctx context.Context, id string, status types.ReferralStatus) error

	InsertCommission(ctx context.Context, c *types.Commission) (InsertResult, error)
	GetCommissionByID(ctx context.Context, id string) (*types.Commission, error)
	ListCommissions(ctx context.Context, filter types.CommissionFilter, offset, limit uint64) ([]*types.Commission, error)
	SettleCommission(ctx context.Context, id string, status types.CommissionStatus, paidAt *time.Time, notes *string) error

	GetProgramConfig(ctx context.Context) (*types.ProgramConfig, error)
	SaveProgramConfig(ctx context.Context, cfg *types.ProgramConfig) (*types.ProgramConfig, error)

	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)
	GetCurrentSubscription(ctx context.Context, organizationID string, statuses []types.SubscriptionStatus) (*types.Subscription, error)
	GetPlan(ctx context.Context, id string) (*types.Plan, error)
}
