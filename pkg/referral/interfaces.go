// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package referral

import (
	"context"

	"github.com/canonical/partner-service/internal/types"
)

type ServiceInterface interface {
	CreateReferral(ctx context.Context, partnerID, organizationID string, origin types.ReferralOrigin) (*types.Referral, error)
	CreateReferralByCode(ctx context.Context, code, organizationID string, origin types.ReferralOrigin) (*types.Referral, error)
	ListActiveReferrals(ctx context.Context, partnerID string) ([]*types.Referral, error)
	ListReferrals(ctx context.Context, partnerID string) ([]*types.Referral, error)
	SetReferralStatus(ctx context.Context, id string, status types.ReferralStatus) (*types.Referral, error)
}

type StorageInterface interface {
	GetPartnerByID(ctx context.Context, id string) (*types.Partner, error)
	GetPartnerByCode(ctx context.Context, code string) (*types.Partner, error)
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	GetProgramConfig(ctx context.Context) (*types.ProgramConfig, error)
	CreateReferral(ctx context.Context, r *types.Referral) (*types.Referral, error)
	GetReferralByID(ctx context.Context, id string) (*types.Referral, error)
	GetReferralByOrganizationID(ctx context.Context, organizationID string) (*types.Referral, error)
	ListReferrals(ctx context.Context, partnerID string, status types.ReferralStatus) ([]*types.Referral, error)
	SetReferralStatus(ctx context.Context, id string, status types.ReferralStatus) error
}
