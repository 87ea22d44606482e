// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package commission

import (
	"context"
	"time"

	"github.com/canonical/partner-service/internal/storage"
	"github.com/canonical/partner-service/internal/types"
)

type ServiceInterface interface {
	GenerateCommissions(ctx context.Context, month, year int, partnerID string) (*Result, error)
	MarkCommissionPaid(ctx context.Context, id string) (*types.Commission, error)
	CancelCommission(ctx context.Context, id, notes string) (*types.Commission, error)
	ListCommissions(ctx context.Context, filter types.CommissionFilter, offset, limit uint64) ([]*types.Commission, error)
}

type StorageInterface interface {
	GetPartnerByID(ctx context.Context, id string) (*types.Partner, error)
	ListReferrals(ctx context.Context, partnerID string, status types.ReferralStatus) ([]*types.Referral, error)
	GetCurrentSubscription(ctx context.Context, organizationID string, statuses []types.SubscriptionStatus) (*types.Subscription, error)
	GetPlan(ctx context.Context, id string) (*types.Plan, error)
	InsertCommission(ctx context.Context, c *types.Commission) (storage.InsertResult, error)
	GetCommissionByID(ctx context.Context, id string) (*types.Commission, error)
	ListCommissions(ctx context.Context, filter types.CommissionFilter, offset, limit uint64) ([]*types.Commission, error)
	SettleCommission(ctx context.Context, id string, status types.CommissionStatus, paidAt *time.Time, notes *string) error
}
