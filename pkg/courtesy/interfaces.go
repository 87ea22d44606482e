// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package courtesy

import (
	"context"
	"time"

	"github.com/canonical/partner-service/internal/types"
	"github.com/canonical/partner-service/pkg/tier"
)

type ServiceInterface interface {
	ApplyCourtesy(ctx context.Context, partnerID string, validUntil *time.Time) (*types.Partner, error)
	GetCourtesyStatus(ctx context.Context, partnerID string) (*Status, error)
}

type StorageInterface interface {
	GetPartnerByID(ctx context.Context, id string) (*types.Partner, error)
	GetProgramConfig(ctx context.Context) (*types.ProgramConfig, error)
	CountReferrals(ctx context.Context, partnerID string, status types.ReferralStatus, since *time.Time) (int, error)
	SetCourtesy(ctx context.Context, id string, appliedAt time.Time, validUntil *time.Time) error
}

type TierServiceInterface interface {
	GetTierStatus(ctx context.Context, partnerID string) (*tier.Status, error)
}
