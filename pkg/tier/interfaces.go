// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tier

import (
	"context"
	"time"

	"github.com/canonical/partner-service/internal/types"
)

type ServiceInterface interface {
	GetTierStatus(ctx context.Context, partnerID string) (*Status, error)
}

type StorageInterface interface {
	GetPartnerByID(ctx context.Context, id string) (*types.Partner, error)
	GetProgramConfig(ctx context.Context) (*types.ProgramConfig, error)
	CountReferrals(ctx context.Context, partnerID string, status types.ReferralStatus, since *time.Time) (int, error)
}
