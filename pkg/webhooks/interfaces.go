// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/partner-service/internal/types"
)

// ReferralServiceInterface is the subset of the referral service the
// webhooks package needs.
type ReferralServiceInterface interface {
	CreateReferralByCode(ctx context.Context, code, organizationID string, origin types.ReferralOrigin) (*types.Referral, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleSignup(ctx context.Context, event SignupEvent) (*types.Referral, error)
}
