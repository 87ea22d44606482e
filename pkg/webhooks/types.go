// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import "github.com/canonical/partner-service/internal/types"

// SignupEvent is posted by the sign-up flow once an organization exists.
type SignupEvent struct {
	OrganizationID string               `json:"organization_id" validate:"required"`
	ReferralCode   string               `json:"referral_code"`
	Origin         types.ReferralOrigin `json:"origin" validate:"omitempty,oneof=link manual_code pre_registration"`
}
