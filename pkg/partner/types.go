// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partner

import (
	"github.com/shopspring/decimal"

	"github.com/canonical/partner-service/internal/types"
)

// PartnerUpdate carries the optional changes of UpdatePartner. Nil fields are
// left untouched, the Clear flags reset an override to the program default.
type PartnerUpdate struct {
	Status                  *types.PartnerStatus
	SuspensionReason        *string
	PercentageOverride      *decimal.Decimal
	ClearPercentageOverride bool
	TierOverride            *string
	ClearTierOverride       bool
}

type CreatePartnerRequest struct {
	OrganizationID     string           `json:"organization_id" validate:"required"`
	UserID             string           `json:"user_id" validate:"required"`
	PercentageOverride *decimal.Decimal `json:"percentage_override,omitempty"`
}

type UpdatePartnerRequest struct {
	Status                  *string          `json:"status,omitempty" validate:"omitempty,oneof=active suspended inactive"`
	SuspensionReason        *string          `json:"suspension_reason,omitempty"`
	PercentageOverride      *decimal.Decimal `json:"percentage_override,omitempty"`
	ClearPercentageOverride bool             `json:"clear_percentage_override"`
	TierOverride            *string          `json:"tier_override,omitempty"`
	ClearTierOverride       bool             `json:"clear_tier_override"`
}

// PartnerView is the partner as shown to operators.
type PartnerView struct {
	*types.Partner
	ReferralLink string      `json:"referral_link"`
	Contact      *types.User `json:"contact,omitempty"`
}
