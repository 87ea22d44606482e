// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package referral

type CreateReferralRequest struct {
	OrganizationID string `json:"organization_id" validate:"required"`
	Origin         string `json:"origin" validate:"omitempty,oneof=link manual_code pre_registration"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive cancelled"`
}
