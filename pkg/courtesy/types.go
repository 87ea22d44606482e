// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package courtesy

import "time"

// Status describes the courtesy grant of a partner against the program rules.
// Renewal fields are only set when a grant exists and the rules define a
// renewal period.
type Status struct {
	PartnerID             string     `json:"partner_id"`
	Eligible              bool       `json:"eligible"`
	Applied               bool       `json:"applied"`
	AppliedAt             *time.Time `json:"applied_at"`
	ValidUntil            *time.Time `json:"valid_until"`
	Expired               bool       `json:"expired"`
	RenewalDueAt          *time.Time `json:"renewal_due_at"`
	GraceEndsAt           *time.Time `json:"grace_ends_at"`
	ReferralsSinceApplied int        `json:"referrals_since_applied"`
	RenewalReferralGoal   int        `json:"renewal_referral_goal"`
	RenewalGoalMet        bool       `json:"renewal_goal_met"`
}

type ApplyCourtesyRequest struct {
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}
