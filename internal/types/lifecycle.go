// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	minPercentage = decimal.Zero
	maxPercentage = decimal.NewFromInt(100)
)

// ValidatePercentage rejects commission percentages outside [0,100].
func ValidatePercentage(p decimal.Decimal) error {
	if p.LessThan(minPercentage) || p.GreaterThan(maxPercentage) {
		return Validationf("percentage %s outside [0,100]", p.String())
	}
	return nil
}

// ResolvePercentage returns the commission percentage a new referral must
// snapshot: the partner override when set, the program default otherwise.
func ResolvePercentage(p *Partner, cfg *ProgramConfig) decimal.Decimal {
	if p != nil && p.PercentageOverride.Valid {
		return p.PercentageOverride.Decimal
	}
	return cfg.DefaultPercentage
}

func (s PartnerStatus) Valid() bool {
	switch s {
	case PartnerStatusActive, PartnerStatusSuspended, PartnerStatusInactive:
		return true
	}
	return false
}

// TransitionTo moves the partner to the target status, stamping or clearing
// the suspension fields. A transition to the current status is a no-op.
func (p *Partner) TransitionTo(target PartnerStatus, reason string, now time.Time) error {
	if !target.Valid() {
		return Validationf("unknown partner status %q", target)
	}

	if target == p.Status {
		return nil
	}

	switch target {
	case PartnerStatusSuspended:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return Validationf("suspension requires a reason")
		}
		p.SuspendedAt = &now
		p.SuspensionReason = &reason
	case PartnerStatusActive, PartnerStatusInactive:
		p.SuspendedAt = nil
		p.SuspensionReason = nil
	}

	p.Status = target
	return nil
}

func (s ReferralStatus) Valid() bool {
	switch s {
	case ReferralStatusActive, ReferralStatusInactive, ReferralStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a referral may move to the target status.
// Cancelled is terminal.
func (s ReferralStatus) CanTransitionTo(target ReferralStatus) bool {
	if !target.Valid() {
		return false
	}
	if s == ReferralStatusCancelled {
		return target == ReferralStatusCancelled
	}
	return true
}

// CanTransitionTo reports whether a commission may move to the target status.
// Only pending commissions can be settled.
func (s CommissionStatus) CanTransitionTo(target CommissionStatus) bool {
	return s == CommissionStatusPending &&
		(target == CommissionStatusPaid || target == CommissionStatusCancelled)
}
