// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type PartnerStatus string

const (
	PartnerStatusActive    PartnerStatus = "active"
	PartnerStatusSuspended PartnerStatus = "suspended"
	PartnerStatusInactive  PartnerStatus = "inactive"
)

type Partner struct {
	ID                 string              `db:"id" json:"id"`
	UserID             string              `db:"user_id" json:"user_id"`
	OrganizationID     string              `db:"organization_id" json:"organization_id"`
	ReferralCode       string              `db:"referral_code" json:"referral_code"`
	Status             PartnerStatus       `db:"status" json:"status"`
	PercentageOverride decimal.NullDecimal `db:"percentage_override" json:"percentage_override"`
	TierOverride       *string             `db:"tier_override" json:"tier_override"`
	JoinedAt           time.Time           `db:"joined_at" json:"joined_at"`
	SuspendedAt        *time.Time          `db:"suspended_at" json:"suspended_at"`
	SuspensionReason   *string             `db:"suspension_reason" json:"suspension_reason"`
	CourtesyAppliedAt  *time.Time          `db:"courtesy_applied_at" json:"courtesy_applied_at"`
	CourtesyValidUntil *time.Time          `db:"courtesy_valid_until" json:"courtesy_valid_until"`
}

type ReferralOrigin string

const (
	ReferralOriginLink            ReferralOrigin = "link"
	ReferralOriginManualCode      ReferralOrigin = "manual_code"
	ReferralOriginPreRegistration ReferralOrigin = "pre_registration"
)

func (o ReferralOrigin) Valid() bool {
	switch o {
	case ReferralOriginLink, ReferralOriginManualCode, ReferralOriginPreRegistration:
		return true
	}
	return false
}

type ReferralStatus string

const (
	ReferralStatusActive    ReferralStatus = "active"
	ReferralStatusInactive  ReferralStatus = "inactive"
	ReferralStatusCancelled ReferralStatus = "cancelled"
)

type Referral struct {
	ID                 string          `db:"id" json:"id"`
	PartnerID          string          `db:"partner_id" json:"partner_id"`
	OrganizationID     string          `db:"organization_id" json:"organization_id"`
	PercentageSnapshot decimal.Decimal `db:"percentage_snapshot" json:"percentage_snapshot"`
	Origin             ReferralOrigin  `db:"origin" json:"origin"`
	Status             ReferralStatus  `db:"status" json:"status"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
}

type CommissionStatus string

const (
	CommissionStatusPending   CommissionStatus = "pending"
	CommissionStatusPaid      CommissionStatus = "paid"
	CommissionStatusCancelled CommissionStatus = "cancelled"
)

type Commission struct {
	ID                string           `db:"id" json:"id"`
	PartnerID         string           `db:"partner_id" json:"partner_id"`
	ReferralID        string           `db:"referral_id" json:"referral_id"`
	PeriodMonth       int              `db:"period_month" json:"period_month"`
	PeriodYear        int              `db:"period_year" json:"period_year"`
	SubscriptionValue decimal.Decimal  `db:"subscription_value" json:"subscription_value"`
	PercentageApplied decimal.Decimal  `db:"percentage_applied" json:"percentage_applied"`
	CommissionValue   decimal.Decimal  `db:"commission_value" json:"commission_value"`
	Status            CommissionStatus `db:"status" json:"status"`
	PaidAt            *time.Time       `db:"paid_at" json:"paid_at"`
	Notes             *string          `db:"notes" json:"notes"`
	CreatedAt         time.Time        `db:"created_at" json:"created_at"`
}

// CommissionFilter narrows ListCommissions, zero values are ignored.
type CommissionFilter struct {
	PartnerID   string
	PeriodMonth int
	PeriodYear  int
	Status      CommissionStatus
}

type Tier struct {
	Name         string `json:"name" validate:"required"`
	ReferralGoal int    `json:"referral_goal" validate:"gte=0"`
}

type CourtesyRules struct {
	Enabled             bool   `json:"enabled"`
	InitialReferralGoal int    `json:"initial_referral_goal" validate:"gte=0"`
	RenewalPeriodMonths int    `json:"renewal_period_months" validate:"gte=0"`
	RenewalReferralGoal int    `json:"renewal_referral_goal" validate:"gte=0"`
	GracePeriodDays     int    `json:"grace_period_days" validate:"gte=0"`
	Tiers               []Tier `json:"tiers" validate:"dive"`
}

type ProgramConfig struct {
	ID                string          `db:"id" json:"id"`
	DefaultPercentage decimal.Decimal `db:"default_percentage" json:"default_percentage"`
	CourtesyRules     CourtesyRules   `db:"courtesy_rules" json:"courtesy_rules"`
	BaseReferralURL   string          `db:"base_referral_url" json:"base_referral_url"`
	Notes             string          `db:"notes" json:"notes"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// Organization, Subscription, Plan and User are owned by other parts of the
// back office and are only ever read here.

type Organization struct {
	ID     string `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Status string `db:"status" json:"status"`
}

type BillingPeriod string

const (
	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodAnnual  BillingPeriod = "annual"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusTrial     SubscriptionStatus = "trial"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

type Subscription struct {
	ID             string             `db:"id" json:"id"`
	OrganizationID string             `db:"organization_id" json:"organization_id"`
	PlanID         string             `db:"plan_id" json:"plan_id"`
	Status         SubscriptionStatus `db:"status" json:"status"`
	BillingPeriod  BillingPeriod      `db:"billing_period" json:"billing_period"`
	Courtesy       bool               `db:"courtesy" json:"courtesy"`
}

type Plan struct {
	ID           string          `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	MonthlyPrice decimal.Decimal `db:"monthly_price" json:"monthly_price"`
	AnnualPrice  decimal.Decimal `db:"annual_price" json:"annual_price"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
