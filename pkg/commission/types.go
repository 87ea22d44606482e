// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package commission

import "fmt"

// Result is the tally of one generation run. Ignored counts referrals
// without a billable subscription as well as already generated periods.
type Result struct {
	Generated int `json:"generated"`
	Ignored   int `json:"ignored"`
}

func (r Result) String() string {
	return fmt.Sprintf("%d generated, %d already existed or not billable", r.Generated, r.Ignored)
}

type GenerateRequest struct {
	Month     int    `json:"month" validate:"required,min=1,max=12"`
	Year      int    `json:"year" validate:"required,gte=2000"`
	PartnerID string `json:"partner_id,omitempty"`
}

type CancelRequest struct {
	Notes string `json:"notes"`
}

const (
	outcomeGenerated      = "generated"
	outcomeAlreadyExists  = "already_exists"
	outcomeNoSubscription = "no_subscription"
	outcomeCourtesy       = "courtesy"
	outcomeError          = "error"
)
