// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package commission

import (
	"github.com/shopspring/decimal"

	"github.com/canonical/partner-service/internal/types"
)

// CentsPlaces is the scale of every persisted monetary amount.
const CentsPlaces = 2

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MonthlyPrice is the plan price attributable to one month of the given
// billing period. Annual prices are spread evenly over twelve months.
func MonthlyPrice(plan *types.Plan, period types.BillingPeriod) decimal.Decimal {
	if period == types.BillingPeriodAnnual {
		return plan.AnnualPrice.Div(twelve)
	}
	return plan.MonthlyPrice
}

// CommissionValue applies percentage to the monthly price and rounds the
// result half away from zero to cents.
func CommissionValue(monthlyPrice, percentage decimal.Decimal) decimal.Decimal {
	return monthlyPrice.Mul(percentage).Div(hundred).Round(CentsPlaces)
}
