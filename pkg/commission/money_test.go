// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/canonical/partner-service/internal/types"
)

func TestMonthlyPrice(t *testing.T) {
	plan := &types.Plan{
		ID:           "plan-1",
		MonthlyPrice: decimal.RequireFromString("500"),
		AnnualPrice:  decimal.RequireFromString("1000"),
	}

	assert.True(t, MonthlyPrice(plan, types.BillingPeriodMonthly).Equal(decimal.RequireFromString("500")))
	assert.Equal(t, "83.33", MonthlyPrice(plan, types.BillingPeriodAnnual).Round(CentsPlaces).StringFixed(CentsPlaces))
}

func TestCommissionValue(t *testing.T) {
	tests := []struct {
		name       string
		price      string
		percentage string
		expected   string
	}{
		{name: "whole amount", price: "500", percentage: "10", expected: "50.00"},
		{name: "fractional percentage", price: "199.90", percentage: "12.5", expected: "24.99"},
		{name: "half rounds up", price: "0.05", percentage: "10", expected: "0.01"},
		{name: "below half rounds down", price: "0.04", percentage: "10", expected: "0.00"},
		{name: "zero percentage", price: "500", percentage: "0", expected: "0.00"},
		{name: "full percentage", price: "42.42", percentage: "100", expected: "42.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommissionValue(decimal.RequireFromString(tt.price), decimal.RequireFromString(tt.percentage))
			assert.Equal(t, tt.expected, got.StringFixed(CentsPlaces))
		})
	}
}

func TestCommissionValue_AnnualPlan(t *testing.T) {
	plan := &types.Plan{ID: "plan-1", AnnualPrice: decimal.RequireFromString("1000")}

	got := CommissionValue(MonthlyPrice(plan, types.BillingPeriodAnnual), decimal.RequireFromString("10"))

	assert.Equal(t, "8.33", got.StringFixed(CentsPlaces))
}
