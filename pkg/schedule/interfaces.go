// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedule

import (
	"context"

	"github.com/canonical/partner-service/pkg/commission"
)

// CommissionServiceInterface is the subset of the commission service the
// worker drives.
type CommissionServiceInterface interface {
	GenerateCommissions(ctx context.Context, month, year int, partnerID string) (*commission.Result, error)
}
