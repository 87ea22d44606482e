// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package referralcode

import "context"

type GeneratorInterface interface {
	Generate(ctx context.Context) (string, error)
}

type StorageInterface interface {
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
}
