// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package program

import (
	"context"

	"github.com/canonical/partner-service/internal/types"
)

type ServiceInterface interface {
	GetConfig(ctx context.Context) (*types.ProgramConfig, error)
	UpdateConfig(ctx context.Context, cfg *types.ProgramConfig) (*types.ProgramConfig, error)
}

type StorageInterface interface {
	GetProgramConfig(ctx context.Context) (*types.ProgramConfig, error)
	SaveProgramConfig(ctx context.Context, cfg *types.ProgramConfig) (*types.ProgramConfig, error)
}
