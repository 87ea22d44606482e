// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partner

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/canonical/partner-service/internal/types"
)

type ServiceInterface interface {
	CreatePartner(ctx context.Context, organizationID, userID string, percentageOverride *decimal.Decimal) (*types.Partner, error)
	UpdatePartner(ctx context.Context, id string, update PartnerUpdate) (*types.Partner, error)
	GetPartner(ctx context.Context, id string) (*types.Partner, error)
	GetPartnerByCode(ctx context.Context, code string) (*types.Partner, error)
	ListPartners(ctx context.Context, status types.PartnerStatus, offset, limit uint64) ([]*types.Partner, error)
	ListCandidates(ctx context.Context) ([]*types.Organization, error)
	GetContact(ctx context.Context, p *types.Partner) (*types.User, error)
	ReferralLink(ctx context.Context, p *types.Partner) (string, error)
}

type StorageInterface interface {
	CreatePartner(ctx context.Context, p *types.Partner) (*types.Partner, error)
	GetPartnerByID(ctx context.Context, id string) (*types.Partner, error)
	GetPartnerByOrganizationID(ctx context.Context, organizationID string) (*types.Partner, error)
	GetPartnerByUserID(ctx context.Context, userID string) (*types.Partner, error)
	GetPartnerByCode(ctx context.Context, code string) (*types.Partner, error)
	ListPartners(ctx context.Context, status types.PartnerStatus, offset, limit uint64) ([]*types.Partner, error)
	ListPartneredOrganizationIDs(ctx context.Context) ([]string, error)
	UpdatePartner(ctx context.Context, p *types.Partner) error
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)
	GetProgramConfig(ctx context.Context) (*types.ProgramConfig, error)
}

type UserDirectoryInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
}

type CodeGeneratorInterface interface {
	Generate(ctx context.Context) (string, error)
}
