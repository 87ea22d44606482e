// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partner

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/storage"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
	"github.com/canonical/partner-service/pkg/authentication"
)

type Service struct {
	storage StorageInterface
	users   UserDirectoryInterface
	codes   CodeGeneratorInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) CreatePartner(ctx context.Context, organizationID, userID string, percentageOverride *decimal.Decimal) (*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "partner.Service.CreatePartner")
	defer span.End()

	if organizationID == "" || userID == "" {
		return nil, types.Validationf("organization_id and user_id are required")
	}

	override := decimal.NullDecimal{}
	if percentageOverride != nil {
		if err := types.ValidatePercentage(*percentageOverride); err != nil {
			return nil, err
		}
		override = decimal.NewNullDecimal(*percentageOverride)
	}

	if _, err := s.storage.GetOrganization(ctx, organizationID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.Validationf("organization %s does not exist", organizationID)
		}
		return nil, err
	}

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, types.Validationf("user %s does not exist", userID)
		}
		return nil, err
	}

	if err := s.ensureAbsent(s.storage.GetPartnerByOrganizationID(ctx, organizationID)); err != nil {
		return nil, s.conflictOr(err, "organization already has a partner")
	}

	if err := s.ensureAbsent(s.storage.GetPartnerByUserID(ctx, userID)); err != nil {
		return nil, s.conflictOr(err, "user already a partner")
	}

	code, err := s.codes.Generate(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.storage.CreatePartner(ctx, &types.Partner{
		UserID:             userID,
		OrganizationID:     organizationID,
		ReferralCode:       code,
		Status:             types.PartnerStatusActive,
		PercentageOverride: override,
		JoinedAt:           s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, types.Conflictf("partner already exists: %v", err)
		}
		return nil, err
	}

	s.logger.Security().AdminAction(authentication.Actor(ctx), "create", "partner", p.ID)

	return p, nil
}

var errPartnerExists = errors.New("partner exists")

// ensureAbsent turns the result of a partner lookup into errPartnerExists when
// a partner was found, nil when it was not.
func (s *Service) ensureAbsent(_ *types.Partner, err error) error {
	if err == nil {
		return errPartnerExists
	}
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

func (s *Service) conflictOr(err error, message string) error {
	if errors.Is(err, errPartnerExists) {
		return types.Conflictf("%s", message)
	}
	return err
}

func (s *Service) UpdatePartner(ctx context.Context, id string, update PartnerUpdate) (*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "partner.Service.UpdatePartner")
	defer span.End()

	if update.ClearPercentageOverride && update.PercentageOverride != nil {
		return nil, types.Validationf("percentage_override cannot be set and cleared at once")
	}

	if update.ClearTierOverride && update.TierOverride != nil {
		return nil, types.Validationf("tier_override cannot be set and cleared at once")
	}

	p, err := s.GetPartner(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := p.Status
	now := s.now().UTC()

	switch {
	case update.Status != nil && *update.Status != p.Status:
		reason := ""
		if update.SuspensionReason != nil {
			reason = *update.SuspensionReason
		}
		if err := p.TransitionTo(*update.Status, reason, now); err != nil {
			return nil, err
		}
	case update.SuspensionReason != nil:
		reason := strings.TrimSpace(*update.SuspensionReason)
		if p.Status != types.PartnerStatusSuspended {
			return nil, types.Validationf("suspension reason only applies to suspended partners")
		}
		if reason == "" {
			return nil, types.Validationf("suspension requires a reason")
		}
		p.SuspensionReason = &reason
	}

	switch {
	case update.ClearPercentageOverride:
		p.PercentageOverride = decimal.NullDecimal{}
	case update.PercentageOverride != nil:
		if err := types.ValidatePercentage(*update.PercentageOverride); err != nil {
			return nil, err
		}
		p.PercentageOverride = decimal.NewNullDecimal(*update.PercentageOverride)
	}

	switch {
	case update.ClearTierOverride:
		p.TierOverride = nil
	case update.TierOverride != nil:
		tier, err := s.knownTier(ctx, *update.TierOverride)
		if err != nil {
			return nil, err
		}
		p.TierOverride = &tier
	}

	if err := s.storage.UpdatePartner(ctx, p); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("partner %s", id)
		}
		return nil, err
	}

	if previous != p.Status {
		s.logger.Security().AdminAction(authentication.Actor(ctx), string(p.Status), "partner", p.ID)
	}

	return p, nil
}

func (s *Service) knownTier(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", types.Validationf("tier_override cannot be empty")
	}

	cfg, err := s.programConfig(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range cfg.CourtesyRules.Tiers {
		if t.Name == name {
			return name, nil
		}
	}

	return "", types.Validationf("unknown tier %s", name)
}

func (s *Service) GetPartner(ctx context.Context, id string) (*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "partner.Service.GetPartner")
	defer span.End()

	p, err := s.storage.GetPartnerByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, types.NotFoundf("partner %s", id)
	}

	return p, err
}

func (s *Service) GetPartnerByCode(ctx context.Context, code string) (*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "partner.Service.GetPartnerByCode")
	defer span.End()

	p, err := s.storage.GetPartnerByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, types.NotFoundf("referral code %s", code)
	}

	return p, err
}

func (s *Service) ListPartners(ctx context.Context, status types.PartnerStatus, offset, limit uint64) ([]*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "partner.Service.ListPartners")
	defer span.End()

	if status != "" && !status.Valid() {
		return nil, types.Validationf("unknown partner status %q", status)
	}

	return s.storage.ListPartners(ctx, status, offset, limit)
}

// ListCandidates returns the organizations that could still become partners.
func (s *Service) ListCandidates(ctx context.Context) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "partner.Service.ListCandidates")
	defer span.End()

	orgs, err := s.storage.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	partnered, err := s.storage.ListPartneredOrganizationIDs(ctx)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(partnered))
	for _, id := range partnered {
		taken[id] = struct{}{}
	}

	candidates := make([]*types.Organization, 0, len(orgs))
	for _, o := range orgs {
		if _, ok := taken[o.ID]; !ok {
			candidates = append(candidates, o)
		}
	}

	return candidates, nil
}

func (s *Service) GetContact(ctx context.Context, p *types.Partner) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "partner.Service.GetContact")
	defer span.End()

	return s.users.GetUser(ctx, p.UserID)
}

// ReferralLink builds the signup link carrying the partner code as the ref
// query parameter. It is empty when no base URL is configured.
func (s *Service) ReferralLink(ctx context.Context, p *types.Partner) (string, error) {
	ctx, span := s.tracer.Start(ctx, "partner.Service.ReferralLink")
	defer span.End()

	cfg, err := s.programConfig(ctx)
	if err != nil {
		return "", err
	}

	if cfg.BaseReferralURL == "" {
		return "", nil
	}

	u, err := url.Parse(cfg.BaseReferralURL)
	if err != nil {
		return "", fmt.Errorf("invalid base referral url: %w", err)
	}

	q := u.Query()
	q.Set("ref", p.ReferralCode)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (s *Service) programConfig(ctx context.Context) (*types.ProgramConfig, error) {
	cfg, err := s.storage.GetProgramConfig(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, types.NotFoundf("program configuration")
	}
	return cfg, err
}

func NewService(
	storage StorageInterface,
	users UserDirectoryInterface,
	codes CodeGeneratorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.users = users
	s.codes = codes
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
