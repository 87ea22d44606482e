// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package referral

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/storage"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
)

type Service struct {
	storage StorageInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) CreateReferral(ctx context.Context, partnerID, organizationID string, origin types.ReferralOrigin) (*types.Referral, error) {
	ctx, span := s.tracer.Start(ctx, "referral.Service.CreateReferral")
	defer span.End()

	if !origin.Valid() {
		return nil, types.Validationf("unknown referral origin %q", origin)
	}

	p, err := s.storage.GetPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("partner %s", partnerID)
		}
		return nil, err
	}

	return s.create(ctx, p, organizationID, origin)
}

// CreateReferralByCode attributes an organization to the partner owning code.
func (s *Service) CreateReferralByCode(ctx context.Context, code, organizationID string, origin types.ReferralOrigin) (*types.Referral, error) {
	ctx, span := s.tracer.Start(ctx, "referral.Service.CreateReferralByCode")
	defer span.End()

	if !origin.Valid() {
		return nil, types.Validationf("unknown referral origin %q", origin)
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, types.Validationf("referral code is required")
	}

	p, err := s.storage.GetPartnerByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("referral code %s", code)
		}
		return nil, err
	}

	return s.create(ctx, p, organizationID, origin)
}

func (s *Service) create(ctx context.Context, p *types.Partner, organizationID string, origin types.ReferralOrigin) (*types.Referral, error) {
	if p.Status != types.PartnerStatusActive {
		return nil, types.PreconditionFailedf("partner %s is %s", p.ID, p.Status)
	}

	if organizationID == "" {
		return nil, types.Validationf("organization_id is required")
	}

	if organizationID == p.OrganizationID {
		return nil, types.Validationf("a partner cannot refer its own organization")
	}

	if _, err := s.storage.GetOrganization(ctx, organizationID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.Validationf("organization %s does not exist", organizationID)
		}
		return nil, err
	}

	existing, err := s.storage.GetReferralByOrganizationID(ctx, organizationID)
	switch {
	case err == nil:
		return nil, types.Conflictf("organization %s already referred by partner %s", organizationID, existing.PartnerID)
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}

	cfg, err := s.storage.GetProgramConfig(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("program configuration")
		}
		return nil, err
	}

	r, err := s.storage.CreateReferral(ctx, &types.Referral{
		PartnerID:          p.ID,
		OrganizationID:     organizationID,
		PercentageSnapshot: types.ResolvePercentage(p, cfg),
		Origin:             origin,
		Status:             types.ReferralStatusActive,
		CreatedAt:          s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, types.Conflictf("organization %s already referred", organizationID)
		}
		return nil, err
	}

	s.logger.Infof("partner %s referred organization %s via %s at %s%%", p.ID, organizationID, origin, r.PercentageSnapshot)

	return r, nil
}

func (s *Service) ListActiveReferrals(ctx context.Context, partnerID string) ([]*types.Referral, error) {
	ctx, span := s.tracer.Start(ctx, "referral.Service.ListActiveReferrals")
	defer span.End()

	return s.storage.ListReferrals(ctx, partnerID, types.ReferralStatusActive)
}

func (s *Service) ListReferrals(ctx context.Context, partnerID string) ([]*types.Referral, error) {
	ctx, span := s.tracer.Start(ctx, "referral.Service.ListReferrals")
	defer span.End()

	if _, err := s.storage.GetPartnerByID(ctx, partnerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("partner %s", partnerID)
		}
		return nil, err
	}

	return s.storage.ListReferrals(ctx, partnerID, "")
}

// SetReferralStatus moves a referral between active and inactive or cancels
// it. Cancelled referrals stay cancelled.
func (s *Service) SetReferralStatus(ctx context.Context, id string, status types.ReferralStatus) (*types.Referral, error) {
	ctx, span := s.tracer.Start(ctx, "referral.Service.SetReferralStatus")
	defer span.End()

	if !status.Valid() {
		return nil, types.Validationf("unknown referral status %q", status)
	}

	r, err := s.storage.GetReferralByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("referral %s", id)
		}
		return nil, err
	}

	if r.Status == status {
		return r, nil
	}

	if !r.Status.CanTransitionTo(status) {
		return nil, types.PreconditionFailedf("referral %s is %s", id, r.Status)
	}

	if err := s.storage.SetReferralStatus(ctx, id, status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("referral %s", id)
		}
		return nil, err
	}

	r.Status = status

	return r, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
