// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package courtesy

import (
	"context"
	"errors"
	"time"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/storage"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
	"github.com/canonical/partner-service/pkg/authentication"
)

type Service struct {
	storage StorageInterface
	tiers   TierServiceInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// ApplyCourtesy records a courtesy grant for a partner whose tier goal is met.
// A nil validUntil grants it indefinitely. Billing is not touched here.
func (s *Service) ApplyCourtesy(ctx context.Context, partnerID string, validUntil *time.Time) (*types.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "courtesy.Service.ApplyCourtesy")
	defer span.End()

	now := s.now().UTC()

	if validUntil != nil {
		if !validUntil.After(now) {
			return nil, types.Validationf("valid_until must be in the future")
		}
		v := validUntil.UTC()
		validUntil = &v
	}

	status, err := s.tiers.GetTierStatus(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if !status.GoalMet {
		return nil, types.PreconditionFailedf("partner %s has not met a tier goal", partnerID)
	}

	if err := s.storage.SetCourtesy(ctx, partnerID, now, validUntil); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("partner %s", partnerID)
		}
		return nil, err
	}

	s.logger.Security().AdminAction(authentication.Actor(ctx), "apply_courtesy", "partner", partnerID)

	return s.getPartner(ctx, partnerID)
}

func (s *Service) GetCourtesyStatus(ctx context.Context, partnerID string) (*Status, error) {
	ctx, span := s.tracer.Start(ctx, "courtesy.Service.GetCourtesyStatus")
	defer span.End()

	p, err := s.getPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.storage.GetProgramConfig(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("program configuration")
		}
		return nil, err
	}

	tierStatus, err := s.tiers.GetTierStatus(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	rules := cfg.CourtesyRules
	now := s.now().UTC()

	status := &Status{
		PartnerID:           p.ID,
		Eligible:            tierStatus.GoalMet,
		Applied:             p.CourtesyAppliedAt != nil,
		AppliedAt:           p.CourtesyAppliedAt,
		ValidUntil:          p.CourtesyValidUntil,
		Expired:             p.CourtesyValidUntil != nil && !p.CourtesyValidUntil.After(now),
		RenewalReferralGoal: rules.RenewalReferralGoal,
	}

	if !status.Applied {
		return status, nil
	}

	count, err := s.storage.CountReferrals(ctx, p.ID, types.ReferralStatusActive, p.CourtesyAppliedAt)
	if err != nil {
		return nil, err
	}

	status.ReferralsSinceApplied = count
	status.RenewalGoalMet = count >= rules.RenewalReferralGoal

	if rules.RenewalPeriodMonths > 0 {
		due := p.CourtesyAppliedAt.AddDate(0, rules.RenewalPeriodMonths, 0)
		grace := due.AddDate(0, 0, rules.GracePeriodDays)
		status.RenewalDueAt = &due
		status.GraceEndsAt = &grace
	}

	return status, nil
}

func (s *Service) getPartner(ctx context.Context, id string) (*types.Partner, error) {
	p, err := s.storage.GetPartnerByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, types.NotFoundf("partner %s", id)
	}
	return p, err
}

func NewService(
	storage StorageInterface,
	tiers TierServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tiers = tiers
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
