// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tier

import (
	"context"
	"errors"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/storage"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// GetTierStatus computes the tier progression from the live count of active
// referrals. Nothing is cached.
func (s *Service) GetTierStatus(ctx context.Context, partnerID string) (*Status, error) {
	ctx, span := s.tracer.Start(ctx, "tier.Service.GetTierStatus")
	defer span.End()

	p, err := s.storage.GetPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("partner %s", partnerID)
		}
		return nil, err
	}

	cfg, err := s.storage.GetProgramConfig(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("program configuration")
		}
		return nil, err
	}

	count, err := s.storage.CountReferrals(ctx, p.ID, types.ReferralStatusActive, nil)
	if err != nil {
		return nil, err
	}

	status := Calculate(Input{
		Enabled:       cfg.CourtesyRules.Enabled,
		ReferralCount: count,
		Tiers:         cfg.CourtesyRules.Tiers,
		Override:      p.TierOverride,
	})

	if p.TierOverride != nil && !status.Overridden && status.State == StateActive {
		s.logger.Warnf("partner %s overrides unknown tier %q, using computed tier", p.ID, *p.TierOverride)
	}

	return &status, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
