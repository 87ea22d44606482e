// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"strings"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
)

type Service struct {
	referrals ReferralServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// HandleSignup attributes a freshly signed up organization to the partner
// owning the referral code. Signups without a code are accepted and
// return a nil referral.
func (s *Service) HandleSignup(ctx context.Context, event SignupEvent) (*types.Referral, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleSignup")
	defer span.End()

	orgID := strings.TrimSpace(event.OrganizationID)
	if orgID == "" {
		return nil, types.Validationf("organization id is required")
	}

	code := strings.TrimSpace(event.ReferralCode)
	if code == "" {
		s.logger.Debugf("signup of organization %s carries no referral code", orgID)
		return nil, nil
	}

	origin := event.Origin
	if origin == "" {
		origin = types.ReferralOriginLink
	}

	r, err := s.referrals.CreateReferralByCode(ctx, code, orgID, origin)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("organization %s attributed to partner %s through %s", orgID, r.PartnerID, origin)

	return r, nil
}

func NewService(referrals ReferralServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.referrals = referrals

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
