// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package program

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/storage"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
	"github.com/canonical/partner-service/pkg/authentication"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) GetConfig(ctx context.Context) (*types.ProgramConfig, error) {
	ctx, span := s.tracer.Start(ctx, "program.Service.GetConfig")
	defer span.End()

	cfg, err := s.storage.GetProgramConfig(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, types.NotFoundf("program configuration")
	}

	return cfg, err
}

// UpdateConfig replaces the program configuration. Existing referrals keep
// their percentage snapshot, only new referrals see a new default.
func (s *Service) UpdateConfig(ctx context.Context, cfg *types.ProgramConfig) (*types.ProgramConfig, error) {
	ctx, span := s.tracer.Start(ctx, "program.Service.UpdateConfig")
	defer span.End()

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	saved, err := s.storage.SaveProgramConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(authentication.Actor(ctx), "update", "program_config", saved.ID)

	return saved, nil
}

func validateConfig(cfg *types.ProgramConfig) error {
	if err := types.ValidatePercentage(cfg.DefaultPercentage); err != nil {
		return err
	}

	rules := cfg.CourtesyRules
	for _, f := range []struct {
		name  string
		value int
	}{
		{"initial_referral_goal", rules.InitialReferralGoal},
		{"renewal_period_months", rules.RenewalPeriodMonths},
		{"renewal_referral_goal", rules.RenewalReferralGoal},
		{"grace_period_days", rules.GracePeriodDays},
	} {
		if f.value < 0 {
			return types.Validationf("courtesy rule %s must not be negative, got %d", f.name, f.value)
		}
	}

	seen := make(map[string]bool, len(cfg.CourtesyRules.Tiers))
	for _, t := range cfg.CourtesyRules.Tiers {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return types.Validationf("tier name is required")
		}
		if t.ReferralGoal < 0 {
			return types.Validationf("tier %s has a negative referral goal", name)
		}
		if seen[name] {
			return types.Validationf("duplicate tier %s", name)
		}
		seen[name] = true
	}

	return nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
