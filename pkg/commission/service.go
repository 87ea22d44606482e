// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package commission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/storage"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
	"github.com/canonical/partner-service/pkg/authentication"
)

const minPeriodYear = 2000

// billableStatuses are the subscription statuses that earn a commission.
var billableStatuses = []types.SubscriptionStatus{
	types.SubscriptionStatusActive,
	types.SubscriptionStatusTrial,
}

type Service struct {
	storage StorageInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// GenerateCommissions creates the pending commissions of a period for every
// active referral, optionally restricted to one partner. Re-running a period
// only counts the existing rows as ignored.
//
// Referrals are processed one at a time and each insert stands on its own:
// when a storage error aborts the run, rows written so far are kept and the
// partial tally is returned along with the error.
func (s *Service) GenerateCommissions(ctx context.Context, month, year int, partnerID string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "commission.Service.GenerateCommissions")
	defer span.End()

	result := new(Result)

	if month < 1 || month > 12 {
		return result, types.Validationf("period month %d outside [1,12]", month)
	}

	if year < minPeriodYear {
		return result, types.Validationf("period year %d before %d", year, minPeriodYear)
	}

	if partnerID != "" {
		if _, err := s.storage.GetPartnerByID(ctx, partnerID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return result, types.NotFoundf("partner %s", partnerID)
			}
			return result, err
		}
	}

	referrals, err := s.storage.ListReferrals(ctx, partnerID, types.ReferralStatusActive)
	if err != nil {
		return result, fmt.Errorf("%w: %w", types.ErrFatalStorage, err)
	}

	now := s.now().UTC()

	for _, r := range referrals {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("commission generation interrupted: %w", err)
		}

		outcome, err := s.generateOne(ctx, r, month, year, now)
		s.countOutcome(outcome)

		if err != nil {
			s.logger.Errorf("commission generation for %02d/%d aborted at referral %s: %v", month, year, r.ID, err)
			return result, fmt.Errorf("%w: referral %s: %w", types.ErrFatalStorage, r.ID, err)
		}

		switch outcome {
		case outcomeGenerated:
			result.Generated++
		default:
			result.Ignored++
		}
	}

	s.logger.Infof("commission generation for %02d/%d: %s", month, year, result)
	s.logger.Security().AdminAction(
		authentication.Actor(ctx),
		"generate_commissions",
		"commissions",
		fmt.Sprintf("%d-%02d", year, month),
	)

	return result, nil
}

func (s *Service) generateOne(ctx context.Context, r *types.Referral, month, year int, now time.Time) (string, error) {
	sub, err := s.storage.GetCurrentSubscription(ctx, r.OrganizationID, billableStatuses)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return outcomeNoSubscription, nil
		}
		return outcomeError, err
	}

	if sub.Courtesy {
		return outcomeCourtesy, nil
	}

	plan, err := s.storage.GetPlan(ctx, sub.PlanID)
	if err != nil {
		return outcomeError, fmt.Errorf("plan %s of subscription %s: %w", sub.PlanID, sub.ID, err)
	}

	price := MonthlyPrice(plan, sub.BillingPeriod)

	res, err := s.storage.InsertCommission(ctx, &types.Commission{
		PartnerID:         r.PartnerID,
		ReferralID:        r.ID,
		PeriodMonth:       month,
		PeriodYear:        year,
		SubscriptionValue: price.Round(CentsPlaces),
		PercentageApplied: r.PercentageSnapshot,
		CommissionValue:   CommissionValue(price, r.PercentageSnapshot),
		Status:            types.CommissionStatusPending,
		CreatedAt:         now,
	})

	switch {
	case err != nil:
		return outcomeError, err
	case res == storage.InsertResultInserted:
		return outcomeGenerated, nil
	case res == storage.InsertResultAlreadyExists:
		return outcomeAlreadyExists, nil
	default:
		return outcomeError, fmt.Errorf("unexpected insert result %s", res)
	}
}

func (s *Service) countOutcome(outcome string) {
	if err := s.monitor.IncCommissionOutcome(map[string]string{"outcome": outcome}, 1); err != nil {
		s.logger.Debugf("failed to count commission outcome: %v", err)
	}
}

// MarkCommissionPaid settles a pending commission as paid.
func (s *Service) MarkCommissionPaid(ctx context.Context, id string) (*types.Commission, error) {
	ctx, span := s.tracer.Start(ctx, "commission.Service.MarkCommissionPaid")
	defer span.End()

	paidAt := s.now().UTC()

	c, err := s.settle(ctx, id, types.CommissionStatusPaid, &paidAt, nil)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(authentication.Actor(ctx), "pay", "commission", id)

	return c, nil
}

// CancelCommission settles a pending commission as cancelled, keeping notes
// when given.
func (s *Service) CancelCommission(ctx context.Context, id, notes string) (*types.Commission, error) {
	ctx, span := s.tracer.Start(ctx, "commission.Service.CancelCommission")
	defer span.End()

	var n *string
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		n = &trimmed
	}

	c, err := s.settle(ctx, id, types.CommissionStatusCancelled, nil, n)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(authentication.Actor(ctx), "cancel", "commission", id)

	return c, nil
}

func (s *Service) settle(ctx context.Context, id string, status types.CommissionStatus, paidAt *time.Time, notes *string) (*types.Commission, error) {
	c, err := s.storage.GetCommissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NotFoundf("commission %s", id)
		}
		return nil, err
	}

	if !c.Status.CanTransitionTo(status) {
		return nil, types.PreconditionFailedf("commission %s is %s", id, c.Status)
	}

	if err := s.storage.SettleCommission(ctx, id, status, paidAt, notes); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.PreconditionFailedf("commission %s is no longer pending", id)
		}
		return nil, err
	}

	c.Status = status
	c.PaidAt = paidAt
	if notes != nil {
		c.Notes = notes
	}

	return c, nil
}

func (s *Service) ListCommissions(ctx context.Context, filter types.CommissionFilter, offset, limit uint64) ([]*types.Commission, error) {
	ctx, span := s.tracer.Start(ctx, "commission.Service.ListCommissions")
	defer span.End()

	if filter.PeriodMonth < 0 || filter.PeriodMonth > 12 {
		return nil, types.Validationf("period month %d outside [1,12]", filter.PeriodMonth)
	}

	switch filter.Status {
	case "", types.CommissionStatusPending, types.CommissionStatusPaid, types.CommissionStatusCancelled:
	default:
		return nil, types.Validationf("unknown commission status %q", filter.Status)
	}

	return s.storage.ListCommissions(ctx, filter, offset, limit)
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
