// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package courtesy

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
	"github.com/canonical/partner-service/pkg/tier"
)

//go:generate mockgen -build_flags=--mod=mod -package courtesy -destination ./mock_courtesy.go -source=./interfaces.go

var fixedNow = time.Date(2026, time.May, 1, 8, 0, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockTierServiceInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockTiers := NewMockTierServiceInterface(ctrl)
	logger := logging.NewNoopLogger()

	s := NewService(mockStorage, mockTiers, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	s.now = func() time.Time { return fixedNow }

	return s, mockStorage, mockTiers
}

func TestService_ApplyCourtesy(t *testing.T) {
	future := fixedNow.AddDate(0, 6, 0)
	past := fixedNow.Add(-time.Hour)
	dbErr := errors.New("db error")

	tests := []struct {
		name        string
		validUntil  *time.Time
		setupMocks  func(*MockStorageInterface, *MockTierServiceInterface)
		expectedErr error
	}{
		{
			name:       "goal met with expiry",
			validUntil: &future,
			setupMocks: func(s *MockStorageInterface, ts *MockTierServiceInterface) {
				ts.EXPECT().GetTierStatus(gomock.Any(), "p-1").Return(&tier.Status{GoalMet: true}, nil)
				s.EXPECT().SetCourtesy(gomock.Any(), "p-1", fixedNow, &future).Return(nil)
				s.EXPECT().GetPartnerByID(gomock.Any(), "p-1").Return(&types.Partner{ID: "p-1", CourtesyAppliedAt: &fixedNow, CourtesyValidUntil: &future}, nil)
			},
		},
		{
			name: "goal met indefinitely",
			setupMocks: func(s *MockStorageInterface, ts *MockTierServiceInterface) {
				ts.EXPECT().GetTierStatus(gomock.Any(), "p-1").Return(&tier.Status{GoalMet: true}, nil)
				s.EXPECT().SetCourtesy(gomock.Any(), "p-1", fixedNow, nil).Return(nil)
				s.EXPECT().GetPartnerByID(gomock.Any(), "p-1").Return(&types.Partner{ID: "p-1", CourtesyAppliedAt: &fixedNow}, nil)
			},
		},
		{
			name: "goal not met",
			setupMocks: func(s *MockStorageInterface, ts *MockTierServiceInterface) {
				ts.EXPECT().GetTierStatus(gomock.Any(), "p-1").Return(&tier.Status{GoalMet: false}, nil)
			},
			expectedErr: types.ErrPreconditionFailed,
		},
		{
			name:        "expiry in the past",
			validUntil:  &past,
			setupMocks:  func(*MockStorageInterface, *MockTierServiceInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "unknown partner",
			setupMocks: func(s *MockStorageInterface, ts *MockTierServiceInterface) {
				ts.EXPECT().GetTierStatus(gomock.Any(), "p-1").Return(nil, types.NotFoundf("partner p-1"))
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "storage failure",
			setupMocks: func(s *MockStorageInterface, ts *MockTierServiceInterface) {
				ts.EXPECT().GetTierStatus(gomock.Any(), "p-1").Return(&tier.Status{GoalMet: true}, nil)
				s.EXPECT().SetCourtesy(gomock.Any(), "p-1", fixedNow, nil).Return(dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockTiers := newTestService(ctrl)
			tt.setupMocks(mockStorage, mockTiers)

			p, err := s.ApplyCourtesy(context.Background(), "p-1", tt.validUntil)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if p.CourtesyAppliedAt == nil || !p.CourtesyAppliedAt.Equal(fixedNow) {
				t.Errorf("expected courtesy applied at %s, got %v", fixedNow, p.CourtesyAppliedAt)
			}
		})
	}
}

func TestService_GetCourtesyStatus(t *testing.T) {
	appliedAt := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	expired := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	rules := types.CourtesyRules{
		Enabled:             true,
		RenewalPeriodMonths: 6,
		RenewalReferralGoal: 3,
		GracePeriodDays:     15,
	}

	tests := []struct {
		name    string
		partner *types.Partner
		count   int
		check   func(*testing.T, *Status)
	}{
		{
			name:    "not applied",
			partner: &types.Partner{ID: "p-1"},
			check: func(t *testing.T, s *Status) {
				if s.Applied || s.RenewalDueAt != nil || s.ReferralsSinceApplied != 0 {
					t.Errorf("unexpected status %+v", s)
				}
				if !s.Eligible {
					t.Errorf("expected eligible partner")
				}
			},
		},
		{
			name:    "applied with renewal goal met",
			partner: &types.Partner{ID: "p-1", CourtesyAppliedAt: &appliedAt},
			count:   4,
			check: func(t *testing.T, s *Status) {
				expectedDue := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)
				expectedGrace := time.Date(2026, time.July, 30, 0, 0, 0, 0, time.UTC)

				if !s.Applied || s.Expired {
					t.Errorf("expected active grant, got %+v", s)
				}
				if s.RenewalDueAt == nil || !s.RenewalDueAt.Equal(expectedDue) {
					t.Errorf("expected renewal due %s, got %v", expectedDue, s.RenewalDueAt)
				}
				if s.GraceEndsAt == nil || !s.GraceEndsAt.Equal(expectedGrace) {
					t.Errorf("expected grace end %s, got %v", expectedGrace, s.GraceEndsAt)
				}
				if s.ReferralsSinceApplied != 4 || !s.RenewalGoalMet {
					t.Errorf("expected renewal goal met with 4 referrals, got %+v", s)
				}
			},
		},
		{
			name:    "expired grant below renewal goal",
			partner: &types.Partner{ID: "p-1", CourtesyAppliedAt: &appliedAt, CourtesyValidUntil: &expired},
			count:   1,
			check: func(t *testing.T, s *Status) {
				if !s.Expired || s.RenewalGoalMet {
					t.Errorf("expected expired grant below goal, got %+v", s)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockTiers := newTestService(ctrl)

			mockStorage.EXPECT().GetPartnerByID(gomock.Any(), "p-1").Return(tt.partner, nil)
			mockStorage.EXPECT().GetProgramConfig(gomock.Any()).Return(&types.ProgramConfig{CourtesyRules: rules}, nil)
			mockTiers.EXPECT().GetTierStatus(gomock.Any(), "p-1").Return(&tier.Status{GoalMet: true}, nil)
			if tt.partner.CourtesyAppliedAt != nil {
				mockStorage.EXPECT().CountReferrals(gomock.Any(), "p-1", types.ReferralStatusActive, tt.partner.CourtesyAppliedAt).Return(tt.count, nil)
			}

			status, err := s.GetCourtesyStatus(context.Background(), "p-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tt.check(t, status)
		})
	}
}
