// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partner

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/storage"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package partner -destination ./mock_partner.go -source=./interfaces.go

var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockUserDirectoryInterface, *MockCodeGeneratorInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockUsers := NewMockUserDirectoryInterface(ctrl)
	mockCodes := NewMockCodeGeneratorInterface(ctrl)
	logger := logging.NewNoopLogger()

	s := NewService(mockStorage, mockUsers, mockCodes, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	s.now = func() time.Time { return fixedNow }

	return s, mockStorage, mockUsers, mockCodes
}

func TestService_CreatePartner(t *testing.T) {
	orgID := "org-1"
	userID := "user-1"
	dbErr := errors.New("db error")
	fifteen := decimal.NewFromInt(15)
	tooMuch := decimal.RequireFromString("100.01")

	tests := []struct {
		name        string
		override    *decimal.Decimal
		setupMocks  func(*MockStorageInterface, *MockUserDirectoryInterface, *MockCodeGeneratorInterface)
		expectedErr error
	}{
		{
			name:     "success with override",
			override: &fifteen,
			setupMocks: func(s *MockStorageInterface, u *MockUserDirectoryInterface, c *MockCodeGeneratorInterface) {
				s.EXPECT().GetOrganization(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				u.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID}, nil)
				s.EXPECT().GetPartnerByOrganizationID(gomock.Any(), orgID).Return(nil, storage.ErrNotFound)
				s.EXPECT().GetPartnerByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				c.EXPECT().Generate(gomock.Any()).Return("PRTABC123", nil)
				s.EXPECT().CreatePartner(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Partner) (*types.Partner, error) {
						if p.Status != types.PartnerStatusActive {
							t.Errorf("expected active partner, got %s", p.Status)
						}
						if p.ReferralCode != "PRTABC123" {
							t.Errorf("unexpected code %s", p.ReferralCode)
						}
						if !p.PercentageOverride.Valid || !p.PercentageOverride.Decimal.Equal(fifteen) {
							t.Errorf("unexpected override %+v", p.PercentageOverride)
						}
						if !p.JoinedAt.Equal(fixedNow) {
							t.Errorf("unexpected joined_at %s", p.JoinedAt)
						}
						created := *p
						created.ID = "partner-1"
						return &created, nil
					},
				)
			},
		},
		{
			name:        "override out of range",
			override:    &tooMuch,
			setupMocks:  func(*MockStorageInterface, *MockUserDirectoryInterface, *MockCodeGeneratorInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "organization does not exist",
			setupMocks: func(s *MockStorageInterface, u *MockUserDirectoryInterface, c *MockCodeGeneratorInterface) {
				s.EXPECT().GetOrganization(gomock.Any(), orgID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "user does not exist",
			setupMocks: func(s *MockStorageInterface, u *MockUserDirectoryInterface, c *MockCodeGeneratorInterface) {
				s.EXPECT().GetOrganization(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				u.EXPECT().GetUser(gomock.Any(), userID).Return(nil, types.NotFoundf("user %s", userID))
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "organization already has a partner",
			setupMocks: func(s *MockStorageInterface, u *MockUserDirectoryInterface, c *MockCodeGeneratorInterface) {
				s.EXPECT().GetOrganization(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				u.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID}, nil)
				s.EXPECT().GetPartnerByOrganizationID(gomock.Any(), orgID).Return(&types.Partner{ID: "p-0"}, nil)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "user already a partner",
			setupMocks: func(s *MockStorageInterface, u *MockUserDirectoryInterface, c *MockCodeGeneratorInterface) {
				s.EXPECT().GetOrganization(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				u.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID}, nil)
				s.EXPECT().GetPartnerByOrganizationID(gomock.Any(), orgID).Return(nil, storage.ErrNotFound)
				s.EXPECT().GetPartnerByUserID(gomock.Any(), userID).Return(&types.Partner{ID: "p-0"}, nil)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "lookup failure",
			setupMocks: func(s *MockStorageInterface, u *MockUserDirectoryInterface, c *MockCodeGeneratorInterface) {
				s.EXPECT().GetOrganization(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				u.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID}, nil)
				s.EXPECT().GetPartnerByOrganizationID(gomock.Any(), orgID).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
		{
			name: "code generation exhausted",
			setupMocks: func(s *MockStorageInterface, u *MockUserDirectoryInterface, c *MockCodeGeneratorInterface) {
				s.EXPECT().GetOrganization(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				u.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID}, nil)
				s.EXPECT().GetPartnerByOrganizationID(gomock.Any(), orgID).Return(nil, storage.ErrNotFound)
				s.EXPECT().GetPartnerByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				c.EXPECT().Generate(gomock.Any()).Return("", types.ErrGenerationExhausted)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "unique violation on insert",
			setupMocks: func(s *MockStorageInterface, u *MockUserDirectoryInterface, c *MockCodeGeneratorInterface) {
				s.EXPECT().GetOrganization(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				u.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID}, nil)
				s.EXPECT().GetPartnerByOrganizationID(gomock.Any(), orgID).Return(nil, storage.ErrNotFound)
				s.EXPECT().GetPartnerByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				c.EXPECT().Generate(gomock.Any()).Return("PRTABC123", nil)
				s.EXPECT().CreatePartner(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("partner: %w", storage.ErrDuplicateKey))
			},
			expectedErr: types.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockUsers, mockCodes := newTestService(ctrl)
			tt.setupMocks(mockStorage, mockUsers, mockCodes)

			p, err := s.CreatePartner(context.Background(), orgID, userID, tt.override)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if p.ID != "partner-1" {
				t.Errorf("expected partner-1, got %s", p.ID)
			}
		})
	}
}

func TestService_UpdatePartner(t *testing.T) {
	suspended := types.PartnerStatusSuspended
	active := types.PartnerStatusActive
	inactive := types.PartnerStatusInactive
	reason := "unpaid invoices"
	blank := "   "
	twenty := decimal.NewFromInt(20)
	gold := "Gold"
	platinum := "Platinum"
	suspendedAt := fixedNow.Add(-24 * time.Hour)
	oldReason := "fraud review"

	cfg := &types.ProgramConfig{
		DefaultPercentage: decimal.NewFromInt(10),
		CourtesyRules: types.CourtesyRules{
			Tiers: []types.Tier{{Name: "Silver", ReferralGoal: 30}, {Name: "Gold", ReferralGoal: 40}},
		},
	}

	activePartner := func() *types.Partner {
		return &types.Partner{
			ID:                 "p-1",
			Status:             types.PartnerStatusActive,
			PercentageOverride: decimal.NewNullDecimal(decimal.NewFromInt(12)),
		}
	}

	suspendedPartner := func() *types.Partner {
		return &types.Partner{
			ID:               "p-1",
			Status:           types.PartnerStatusSuspended,
			SuspendedAt:      &suspendedAt,
			SuspensionReason: &oldReason,
		}
	}

	tests := []struct {
		name        string
		current     func() *types.Partner
		update      PartnerUpdate
		needsConfig bool
		expectSave  bool
		expectedErr error
		check       func(*testing.T, *types.Partner)
	}{
		{
			name:       "suspend with reason",
			current:    activePartner,
			update:     PartnerUpdate{Status: &suspended, SuspensionReason: &reason},
			expectSave: true,
			check: func(t *testing.T, p *types.Partner) {
				if p.Status != types.PartnerStatusSuspended {
					t.Errorf("expected suspended, got %s", p.Status)
				}
				if p.SuspendedAt == nil || !p.SuspendedAt.Equal(fixedNow) {
					t.Errorf("expected suspended_at %s, got %v", fixedNow, p.SuspendedAt)
				}
				if p.SuspensionReason == nil || *p.SuspensionReason != reason {
					t.Errorf("unexpected reason %v", p.SuspensionReason)
				}
			},
		},
		{
			name:        "suspend without reason",
			current:     activePartner,
			update:      PartnerUpdate{Status: &suspended},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "suspend with blank reason",
			current:     activePartner,
			update:      PartnerUpdate{Status: &suspended, SuspensionReason: &blank},
			expectedErr: types.ErrValidation,
		},
		{
			name:       "reactivate clears suspension",
			current:    suspendedPartner,
			update:     PartnerUpdate{Status: &active},
			expectSave: true,
			check: func(t *testing.T, p *types.Partner) {
				if p.Status != types.PartnerStatusActive || p.SuspendedAt != nil || p.SuspensionReason != nil {
					t.Errorf("expected cleared suspension, got %+v", p)
				}
			},
		},
		{
			name:       "deactivate clears suspension",
			current:    suspendedPartner,
			update:     PartnerUpdate{Status: &inactive},
			expectSave: true,
			check: func(t *testing.T, p *types.Partner) {
				if p.Status != types.PartnerStatusInactive || p.SuspendedAt != nil || p.SuspensionReason != nil {
					t.Errorf("expected cleared suspension, got %+v", p)
				}
			},
		},
		{
			name:       "edit reason while suspended",
			current:    suspendedPartner,
			update:     PartnerUpdate{SuspensionReason: &reason},
			expectSave: true,
			check: func(t *testing.T, p *types.Partner) {
				if *p.SuspensionReason != reason || !p.SuspendedAt.Equal(suspendedAt) {
					t.Errorf("unexpected suspension %v %v", p.SuspensionReason, p.SuspendedAt)
				}
			},
		},
		{
			name:        "reason on active partner",
			current:     activePartner,
			update:      PartnerUpdate{SuspensionReason: &reason},
			expectedErr: types.ErrValidation,
		},
		{
			name:       "set percentage override",
			current:    activePartner,
			update:     PartnerUpdate{PercentageOverride: &twenty},
			expectSave: true,
			check: func(t *testing.T, p *types.Partner) {
				if !p.PercentageOverride.Decimal.Equal(twenty) {
					t.Errorf("expected 20, got %s", p.PercentageOverride.Decimal)
				}
			},
		},
		{
			name:       "clear percentage override",
			current:    activePartner,
			update:     PartnerUpdate{ClearPercentageOverride: true},
			expectSave: true,
			check: func(t *testing.T, p *types.Partner) {
				if p.PercentageOverride.Valid {
					t.Errorf("expected cleared override, got %s", p.PercentageOverride.Decimal)
				}
				if !types.ResolvePercentage(p, cfg).Equal(cfg.DefaultPercentage) {
					t.Errorf("expected fallback to default percentage")
				}
			},
		},
		{
			name:        "set and clear override",
			current:     activePartner,
			update:      PartnerUpdate{PercentageOverride: &twenty, ClearPercentageOverride: true},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "tier override",
			current:     activePartner,
			update:      PartnerUpdate{TierOverride: &gold},
			needsConfig: true,
			expectSave:  true,
			check: func(t *testing.T, p *types.Partner) {
				if p.TierOverride == nil || *p.TierOverride != gold {
					t.Errorf("expected Gold override, got %v", p.TierOverride)
				}
			},
		},
		{
			name:        "unknown tier override",
			current:     activePartner,
			update:      PartnerUpdate{TierOverride: &platinum},
			needsConfig: true,
			expectedErr: types.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _ := newTestService(ctrl)

			if tt.update.PercentageOverride == nil || !tt.update.ClearPercentageOverride {
				mockStorage.EXPECT().GetPartnerByID(gomock.Any(), "p-1").Return(tt.current(), nil)
			}
			if tt.needsConfig {
				mockStorage.EXPECT().GetProgramConfig(gomock.Any()).Return(cfg, nil)
			}
			if tt.expectSave {
				mockStorage.EXPECT().UpdatePartner(gomock.Any(), gomock.Any()).Return(nil)
			}

			p, err := s.UpdatePartner(context.Background(), "p-1", tt.update)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tt.check(t, p)
		})
	}
}

func TestService_UpdatePartnerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _, _ := newTestService(ctrl)
	mockStorage.EXPECT().GetPartnerByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	_, err := s.UpdatePartner(context.Background(), "missing", PartnerUpdate{ClearTierOverride: true})
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_ListCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _, _ := newTestService(ctrl)

	mockStorage.EXPECT().ListOrganizations(gomock.Any()).Return([]*types.Organization{
		{ID: "org-1"}, {ID: "org-2"}, {ID: "org-3"},
	}, nil)
	mockStorage.EXPECT().ListPartneredOrganizationIDs(gomock.Any()).Return([]string{"org-2"}, nil)

	orgs, err := s.ListCandidates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(orgs) != 2 || orgs[0].ID != "org-1" || orgs[1].ID != "org-3" {
		t.Errorf("unexpected candidates %+v", orgs)
	}
}

func TestService_ListPartnersRejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, _, _ := newTestService(ctrl)

	_, err := s.ListPartners(context.Background(), types.PartnerStatus("gone"), 0, 10)
	if !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_ReferralLink(t *testing.T) {
	p := &types.Partner{ID: "p-1", ReferralCode: "PRTABC123"}

	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{name: "plain url", baseURL: "https://example.com/signup", expected: "https://example.com/signup?ref=PRTABC123"},
		{name: "url with query", baseURL: "https://example.com/signup?plan=pro", expected: "https://example.com/signup?plan=pro&ref=PRTABC123"},
		{name: "not configured", baseURL: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _ := newTestService(ctrl)
			mockStorage.EXPECT().GetProgramConfig(gomock.Any()).Return(&types.ProgramConfig{BaseReferralURL: tt.baseURL}, nil)

			link, err := s.ReferralLink(context.Background(), p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if link != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, link)
			}
		})
	}
}

func TestService_GetPartnerByCodeNormalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _, _ := newTestService(ctrl)
	mockStorage.EXPECT().GetPartnerByCode(gomock.Any(), "PRTABC123").Return(&types.Partner{ID: "p-1"}, nil)

	p, err := s.GetPartnerByCode(context.Background(), " prtabc123 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.ID != "p-1" {
		t.Errorf("expected p-1, got %s", p.ID)
	}
}
