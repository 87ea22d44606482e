// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package program

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/partner-service/internal/http/types"
	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/types"
)

func TestAPI_GetConfig(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetConfig(gomock.Any()).Return(&types.ProgramConfig{ID: "default", DefaultPercentage: decimal.NewFromInt(10)}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not configured",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetConfig(gomock.Any()).Return(nil, types.NotFoundf("program configuration"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "storage failure",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetConfig(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/program", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_UpdateConfig(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"default_percentage":"7.5","courtesy_rules":{"enabled":true,"tiers":[{"name":"Bronze","referral_goal":10}]},"base_referral_url":"https://example.com/signup"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateConfig(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, cfg *types.ProgramConfig) (*types.ProgramConfig, error) {
						if !cfg.DefaultPercentage.Equal(decimal.RequireFromString("7.5")) {
							t.Errorf("unexpected default percentage %s", cfg.DefaultPercentage)
						}
						if len(cfg.CourtesyRules.Tiers) != 1 || cfg.CourtesyRules.Tiers[0].Name != "Bronze" {
							t.Errorf("unexpected tiers %+v", cfg.CourtesyRules.Tiers)
						}
						return cfg, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			body:           `{"default_percentage":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid url",
			body:           `{"default_percentage":"10","base_referral_url":"not a url"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service validation",
			body: `{"default_percentage":"150"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateConfig(gomock.Any(), gomock.Any()).Return(nil, types.Validationf("percentage 150 outside [0,100]"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPut, "/api/v0/program", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if w.Code >= http.StatusBadRequest {
				var body httptypes.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if body.Status != tt.expectedStatus {
					t.Errorf("expected body status %d, got %d", tt.expectedStatus, body.Status)
				}
			}
		})
	}
}
