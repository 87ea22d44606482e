// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package commission

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/partner-service/internal/http/types"
	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/types"
)

func newTestMux(service ServiceInterface) *chi.Mux {
	mux := chi.NewMux()

	api := NewAPI(service, logging.NewNoopLogger())
	api.RegisterGenerateEndpoint(mux)
	api.RegisterEndpoints(mux)

	return mux
}

func TestAPI_Generate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedResult *Result
	}{
		{
			name: "whole program",
			body: `{"month":3,"year":2025}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GenerateCommissions(gomock.Any(), 3, 2025, "").Return(&Result{Generated: 2, Ignored: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedResult: &Result{Generated: 2, Ignored: 1},
		},
		{
			name: "single partner",
			body: `{"month":12,"year":2024,"partner_id":"p-1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GenerateCommissions(gomock.Any(), 12, 2024, "p-1").Return(&Result{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedResult: &Result{},
		},
		{
			name: "partial failure reports the tally",
			body: `{"month":3,"year":2025}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GenerateCommissions(gomock.Any(), 3, 2025, "").
					Return(&Result{Generated: 1}, fmt.Errorf("%w: referral r-2: boom", types.ErrFatalStorage))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedResult: &Result{Generated: 1},
		},
		{
			name:           "month out of range",
			body:           `{"month":13,"year":2025}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing year",
			body:           `{"month":3}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/commissions/generate", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			newTestMux(mockService).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedResult == nil {
				return
			}

			var resp struct {
				Data Result `json:"data"`
			}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Data != *tt.expectedResult {
				t.Errorf("expected %+v, got %+v", *tt.expectedResult, resp.Data)
			}
		})
	}
}

func TestAPI_ListCommissions(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:  "filtered",
			query: "?partner_id=p-1&month=3&year=2025&status=pending&page=2&size=10",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListCommissions(
					gomock.Any(),
					types.CommissionFilter{PartnerID: "p-1", PeriodMonth: 3, PeriodYear: 2025, Status: types.CommissionStatusPending},
					uint64(10),
					uint64(10),
				).Return([]*types.Commission{{ID: "c-1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "unfiltered",
			query: "",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListCommissions(gomock.Any(), types.CommissionFilter{}, uint64(0), uint64(100)).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non numeric month",
			query:          "?month=march",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "unknown status",
			query: "?status=refunded",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListCommissions(gomock.Any(), types.CommissionFilter{Status: "refunded"}, uint64(0), uint64(100)).
					Return(nil, types.Validationf("unknown commission status %q", "refunded"))
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

			req := httptest.NewRequest(http.MethodGet, "/api/v0/commissions"+tt.query, nil)
			w := httptest.NewRecorder()

			newTestMux(mockService).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if w.Code != http.StatusOK {
				return
			}

			var resp httptypes.Response
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Meta == nil {
				t.Error("expected pagination metadata")
			}
			if _, ok := resp.Data.([]interface{}); !ok {
				t.Errorf("expected a list, got %T", resp.Data)
			}
		})
	}
}

func TestAPI_Settle(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "pay",
			path: "/api/v0/commissions/c-1/pay",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().MarkCommissionPaid(gomock.Any(), "c-1").Return(&types.Commission{ID: "c-1", Status: types.CommissionStatusPaid}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "pay twice",
			path: "/api/v0/commissions/c-1/pay",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().MarkCommissionPaid(gomock.Any(), "c-1").Return(nil, types.PreconditionFailedf("commission c-1 is paid"))
			},
			expectedStatus: http.StatusPreconditionFailed,
		},
		{
			name: "cancel with notes",
			path: "/api/v0/commissions/c-1/cancel",
			body: `{"notes":"refunded customer"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CancelCommission(gomock.Any(), "c-1", "refunded customer").Return(&types.Commission{ID: "c-1", Status: types.CommissionStatusCancelled}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "cancel without body",
			path: "/api/v0/commissions/c-1/cancel",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CancelCommission(gomock.Any(), "c-1", "").Return(&types.Commission{ID: "c-1", Status: types.CommissionStatusCancelled}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "cancel unknown",
			path: "/api/v0/commissions/c-9/cancel",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CancelCommission(gomock.Any(), "c-9", "").Return(nil, types.NotFoundf("commission c-9"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(http.MethodPost, tt.path, nil)
			} else {
				req = httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			}
			w := httptest.NewRecorder()

			newTestMux(mockService).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
