// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package courtesy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/types"
)

func TestAPI_Apply(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "indefinite",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ApplyCourtesy(gomock.Any(), "p-1", nil).Return(&types.Partner{ID: "p-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "with expiry",
			body: `{"valid_until":"2027-01-01T00:00:00Z"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ApplyCourtesy(gomock.Any(), "p-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, validUntil *time.Time) (*types.Partner, error) {
						if validUntil == nil || !validUntil.Equal(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)) {
							t.Errorf("unexpected valid_until %v", validUntil)
						}
						return &types.Partner{ID: "p-1"}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "goal not met",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ApplyCourtesy(gomock.Any(), "p-1", nil).Return(nil, types.PreconditionFailedf("partner p-1 has not met a tier goal"))
			},
			expectedStatus: http.StatusPreconditionFailed,
		},
		{
			name:           "malformed date",
			body:           `{"valid_until":"tomorrow"}`,
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

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(http.MethodPost, "/api/v0/partners/p-1/courtesy", nil)
			} else {
				req = httptest.NewRequest(http.MethodPost, "/api/v0/partners/p-1/courtesy", strings.NewReader(tt.body))
			}
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().GetCourtesyStatus(gomock.Any(), "p-1").Return(&Status{PartnerID: "p-1", Eligible: true}, nil)

	mux := chi.NewMux()
	NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/partners/p-1/courtesy", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}
