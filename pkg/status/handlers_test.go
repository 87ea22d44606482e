// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/version"
)

func newTestMux() *chi.Mux {
	logger := logging.NewNoopLogger()

	mux := chi.NewMux()
	NewAPI(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

	return mux
}

func TestAPI_Alive(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)
	w := httptest.NewRecorder()

	newTestMux().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var s Status
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if s.Status != okValue {
		t.Errorf("expected status %q, got %q", okValue, s.Status)
	}
}

func TestAPI_Version(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v0/version", nil)
	w := httptest.NewRecorder()

	newTestMux().ServeHTTP(w, req)

	var info BuildInfo
	if err := json.NewDecoder(w.Body).Decode(&info); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if info.Version != version.Version {
		t.Errorf("expected version %q, got %q", version.Version, info.Version)
	}
}
