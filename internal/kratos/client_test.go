// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	ory "github.com/ory/client-go"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
)

func TestIdentityToUser(t *testing.T) {
	tests := []struct {
		name     string
		identity *ory.Identity
		expected types.User
	}{
		{
			name: "flat name",
			identity: &ory.Identity{
				Id:             "user-1",
				Traits:         map[string]interface{}{"email": "ana@example.com", "name": "Ana"},
				MetadataPublic: map[string]interface{}{"role": "owner"},
			},
			expected: types.User{ID: "user-1", Name: "Ana", Email: "ana@example.com", Role: "owner"},
		},
		{
			name: "structured name",
			identity: &ory.Identity{
				Id: "user-2",
				Traits: map[string]interface{}{
					"email": "bo@example.com",
					"name":  map[string]interface{}{"first": "Bo", "last": "Lind"},
				},
			},
			expected: types.User{ID: "user-2", Name: "Bo Lind", Email: "bo@example.com"},
		},
		{
			name: "metadata without role",
			identity: &ory.Identity{
				Id:             "user-4",
				MetadataPublic: map[string]interface{}{"tier": "gold"},
			},
			expected: types.User{ID: "user-4"},
		},
		{
			name:     "no traits",
			identity: &ory.Identity{Id: "user-3"},
			expected: types.User{ID: "user-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := identityToUser(tt.identity)
			if *got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *got)
			}
		})
	}
}

func TestClient_GetUserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Unable to locate the resource"}}`))
	}))
	defer srv.Close()

	logger := logging.NewNoopLogger()
	c := NewClient(srv.URL, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	_, err := c.GetUser(context.Background(), "missing")
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestClient_GetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/identities/user-9" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "user-9",
			"schema_id": "default",
			"schema_url": "http://kratos/schemas/default",
			"traits": {"email": "cy@example.com", "name": {"first": "Cy", "last": "Moss"}},
			"metadata_public": {"role": "admin"}
		}`))
	}))
	defer srv.Close()

	logger := logging.NewNoopLogger()
	c := NewClient(srv.URL, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	u, err := c.GetUser(context.Background(), "user-9")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := types.User{ID: "user-9", Name: "Cy Moss", Email: "cy@example.com", Role: "admin"}
	if *u != expected {
		t.Errorf("expected %+v, got %+v", expected, *u)
	}
}
