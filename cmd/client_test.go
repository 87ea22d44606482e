// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"text/tabwriter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptypes "github.com/canonical/partner-service/internal/http/types"
	"github.com/canonical/partner-service/internal/types"
)

func withClientFlags(t *testing.T, endpoint, token, user, output string) {
	t.Helper()

	prevEndpoint, prevToken, prevUser, prevOutput := httpEndpoint, accessToken, userID, outputFormat
	t.Cleanup(func() {
		httpEndpoint, accessToken, userID, outputFormat = prevEndpoint, prevToken, prevUser, prevOutput
	})

	httpEndpoint, accessToken, userID, outputFormat = endpoint, token, user, output
}

func TestAPIClient_Do(t *testing.T) {
	var gotAuth, gotQuery, gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery

		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		gotBody = buf.String()

		switch r.URL.Path {
		case "/api/v0/commissions/c-1/pay":
			httptypes.WriteData(w, http.StatusOK, "Commission paid", types.Commission{ID: "c-1", Status: types.CommissionStatusPaid})
		case "/api/v0/commissions":
			httptypes.WritePage(w, "List of commissions", []types.Commission{{ID: "c-1"}, {ID: "c-2"}}, httptypes.Pagination{Page: 1, Size: 100})
		default:
			httptypes.WriteError(w, types.PreconditionFailedf("commission %s is already paid", "c-2"))
		}
	}))
	defer srv.Close()

	t.Run("decodes data and sends the user as bearer token", func(t *testing.T) {
		withClientFlags(t, srv.URL, "", "operator-1", "table")

		out := new(types.Commission)
		env, err := newAPIClient().do(context.Background(), http.MethodPost, "/api/v0/commissions/c-1/pay", nil, nil, out)

		require.NoError(t, err)
		assert.Equal(t, "Commission paid", env.Message)
		assert.Equal(t, types.CommissionStatusPaid, out.Status)
		assert.Equal(t, "Bearer operator-1", gotAuth)
	})

	t.Run("token takes precedence and empty query values are dropped", func(t *testing.T) {
		withClientFlags(t, strings.TrimPrefix(srv.URL, "http://"), "jwt", "operator-1", "table")

		var out []types.Commission
		env, err := newAPIClient().do(
			context.Background(),
			http.MethodGet,
			"/api/v0/commissions",
			map[string]string{"status": "pending", "partner_id": ""},
			nil,
			&out,
		)

		require.NoError(t, err)
		assert.Len(t, out, 2)
		require.NotNil(t, env.Meta)
		assert.Equal(t, int64(100), env.Meta.Size)
		assert.Equal(t, "status=pending", gotQuery)
		assert.Equal(t, "Bearer jwt", gotAuth)
	})

	t.Run("api errors carry the server message", func(t *testing.T) {
		withClientFlags(t, srv.URL, "", "", "table")

		_, err := newAPIClient().do(context.Background(), http.MethodPost, "/api/v0/commissions/c-2/pay", nil, map[string]string{"notes": "x"}, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "412")
		assert.Contains(t, err.Error(), "already paid")
		assert.JSONEq(t, `{"notes":"x"}`, gotBody)
		assert.Empty(t, gotAuth)
	})
}

func TestRender(t *testing.T) {
	rows := []string{"a", "b"}
	table := func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "NAME\tINDEX")
		for i, r := range rows {
			fmt.Fprintf(w, "%s\t%d\n", r, i)
		}
	}

	t.Run("json", func(t *testing.T) {
		withClientFlags(t, "", "", "", "json")

		buf := new(bytes.Buffer)
		require.NoError(t, render(buf, rows, table))

		var decoded []string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, rows, decoded)
	})

	t.Run("table", func(t *testing.T) {
		withClientFlags(t, "", "", "", "table")

		buf := new(bytes.Buffer)
		require.NoError(t, render(buf, rows, table))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, []string{"NAME", "INDEX"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"b", "1"}, strings.Fields(lines[2]))
	})
}
