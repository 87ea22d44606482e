// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-resty/resty/v2"

	httptypes "github.com/canonical/partner-service/internal/http/types"
)

// envelope mirrors httptypes.Response with the payload left undecoded.
type envelope struct {
	Data    json.RawMessage       `json:"data"`
	Message string                `json:"message"`
	Status  int                   `json:"status"`
	Meta    *httptypes.Pagination `json:"_meta,omitempty"`
}

type apiClient struct {
	client *resty.Client
}

func newAPIClient() *apiClient {
	endpoint := httpEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	client := resty.New().
		SetBaseURL(strings.TrimSuffix(endpoint, "/")).
		SetTimeout(2*time.Minute).
		SetHeader("Accept", "application/json")

	// with authentication disabled the noop verifier takes the token as the operator ID
	switch {
	case accessToken != "":
		client.SetAuthToken(accessToken)
	case userID != "":
		client.SetAuthToken(userID)
	}

	c := new(apiClient)
	c.client = client

	return c
}

// do sends the request and decodes the response data into out. query values
// that are empty are not sent.
func (c *apiClient) do(ctx context.Context, method, path string, query map[string]string, body, out interface{}) (*envelope, error) {
	env := new(envelope)
	apiErr := new(httptypes.ErrorResponse)

	req := c.client.R().
		SetContext(ctx).
		SetResult(env).
		SetError(apiErr)

	for k, v := range query {
		if v != "" {
			req.SetQueryParam(k, v)
		}
	}

	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.IsError() {
		if apiErr.Message == "" {
			return nil, fmt.Errorf("api error (status %d): %s", resp.StatusCode(), resp.String())
		}
		return nil, fmt.Errorf("api error (status %d): %s", apiErr.Status, apiErr.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return env, nil
}

// render prints v as JSON or, in table mode, through the given table writer.
func render(w io.Writer, v interface{}, table func(*tabwriter.Writer)) error {
	if outputFormat == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	table(tw)
	return tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
