// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
)

// ClientInterface is the UserDirectory backed by Kratos identities.
type ClientInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetUser resolves an identity into the point-of-contact view used by
// partners. Name and email come from the identity traits, the role from the
// public metadata.
func (c *Client) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetUser")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, types.NotFoundf("user %s", id)
		}
		c.setAvailability(0)
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}
	c.setAvailability(1)

	return identityToUser(identity), nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, v); err != nil {
		c.logger.Debugf("failed to set kratos availability: %v", err)
	}
}

func identityToUser(identity *ory.Identity) *types.User {
	u := &types.User{ID: identity.Id}

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if e, ok := traits["email"].(string); ok {
			u.Email = e
		}
		switch name := traits["name"].(type) {
		case string:
			u.Name = name
		case map[string]interface{}:
			first, _ := name["first"].(string)
			last, _ := name["last"].(string)
			u.Name = joinName(first, last)
		}
	}

	if metadata := identity.MetadataPublic; metadata != nil {
		if role, ok := metadata["role"].(string); ok {
			u.Role = role
		}
	}

	return u
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
