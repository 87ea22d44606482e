// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
)

// NoopVerifier is used when authentication is disabled. The bearer token is
// taken verbatim as the operator subject so audit records still name someone.
type NoopVerifier struct{}

func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

func (n *NoopVerifier) VerifyToken(_ context.Context, rawToken string) (*Operator, error) {
	if rawToken == "" {
		return nil, fmt.Errorf("empty operator id")
	}

	return &Operator{Subject: rawToken}, nil
}
