// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"slices"
)

// Operator is the authenticated caller of the partner admin API.
type Operator struct {
	Subject  string
	ClientID string
	Email    string
	Scopes   []string
}

// Name is the label written to audit records and security events.
func (o *Operator) Name() string {
	switch {
	case o == nil:
		return ""
	case o.Email != "":
		return o.Email
	case o.Subject != "":
		return o.Subject
	default:
		return o.ClientID
	}
}

func (o *Operator) HasScope(scope string) bool {
	return o != nil && slices.Contains(o.Scopes, scope)
}

type contextKey struct{}

var operatorContextKey = contextKey{}

// WithOperator returns a copy of ctx carrying the authenticated operator.
func WithOperator(ctx context.Context, op *Operator) context.Context {
	return context.WithValue(ctx, operatorContextKey, op)
}

// OperatorFromContext returns the operator set by the middleware, if any.
func OperatorFromContext(ctx context.Context) (*Operator, bool) {
	op, ok := ctx.Value(operatorContextKey).(*Operator)
	return op, ok && op != nil
}

// Actor returns the operator name for audit records.
func Actor(ctx context.Context) string {
	if op, ok := OperatorFromContext(ctx); ok {
		if name := op.Name(); name != "" {
			return name
		}
	}
	return "anonymous"
}
