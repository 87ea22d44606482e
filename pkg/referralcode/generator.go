// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package referralcode

import (
	"context"
	"fmt"
	"strings"

	"github.com/dchest/uniuri"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
)

const (
	DefaultPrefix = "PRT"
	SuffixLength  = 6
	MaxAttempts   = 3
)

var alphabet = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// RandomFunc returns a random suffix of the given length.
type RandomFunc func(length int) string

type Option func(*Generator)

// WithRandom replaces the suffix source, mostly for seeded tests.
func WithRandom(fn RandomFunc) Option {
	return func(g *Generator) {
		g.random = fn
	}
}

func WithPrefix(prefix string) Option {
	return func(g *Generator) {
		if p := strings.TrimSpace(prefix); p != "" {
			g.prefix = strings.ToUpper(p)
		}
	}
}

type Generator struct {
	storage StorageInterface
	prefix  string
	random  RandomFunc

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

var _ GeneratorInterface = (*Generator)(nil)

// Generate returns a code that was free at the time of the check. The unique
// constraint on partners.referral_code still decides under concurrent inserts.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	ctx, span := g.tracer.Start(ctx, "referralcode.Generator.Generate")
	defer span.End()

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		code := g.prefix + g.random(SuffixLength)

		exists, err := g.storage.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check referral code: %w", err)
		}

		if !exists {
			return code, nil
		}

		g.logger.Debugf("referral code %s already taken, attempt %d/%d", code, attempt, MaxAttempts)
	}

	return "", types.ErrGenerationExhausted
}

func uniuriRandom(length int) string {
	return uniuri.NewLenChars(length, alphabet)
}

func NewGenerator(storage StorageInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface, opts ...Option) *Generator {
	g := new(Generator)

	g.storage = storage
	g.prefix = DefaultPrefix
	g.random = uniuriRandom

	g.tracer = tracer
	g.logger = logger

	for _, opt := range opts {
		opt(g)
	}

	return g
}
