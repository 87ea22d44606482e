// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package referralcode

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package referralcode -destination ./mock_referralcode.go -source=./interfaces.go

var codePattern = regexp.MustCompile(`^PRT[A-Z0-9]{6}$`)

func seededRandom(seed int64) RandomFunc {
	r := rand.New(rand.NewSource(seed))
	return func(length int) string {
		b := make([]byte, length)
		for i := range b {
			b[i] = alphabet[r.Intn(len(alphabet))]
		}
		return string(b)
	}
}

func sequence(values ...string) RandomFunc {
	i := 0
	return func(int) string {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestGenerator_Generate(t *testing.T) {
	dbErr := errors.New("db error")

	tests := []struct {
		name         string
		random       RandomFunc
		setupMocks   func(*MockStorageInterface)
		expectedCode string
		expectedErr  error
	}{
		{
			name:   "first candidate free",
			random: sequence("AAAAAA"),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ReferralCodeExists(gomock.Any(), "PRTAAAAAA").Return(false, nil)
			},
			expectedCode: "PRTAAAAAA",
		},
		{
			name:   "third candidate free",
			random: sequence("AAAAAA", "BBBBBB", "CCCCCC"),
			setupMocks: func(s *MockStorageInterface) {
				gomock.InOrder(
					s.EXPECT().ReferralCodeExists(gomock.Any(), "PRTAAAAAA").Return(true, nil),
					s.EXPECT().ReferralCodeExists(gomock.Any(), "PRTBBBBBB").Return(true, nil),
					s.EXPECT().ReferralCodeExists(gomock.Any(), "PRTCCCCCC").Return(false, nil),
				)
			},
			expectedCode: "PRTCCCCCC",
		},
		{
			name:   "all attempts collide",
			random: sequence("AAAAAA"),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ReferralCodeExists(gomock.Any(), "PRTAAAAAA").Return(true, nil).Times(MaxAttempts)
			},
			expectedErr: types.ErrGenerationExhausted,
		},
		{
			name:   "storage failure",
			random: sequence("AAAAAA"),
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ReferralCodeExists(gomock.Any(), "PRTAAAAAA").Return(false, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			g := NewGenerator(mockStorage, tracing.NewNoopTracer(), logging.NewNoopLogger(), WithRandom(tt.random))

			code, err := g.Generate(context.Background())

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, code)
			}
		})
	}
}

func TestGenerator_ExhaustionIsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ReferralCodeExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(MaxAttempts)

	g := NewGenerator(mockStorage, tracing.NewNoopTracer(), logging.NewNoopLogger())

	_, err := g.Generate(context.Background())
	if !errors.Is(err, types.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestGenerator_SeededDrawsAreUnique(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issued := make(map[string]bool)

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ReferralCodeExists(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, code string) (bool, error) {
			return issued[code], nil
		},
	).AnyTimes()

	g := NewGenerator(mockStorage, tracing.NewNoopTracer(), logging.NewNoopLogger(), WithRandom(seededRandom(42)))

	for i := 0; i < 1000; i++ {
		code, err := g.Generate(context.Background())
		if err != nil {
			t.Fatalf("draw %d: unexpected error: %v", i, err)
		}
		if !codePattern.MatchString(code) {
			t.Fatalf("draw %d: code %q does not match %s", i, code, codePattern)
		}
		if issued[code] {
			t.Fatalf("draw %d: duplicate code %s", i, code)
		}
		issued[code] = true
	}
}

func TestGenerator_DefaultRandomShape(t *testing.T) {
	g := NewGenerator(nil, tracing.NewNoopTracer(), logging.NewNoopLogger(), WithPrefix("ref"))

	suffix := g.random(SuffixLength)
	if !regexp.MustCompile(`^[A-Z0-9]{6}$`).MatchString(suffix) {
		t.Fatalf("unexpected suffix %q", suffix)
	}
	if g.prefix != "REF" {
		t.Fatalf("expected prefix REF, got %s", g.prefix)
	}
}
