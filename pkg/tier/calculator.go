// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tier

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/canonical/partner-service/internal/types"
)

type State string

const (
	StateActive   State = "active"
	StateInactive State = "inactive"
	StateNoTiers  State = "no_tiers"
)

var hundred = decimal.NewFromInt(100)

// Input is everything Calculate needs, gathered by the caller.
type Input struct {
	Enabled       bool
	ReferralCount int
	Tiers         []types.Tier
	Override      *string
}

type Status struct {
	State               State           `json:"state"`
	CurrentTier         *types.Tier     `json:"current_tier"`
	NextTier            *types.Tier     `json:"next_tier"`
	ReferralCount       int             `json:"referral_count"`
	ReferralCountNeeded int             `json:"referral_count_needed"`
	ProgressPercent     decimal.Decimal `json:"progress_percent"`
	GoalMet             bool            `json:"goal_met"`
	Overridden          bool            `json:"overridden"`
	Description         string          `json:"description"`
}

// Calculate derives the tier progression of a partner. Tiers are ordered by
// referral goal, the input slice is not modified. An override naming a tier
// that is not configured anymore is ignored.
func Calculate(in Input) Status {
	s := Status{ReferralCount: in.ReferralCount, ProgressPercent: decimal.Zero}

	if !in.Enabled {
		s.State = StateInactive
		s.Description = "Tier program is disabled"
		return s
	}

	if len(in.Tiers) == 0 {
		s.State = StateNoTiers
		s.Description = "No tiers configured"
		return s
	}

	tiers := make([]types.Tier, len(in.Tiers))
	copy(tiers, in.Tiers)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].ReferralGoal < tiers[j].ReferralGoal })

	s.State = StateActive

	current := -1
	if in.Override != nil {
		current = indexOf(tiers, *in.Override)
		s.Overridden = current >= 0
	}

	if !s.Overridden {
		for i := len(tiers) - 1; i >= 0; i-- {
			if tiers[i].ReferralGoal <= in.ReferralCount {
				current = i
				break
			}
		}
	}

	next := current + 1

	if current >= 0 {
		t := tiers[current]
		s.CurrentTier = &t
		s.GoalMet = true
	}

	if next < len(tiers) {
		t := tiers[next]
		s.NextTier = &t
	}

	if s.NextTier == nil {
		s.ProgressPercent = hundred
		s.Description = fmt.Sprintf("%s reached, highest tier", s.CurrentTier.Name)
		return s
	}

	base := 0
	if s.CurrentTier != nil {
		base = s.CurrentTier.ReferralGoal
	}

	s.ProgressPercent = progress(in.ReferralCount, base, s.NextTier.ReferralGoal)
	s.ReferralCountNeeded = max(s.NextTier.ReferralGoal-in.ReferralCount, 0)

	if s.CurrentTier == nil {
		s.Description = fmt.Sprintf("%d referrals to %s", s.ReferralCountNeeded, s.NextTier.Name)
	} else {
		s.Description = fmt.Sprintf("%s reached, %d referrals to %s", s.CurrentTier.Name, s.ReferralCountNeeded, s.NextTier.Name)
	}

	return s
}

// progress is (count-base)/(goal-base) as a percentage clamped to [0,100],
// rounded to two places. An empty range yields 0.
func progress(count, base, goal int) decimal.Decimal {
	span := goal - base
	if span <= 0 {
		return decimal.Zero
	}

	p := decimal.NewFromInt(int64(count - base)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(span))).
		Round(2)

	switch {
	case p.LessThan(decimal.Zero):
		return decimal.Zero
	case p.GreaterThan(hundred):
		return hundred
	default:
		return p
	}
}

func indexOf(tiers []types.Tier, name string) int {
	for i, t := range tiers {
		if t.Name == name {
			return i
		}
	}
	return -1
}
