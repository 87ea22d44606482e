// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedule

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeGenerateCommissions = "commission:generate"

	Queue = "commissions"

	DefaultCronSpec = "0 3 1 * *"

	maxRetry = 5
)

// GeneratePayload selects the period to generate. A zero payload means the
// calendar month preceding the time the task runs.
type GeneratePayload struct {
	Month     int    `json:"month,omitempty"`
	Year      int    `json:"year,omitempty"`
	PartnerID string `json:"partner_id,omitempty"`
}

func NewGenerateTask(payload GeneratePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode task payload: %v", err)
	}

	return asynq.NewTask(
		TypeGenerateCommissions,
		data,
		asynq.Queue(Queue),
		asynq.MaxRetry(maxRetry),
	), nil
}

// PreviousPeriod returns the calendar month before now, in now's location.
func PreviousPeriod(now time.Time) (month, year int) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prev := first.AddDate(0, -1, 0)

	return int(prev.Month()), prev.Year()
}
