// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/internal/types"
)

type Worker struct {
	commissions CommissionServiceInterface

	now func() time.Time

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RegisterHandlers binds the worker task handlers on mux.
func (w *Worker) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeGenerateCommissions, w.HandleGenerateCommissions)
}

// HandleGenerateCommissions runs one generation. Storage failures are
// returned so that asynq retries the task; generation is idempotent so a
// retry only fills the gaps. Invalid requests are not retried.
func (w *Worker) HandleGenerateCommissions(ctx context.Context, t *asynq.Task) error {
	ctx, span := w.tracer.Start(ctx, "schedule.Worker.HandleGenerateCommissions")
	defer span.End()

	var payload GeneratePayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("malformed payload: %v: %w", err, asynq.SkipRetry)
		}
	}

	if payload.Month == 0 && payload.Year == 0 {
		payload.Month, payload.Year = PreviousPeriod(w.now().UTC())
	}

	result, err := w.commissions.GenerateCommissions(ctx, payload.Month, payload.Year, payload.PartnerID)

	switch {
	case err == nil:
		w.logger.Infof("scheduled commission generation for %02d/%d: %s", payload.Month, payload.Year, result)
		return nil
	case errors.Is(err, types.ErrValidation), errors.Is(err, types.ErrNotFound):
		w.logger.Errorf("scheduled commission generation for %02d/%d rejected: %v", payload.Month, payload.Year, err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	default:
		if result != nil {
			w.logger.Errorf("scheduled commission generation for %02d/%d failed after %s: %v", payload.Month, payload.Year, result, err)
		}
		return err
	}
}

func NewWorker(commissions CommissionServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Worker {
	w := new(Worker)

	w.commissions = commissions
	w.now = time.Now

	w.tracer = tracer
	w.logger = logger

	return w
}
