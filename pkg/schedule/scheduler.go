// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schedule

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/canonical/partner-service/internal/logging"
)

// NewScheduler returns an asynq scheduler enqueuing the monthly generation
// task on cronSpec, evaluated in UTC.
func NewScheduler(redis asynq.RedisConnOpt, cronSpec string, logger logging.LoggerInterface) (*asynq.Scheduler, error) {
	if cronSpec == "" {
		cronSpec = DefaultCronSpec
	}

	scheduler := asynq.NewScheduler(redis, &asynq.SchedulerOpts{
		Location: time.UTC,
		Logger:   logger,
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil {
				logger.Errorf("failed to enqueue %s: %v", TypeGenerateCommissions, err)
				return
			}
			logger.Infof("enqueued %s as %s", info.Type, info.ID)
		},
	})

	task, err := NewGenerateTask(GeneratePayload{})
	if err != nil {
		return nil, err
	}

	entryID, err := scheduler.Register(cronSpec, task)
	if err != nil {
		return nil, fmt.Errorf("invalid commission schedule %q: %v", cronSpec, err)
	}

	logger.Infof("commission generation scheduled on %q as entry %s", cronSpec, entryID)

	return scheduler, nil
}

// NewServer returns an asynq server consuming the commissions queue.
func NewServer(redis asynq.RedisConnOpt, concurrency int, logger logging.LoggerInterface) *asynq.Server {
	return asynq.NewServer(redis, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			Queue: 1,
		},
		Logger: logger,
	})
}
