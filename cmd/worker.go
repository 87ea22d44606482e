// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring/prometheus"
	"github.com/canonical/partner-service/internal/storage"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/pkg/commission"
	"github.com/canonical/partner-service/pkg/schedule"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "worker consumes the commission generation queue",
	Long:  `Run the background worker executing scheduled commission generation tasks from Redis`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := work(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func work() error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("partner-service-worker", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := openDatabase(context.Background(), specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	worker := schedule.NewWorker(commission.NewService(s, tracer, monitor, logger), tracer, logger)

	mux := asynq.NewServeMux()
	worker.RegisterHandlers(mux)

	logger.Infof("Starting worker on redis %s with concurrency %d", specs.RedisAddr, specs.WorkerConcurrency)

	// Run blocks until SIGTERM or SIGINT
	return schedule.NewServer(redisConnOpt(specs), specs.WorkerConcurrency, logger).Run(mux)
}
