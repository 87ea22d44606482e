// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/pkg/schedule"
)

var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "scheduler enqueues the monthly commission generation",
	Long:  `Enqueue a commission generation task for the previous month on the COMMISSION_SCHEDULE cron spec`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScheduler(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(schedulerCmd)
}

func runScheduler() error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	scheduler, err := schedule.NewScheduler(redisConnOpt(specs), specs.CommissionSchedule, logger)
	if err != nil {
		return err
	}

	// Run blocks until SIGTERM or SIGINT
	return scheduler.Run()
}
