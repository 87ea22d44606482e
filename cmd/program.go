// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/partner-service/internal/types"
)

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Show the partner program configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := new(types.ProgramConfig)
		if _, err := newAPIClient().do(cmd.Context(), http.MethodGet, "/api/v0/program", nil, nil, out); err != nil {
			return fmt.Errorf("failed to get program config: %w", err)
		}

		return render(cmd.OutOrStdout(), out, func(w *tabwriter.Writer) {
			fmt.Fprintf(w, "Default percentage:\t%s%%\n", out.DefaultPercentage)
			fmt.Fprintf(w, "Base referral URL:\t%s\n", out.BaseReferralURL)
			fmt.Fprintf(w, "Courtesy enabled:\t%v\n", out.CourtesyRules.Enabled)
			fmt.Fprintf(w, "Courtesy goal:\t%d referrals\n", out.CourtesyRules.InitialReferralGoal)
			if out.CourtesyRules.RenewalPeriodMonths > 0 {
				fmt.Fprintf(w, "Courtesy renewal:\t%d referrals every %d months, %d days grace\n",
					out.CourtesyRules.RenewalReferralGoal,
					out.CourtesyRules.RenewalPeriodMonths,
					out.CourtesyRules.GracePeriodDays,
				)
			}
			for _, t := range out.CourtesyRules.Tiers {
				fmt.Fprintf(w, "Tier %s:\t%d referrals\n", t.Name, t.ReferralGoal)
			}
			if out.Notes != "" {
				fmt.Fprintf(w, "Notes:\t%s\n", out.Notes)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(programCmd)
}
