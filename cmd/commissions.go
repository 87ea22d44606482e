// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/partner-service/internal/types"
	"github.com/canonical/partner-service/pkg/commission"
	"github.com/canonical/partner-service/pkg/schedule"
)

var commissionsCmd = &cobra.Command{
	Use:   "commissions",
	Short: "Generate and settle monthly commissions",
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the commissions of a month, defaults to the previous month",
	RunE: func(cmd *cobra.Command, args []string) error {
		month, _ := cmd.Flags().GetInt("month")
		year, _ := cmd.Flags().GetInt("year")
		partnerID, _ := cmd.Flags().GetString("partner-id")

		if month == 0 && year == 0 {
			month, year = schedule.PreviousPeriod(time.Now().UTC())
		}

		out := new(commission.Result)
		req := commission.GenerateRequest{Month: month, Year: year, PartnerID: partnerID}
		if _, err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/commissions/generate", nil, req, out); err != nil {
			return fmt.Errorf("failed to generate commissions for %02d/%d: %w", month, year, err)
		}

		return render(cmd.OutOrStdout(), out, func(w *tabwriter.Writer) {
			fmt.Fprintf(w, "Period:\t%02d/%d\n", month, year)
			fmt.Fprintf(w, "Generated:\t%d\n", out.Generated)
			fmt.Fprintf(w, "Ignored:\t%d\n", out.Ignored)
		})
	},
}

func printCommissions(cmd *cobra.Command, commissions []*types.Commission) error {
	return render(cmd.OutOrStdout(), commissions, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tPARTNER\tPERIOD\tSUBSCRIPTION\tPERCENTAGE\tCOMMISSION\tSTATUS\tNOTES")
		for _, c := range commissions {
			fmt.Fprintf(w, "%s\t%s\t%02d/%d\t%s\t%s\t%s\t%s\t%s\n",
				c.ID,
				c.PartnerID,
				c.PeriodMonth,
				c.PeriodYear,
				c.SubscriptionValue.StringFixed(2),
				c.PercentageApplied,
				c.CommissionValue.StringFixed(2),
				c.Status,
				deref(c.Notes),
			)
		}
	})
}

var listCommissionsCmd = &cobra.Command{
	Use:   "list",
	Short: "List commissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		month, _ := cmd.Flags().GetInt("month")
		year, _ := cmd.Flags().GetInt("year")
		partnerID, _ := cmd.Flags().GetString("partner-id")
		status, _ := cmd.Flags().GetString("status")
		page, _ := cmd.Flags().GetInt("page")

		query := map[string]string{
			"partner_id": partnerID,
			"status":     status,
			"page":       fmt.Sprint(page),
		}
		if month != 0 {
			query["month"] = fmt.Sprint(month)
		}
		if year != 0 {
			query["year"] = fmt.Sprint(year)
		}

		var out []*types.Commission
		if _, err := newAPIClient().do(cmd.Context(), http.MethodGet, "/api/v0/commissions", query, nil, &out); err != nil {
			return fmt.Errorf("failed to list commissions: %w", err)
		}

		return printCommissions(cmd, out)
	},
}

var payCmd = &cobra.Command{
	Use:   "pay [id]",
	Short: "Mark a pending commission as paid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := new(types.Commission)
		if _, err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/commissions/"+args[0]+"/pay", nil, nil, out); err != nil {
			return fmt.Errorf("failed to pay commission: %w", err)
		}

		return printCommissions(cmd, []*types.Commission{out})
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel [id]",
	Short: "Cancel a pending commission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, _ := cmd.Flags().GetString("notes")

		var body interface{}
		if notes != "" {
			body = commission.CancelRequest{Notes: notes}
		}

		out := new(types.Commission)
		if _, err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/commissions/"+args[0]+"/cancel", nil, body, out); err != nil {
			return fmt.Errorf("failed to cancel commission: %w", err)
		}

		return printCommissions(cmd, []*types.Commission{out})
	},
}

func init() {
	rootCmd.AddCommand(commissionsCmd)

	generateCmd.Flags().Int("month", 0, "Month to generate (1-12)")
	generateCmd.Flags().Int("year", 0, "Year to generate")
	generateCmd.Flags().String("partner-id", "", "Restrict the run to a single partner")
	generateCmd.MarkFlagsRequiredTogether("month", "year")

	listCommissionsCmd.Flags().Int("month", 0, "Filter by period month")
	listCommissionsCmd.Flags().Int("year", 0, "Filter by period year")
	listCommissionsCmd.Flags().String("partner-id", "", "Filter by partner")
	listCommissionsCmd.Flags().String("status", "", "Filter by status (pending, paid, cancelled)")
	listCommissionsCmd.Flags().Int("page", 1, "Page number")

	cancelCmd.Flags().String("notes", "", "Reason of the cancellation")

	commissionsCmd.AddCommand(generateCmd, listCommissionsCmd, payCmd, cancelCmd)
}
