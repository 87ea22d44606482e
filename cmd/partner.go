// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/canonical/partner-service/internal/types"
	"github.com/canonical/partner-service/pkg/courtesy"
	"github.com/canonical/partner-service/pkg/partner"
	"github.com/canonical/partner-service/pkg/referral"
	"github.com/canonical/partner-service/pkg/tier"
)

var partnerCmd = &cobra.Command{
	Use:   "partner",
	Short: "Manage partners and their referrals",
}

func printPartners(cmd *cobra.Command, partners []*partner.PartnerView) error {
	return render(cmd.OutOrStdout(), partners, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tORGANIZATION\tCODE\tSTATUS\tPERCENTAGE\tTIER\tJOINED_AT")
		for _, p := range partners {
			percentage := "default"
			if p.PercentageOverride.Valid {
				percentage = p.PercentageOverride.Decimal.String()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.OrganizationID, p.ReferralCode, p.Status, percentage, deref(p.TierOverride), p.JoinedAt.Format(time.DateOnly))
		}
	})
}

func printPartner(cmd *cobra.Command, p *partner.PartnerView) error {
	return render(cmd.OutOrStdout(), p, func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "ID:\t%s\n", p.ID)
		fmt.Fprintf(w, "Organization:\t%s\n", p.OrganizationID)
		fmt.Fprintf(w, "User:\t%s\n", p.UserID)
		fmt.Fprintf(w, "Status:\t%s\n", p.Status)
		if p.SuspensionReason != nil {
			fmt.Fprintf(w, "Suspension reason:\t%s\n", *p.SuspensionReason)
		}
		fmt.Fprintf(w, "Referral code:\t%s\n", p.ReferralCode)
		if p.ReferralLink != "" {
			fmt.Fprintf(w, "Referral link:\t%s\n", p.ReferralLink)
		}
		if p.PercentageOverride.Valid {
			fmt.Fprintf(w, "Percentage override:\t%s\n", p.PercentageOverride.Decimal)
		}
		if p.TierOverride != nil {
			fmt.Fprintf(w, "Tier override:\t%s\n", *p.TierOverride)
		}
		if p.Contact != nil {
			fmt.Fprintf(w, "Contact:\t%s <%s>\n", p.Contact.Name, p.Contact.Email)
		}
	})
}

var createPartnerCmd = &cobra.Command{
	Use:   "create",
	Short: "Promote an organization to partner",
	RunE: func(cmd *cobra.Command, args []string) error {
		orgID, _ := cmd.Flags().GetString("organization-id")
		user, _ := cmd.Flags().GetString("user")
		percentage, _ := cmd.Flags().GetString("percentage")

		req := partner.CreatePartnerRequest{OrganizationID: orgID, UserID: user}
		if percentage != "" {
			p, err := decimal.NewFromString(percentage)
			if err != nil {
				return fmt.Errorf("invalid percentage %q: %w", percentage, err)
			}
			req.PercentageOverride = &p
		}

		out := new(partner.PartnerView)
		if _, err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/partners", nil, req, out); err != nil {
			return fmt.Errorf("failed to create partner: %w", err)
		}

		return printPartner(cmd, out)
	},
}

var listPartnersCmd = &cobra.Command{
	Use:   "list",
	Short: "List partners",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		page, _ := cmd.Flags().GetInt("page")

		var out []*partner.PartnerView
		query := map[string]string{"status": status, "page": fmt.Sprint(page)}
		if _, err := newAPIClient().do(cmd.Context(), http.MethodGet, "/api/v0/partners", query, nil, &out); err != nil {
			return fmt.Errorf("failed to list partners: %w", err)
		}

		return printPartners(cmd, out)
	},
}

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List organizations that are not partners yet",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out []*types.Organization
		if _, err := newAPIClient().do(cmd.Context(), http.MethodGet, "/api/v0/partners/candidates", nil, nil, &out); err != nil {
			return fmt.Errorf("failed to list candidates: %w", err)
		}

		return render(cmd.OutOrStdout(), out, func(w *tabwriter.Writer) {
			fmt.Fprintln(w, "ID\tNAME\tSTATUS")
			for _, o := range out {
				fmt.Fprintf(w, "%s\t%s\t%s\n", o.ID, o.Name, o.Status)
			}
		})
	},
}

var getPartnerCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a partner with its referral link and contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := new(partner.PartnerView)
		if _, err := newAPIClient().do(cmd.Context(), http.MethodGet, "/api/v0/partners/"+args[0], nil, nil, out); err != nil {
			return fmt.Errorf("failed to get partner: %w", err)
		}

		return printPartner(cmd, out)
	},
}

func updatePartner(cmd *cobra.Command, id string, req partner.UpdatePartnerRequest) error {
	out := new(partner.PartnerView)
	if _, err := newAPIClient().do(cmd.Context(), http.MethodPatch, "/api/v0/partners/"+id, nil, req, out); err != nil {
		return fmt.Errorf("failed to update partner: %w", err)
	}

	return printPartner(cmd, out)
}

func statusCmd(use, short string, status types.PartnerStatus, withReason bool) *cobra.Command {
	c := &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := string(status)
			req := partner.UpdatePartnerRequest{Status: &s}
			if withReason {
				reason, _ := cmd.Flags().GetString("reason")
				req.SuspensionReason = &reason
			}
			return updatePartner(cmd, args[0], req)
		},
	}

	if withReason {
		c.Flags().String("reason", "", "Reason of the suspension")
		_ = c.MarkFlagRequired("reason")
	}

	return c
}

var setPercentageCmd = &cobra.Command{
	Use:   "set-percentage [id] [percentage]",
	Short: "Override the commission percentage of a partner, or clear it with --clear",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reset, _ := cmd.Flags().GetBool("clear")

		req := partner.UpdatePartnerRequest{ClearPercentageOverride: reset}
		if !reset {
			if len(args) != 2 {
				return fmt.Errorf("a percentage is required unless --clear is set")
			}
			p, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid percentage %q: %w", args[1], err)
			}
			req.PercentageOverride = &p
		}

		return updatePartner(cmd, args[0], req)
	},
}

var setTierCmd = &cobra.Command{
	Use:   "set-tier [id] [tier]",
	Short: "Pin a partner to a tier, or clear it with --clear",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reset, _ := cmd.Flags().GetBool("clear")

		req := partner.UpdatePartnerRequest{ClearTierOverride: reset}
		if !reset {
			if len(args) != 2 {
				return fmt.Errorf("a tier name is required unless --clear is set")
			}
			req.TierOverride = &args[1]
		}

		return updatePartner(cmd, args[0], req)
	},
}

var tierCmd = &cobra.Command{
	Use:   "tier [id]",
	Short: "Show the tier progression of a partner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := new(tier.Status)
		if _, err := newAPIClient().do(cmd.Context(), http.MethodGet, "/api/v0/partners/"+args[0]+"/tier", nil, nil, out); err != nil {
			return fmt.Errorf("failed to get tier status: %w", err)
		}

		return render(cmd.OutOrStdout(), out, func(w *tabwriter.Writer) {
			fmt.Fprintf(w, "State:\t%s\n", out.State)
			fmt.Fprintf(w, "Referrals:\t%d\n", out.ReferralCount)
			if out.CurrentTier != nil {
				fmt.Fprintf(w, "Current tier:\t%s\n", out.CurrentTier.Name)
			}
			if out.NextTier != nil {
				fmt.Fprintf(w, "Next tier:\t%s (%d more)\n", out.NextTier.Name, out.ReferralCountNeeded)
			}
			fmt.Fprintf(w, "Progress:\t%s%%\n", out.ProgressPercent.StringFixed(2))
			fmt.Fprintf(w, "Description:\t%s\n", out.Description)
		})
	},
}

var courtesyCmd = &cobra.Command{
	Use:   "courtesy [id]",
	Short: "Show the courtesy status of a partner, or grant it with --apply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apply, _ := cmd.Flags().GetBool("apply")
		validUntil, _ := cmd.Flags().GetString("valid-until")

		client := newAPIClient()
		path := "/api/v0/partners/" + args[0] + "/courtesy"

		if apply {
			req := courtesy.ApplyCourtesyRequest{}
			if validUntil != "" {
				t, err := time.Parse(time.DateOnly, validUntil)
				if err != nil {
					return fmt.Errorf("invalid --valid-until %q, expected YYYY-MM-DD: %w", validUntil, err)
				}
				req.ValidUntil = &t
			}

			if _, err := client.do(cmd.Context(), http.MethodPost, path, nil, req, nil); err != nil {
				return fmt.Errorf("failed to apply courtesy: %w", err)
			}
		}

		out := new(courtesy.Status)
		if _, err := client.do(cmd.Context(), http.MethodGet, path, nil, nil, out); err != nil {
			return fmt.Errorf("failed to get courtesy status: %w", err)
		}

		return render(cmd.OutOrStdout(), out, func(w *tabwriter.Writer) {
			fmt.Fprintf(w, "Eligible:\t%v\n", out.Eligible)
			fmt.Fprintf(w, "Applied:\t%v\n", out.Applied)
			if out.AppliedAt != nil {
				fmt.Fprintf(w, "Applied at:\t%s\n", out.AppliedAt.Format(time.DateOnly))
			}
			if out.ValidUntil != nil {
				fmt.Fprintf(w, "Valid until:\t%s (expired: %v)\n", out.ValidUntil.Format(time.DateOnly), out.Expired)
			}
			if out.RenewalDueAt != nil {
				fmt.Fprintf(w, "Renewal due:\t%s\n", out.RenewalDueAt.Format(time.DateOnly))
				fmt.Fprintf(w, "Renewal referrals:\t%d/%d\n", out.ReferralsSinceApplied, out.RenewalReferralGoal)
			}
		})
	},
}

var referralsCmd = &cobra.Command{
	Use:   "referrals [id]",
	Short: "List the referrals of a partner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out []*types.Referral
		if _, err := newAPIClient().do(cmd.Context(), http.MethodGet, "/api/v0/partners/"+args[0]+"/referrals", nil, nil, &out); err != nil {
			return fmt.Errorf("failed to list referrals: %w", err)
		}

		return render(cmd.OutOrStdout(), out, func(w *tabwriter.Writer) {
			fmt.Fprintln(w, "ID\tORGANIZATION\tPERCENTAGE\tORIGIN\tSTATUS\tCREATED_AT")
			for _, r := range out {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.OrganizationID, r.PercentageSnapshot, r.Origin, r.Status, r.CreatedAt.Format(time.DateOnly))
			}
		})
	},
}

var referCmd = &cobra.Command{
	Use:   "refer [id]",
	Short: "Attribute an organization to a partner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgID, _ := cmd.Flags().GetString("organization-id")
		origin, _ := cmd.Flags().GetString("origin")

		out := new(types.Referral)
		req := referral.CreateReferralRequest{OrganizationID: orgID, Origin: origin}
		if _, err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/partners/"+args[0]+"/referrals", nil, req, out); err != nil {
			return fmt.Errorf("failed to create referral: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Referral created: %s (percentage %s)\n", out.ID, out.PercentageSnapshot)
		return nil
	},
}

var referralStatusCmd = &cobra.Command{
	Use:   "referral-status [referral-id] [status]",
	Short: "Move a referral to active, inactive or cancelled",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := new(types.Referral)
		req := referral.SetStatusRequest{Status: args[1]}
		if _, err := newAPIClient().do(cmd.Context(), http.MethodPatch, "/api/v0/referrals/"+args[0], nil, req, out); err != nil {
			return fmt.Errorf("failed to update referral: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Referral %s is %s\n", out.ID, out.Status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(partnerCmd)

	createPartnerCmd.Flags().String("organization-id", "", "Organization to promote")
	createPartnerCmd.Flags().String("user", "", "User ID of the partner contact")
	createPartnerCmd.Flags().String("percentage", "", "Commission percentage override")
	_ = createPartnerCmd.MarkFlagRequired("organization-id")
	_ = createPartnerCmd.MarkFlagRequired("user")

	listPartnersCmd.Flags().String("status", "", "Filter by status (active, suspended, inactive)")
	listPartnersCmd.Flags().Int("page", 1, "Page number")

	setPercentageCmd.Flags().Bool("clear", false, "Fall back to the program default")
	setTierCmd.Flags().Bool("clear", false, "Remove the tier override")

	courtesyCmd.Flags().Bool("apply", false, "Grant the courtesy plan")
	courtesyCmd.Flags().String("valid-until", "", "Courtesy expiry date (YYYY-MM-DD), indefinite when empty")

	referCmd.Flags().String("organization-id", "", "Referred organization")
	referCmd.Flags().String("origin", string(types.ReferralOriginManualCode), "Referral origin (link, manual_code, pre_registration)")
	_ = referCmd.MarkFlagRequired("organization-id")

	partnerCmd.AddCommand(
		createPartnerCmd,
		listPartnersCmd,
		candidatesCmd,
		getPartnerCmd,
		statusCmd("suspend", "Suspend a partner", types.PartnerStatusSuspended, true),
		statusCmd("reactivate", "Reactivate a partner", types.PartnerStatusActive, false),
		statusCmd("deactivate", "Deactivate a partner", types.PartnerStatusInactive, false),
		setPercentageCmd,
		setTierCmd,
		tierCmd,
		courtesyCmd,
		referralsCmd,
		referCmd,
		referralStatusCmd,
	)
}
