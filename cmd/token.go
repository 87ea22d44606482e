// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

// adminScope is the scope the API requires by default, see REQUIRED_SCOPE.
const adminScope = "partners:admin"

type tokenOptions struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	IssuerURL    string
	Scopes       []string
}

type operatorToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Expiry      time.Time `json:"expiry"`
	Scopes      []string  `json:"scopes"`
}

var tokenOpts tokenOptions

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an operator access token for the partner admin API",
	Long: `Get an access token using the Client Credentials flow.

The token is printed on its own so it can be passed to --token, e.g.
  app partner list --token "$(app token --client-id ops --client-secret ...)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := fetchOperatorToken(cmd.Context(), tokenOpts)
		if err != nil {
			return err
		}

		return printOperatorToken(cmd.OutOrStdout(), cmd.ErrOrStderr(), tok)
	},
}

func fetchOperatorToken(ctx context.Context, opts tokenOptions) (*operatorToken, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	tokenURL := opts.TokenURL
	if tokenURL == "" {
		if opts.IssuerURL == "" {
			return nil, fmt.Errorf("either --token-url or --issuer-url must be provided")
		}

		provider, err := oidc.NewProvider(ctx, opts.IssuerURL)
		if err != nil {
			return nil, fmt.Errorf("failed to discover token endpoint from issuer: %v", err)
		}
		tokenURL = provider.Endpoint().TokenURL
	}

	config := &clientcredentials.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		TokenURL:     tokenURL,
		Scopes:       opts.Scopes,
	}

	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %v", err)
	}

	granted := opts.Scopes
	if scope, ok := token.Extra("scope").(string); ok && scope != "" {
		granted = strings.Fields(scope)
	}

	return &operatorToken{
		AccessToken: token.AccessToken,
		TokenType:   token.Type(),
		Expiry:      token.Expiry,
		Scopes:      granted,
	}, nil
}

// printOperatorToken writes the bare token to out, or the full token as JSON
// with --output json. Expiry and scope hints go to errOut.
func printOperatorToken(out, errOut io.Writer, tok *operatorToken) error {
	if outputFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tok)
	}

	if _, err := fmt.Fprintln(out, tok.AccessToken); err != nil {
		return err
	}

	if !tok.Expiry.IsZero() {
		fmt.Fprintf(errOut, "expires %s\n", tok.Expiry.Format(time.RFC3339))
	}

	for _, s := range tok.Scopes {
		if s == adminScope {
			return nil
		}
	}
	fmt.Fprintf(errOut, "warning: token was not granted %s, admin endpoints will reject it\n", adminScope)

	return nil
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenOpts.ClientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&tokenOpts.ClientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenOpts.TokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&tokenOpts.IssuerURL, "issuer-url", os.Getenv("OIDC_ISSUER"), "Issuer URL for OIDC discovery (defaults to $OIDC_ISSUER)")
	tokenCmd.Flags().StringSliceVar(&tokenOpts.Scopes, "scopes", []string{adminScope}, "Scopes (comma-separated)")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}
