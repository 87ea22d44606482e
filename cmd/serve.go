// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/partner-service/internal/kratos"
	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/monitoring/prometheus"
	"github.com/canonical/partner-service/internal/storage"
	"github.com/canonical/partner-service/internal/tracing"
	"github.com/canonical/partner-service/pkg/authentication"
	"github.com/canonical/partner-service/pkg/commission"
	"github.com/canonical/partner-service/pkg/courtesy"
	"github.com/canonical/partner-service/pkg/partner"
	"github.com/canonical/partner-service/pkg/program"
	"github.com/canonical/partner-service/pkg/referral"
	"github.com/canonical/partner-service/pkg/referralcode"
	"github.com/canonical/partner-service/pkg/tier"
	"github.com/canonical/partner-service/pkg/web"
	"github.com/canonical/partner-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		panic(err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("partner-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := openDatabase(context.Background(), specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			authentication.AuthConfig{
				Issuer:  specs.OIDCIssuer,
				JWKSURL: specs.OIDCJWKSURL,
				Policy: authentication.Policy{
					AllowedSubjects: specs.AllowedSubjects,
					RequiredScope:   specs.RequiredScope,
				},
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("Authentication is disabled, bearer tokens are taken as operator IDs")
	}
	authMiddleware := authentication.NewMiddleware(verifier, tracer, monitor, logger)

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	codes := referralcode.NewGenerator(s, tracer, logger, referralcode.WithPrefix(specs.ReferralCodePrefix))

	programService := program.NewService(s, tracer, monitor, logger)
	partnerService := partner.NewService(s, kratosClient, codes, tracer, monitor, logger)
	referralService := referral.NewService(s, tracer, monitor, logger)
	tierService := tier.NewService(s, tracer, monitor, logger)
	courtesyService := courtesy.NewService(s, tierService, tracer, monitor, logger)
	commissionService := commission.NewService(s, tracer, monitor, logger)
	webhookService := webhooks.NewService(referralService, tracer, monitor, logger)

	commissionAPI := commission.NewAPI(commissionService, logger)

	router := web.NewRouter(
		web.RouterConfig{
			APIs: []web.EndpointsInterface{
				program.NewAPI(programService, logger),
				partner.NewAPI(partnerService, logger),
				referral.NewAPI(referralService, logger),
				tier.NewAPI(tierService, logger),
				courtesy.NewAPI(courtesyService, logger),
				commissionAPI,
				webhooks.NewAPI(webhookService, logger),
			},
			Generator:   commissionAPI,
			Auth:        authMiddleware,
			CORSOrigins: specs.CORSAllowedOrigins,
		},
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr: fmt.Sprintf("0.0.0.0:%v", specs.Port),
		// commission generation walks every referral within a single request
		WriteTimeout: time.Minute * 5,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
