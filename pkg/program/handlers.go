// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package program

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	httptypes "github.com/canonical/partner-service/internal/http/types"
	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/types"
)

type UpdateConfigRequest struct {
	DefaultPercentage decimal.Decimal     `json:"default_percentage"`
	CourtesyRules     types.CourtesyRules `json:"courtesy_rules"`
	BaseReferralURL   string              `json:"base_referral_url" validate:"omitempty,url"`
	Notes             string              `json:"notes"`
}

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/program", a.getConfig)
	mux.Put("/api/v0/program", a.updateConfig)
}

func (a *API) getConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := a.service.GetConfig(r.Context())
	if err != nil {
		a.logger.Errorf("failed to get program config: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Program configuration", cfg)
}

func (a *API) updateConfig(w http.ResponseWriter, r *http.Request) {
	var req UpdateConfigRequest
	if err := httptypes.Decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	cfg, err := a.service.UpdateConfig(r.Context(), &types.ProgramConfig{
		DefaultPercentage: req.DefaultPercentage,
		CourtesyRules:     req.CourtesyRules,
		BaseReferralURL:   req.BaseReferralURL,
		Notes:             req.Notes,
	})
	if err != nil {
		a.logger.Errorf("failed to update program config: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Program configuration updated", cfg)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
