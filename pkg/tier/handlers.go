// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tier

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/partner-service/internal/http/types"
	"github.com/canonical/partner-service/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/partners/{id}/tier", a.getTierStatus)
}

func (a *API) getTierStatus(w http.ResponseWriter, r *http.Request) {
	status, err := a.service.GetTierStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.logger.Errorf("failed to compute tier status: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Tier status", status)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
