// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package courtesy

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
	mux.Get("/api/v0/partners/{id}/courtesy", a.getStatus)
	mux.Post("/api/v0/partners/{id}/courtesy", a.apply)
}

func (a *API) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := a.service.GetCourtesyStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.logger.Errorf("failed to get courtesy status: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Courtesy status", status)
}

func (a *API) apply(w http.ResponseWriter, r *http.Request) {
	var req ApplyCourtesyRequest
	if r.ContentLength != 0 {
		if err := httptypes.Decode(r, &req); err != nil {
			httptypes.WriteError(w, err)
			return
		}
	}

	p, err := a.service.ApplyCourtesy(r.Context(), chi.URLParam(r, "id"), req.ValidUntil)
	if err != nil {
		a.logger.Errorf("failed to apply courtesy: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Courtesy applied", p)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
