// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package referral

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/partner-service/internal/http/types"
	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/types"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/partners/{id}/referrals", a.createReferral)
	mux.Get("/api/v0/partners/{id}/referrals", a.listReferrals)
	mux.Patch("/api/v0/referrals/{id}", a.setStatus)
}

func (a *API) createReferral(w http.ResponseWriter, r *http.Request) {
	var req CreateReferralRequest
	if err := httptypes.Decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	origin := types.ReferralOriginManualCode
	if req.Origin != "" {
		origin = types.ReferralOrigin(req.Origin)
	}

	ref, err := a.service.CreateReferral(r.Context(), chi.URLParam(r, "id"), req.OrganizationID, origin)
	if err != nil {
		a.logger.Errorf("failed to create referral: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "Referral created", ref)
}

func (a *API) listReferrals(w http.ResponseWriter, r *http.Request) {
	refs, err := a.service.ListReferrals(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if refs == nil {
		refs = []*types.Referral{}
	}

	httptypes.WriteData(w, http.StatusOK, "List of referrals", refs)
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	var req SetStatusRequest
	if err := httptypes.Decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	ref, err := a.service.SetReferralStatus(r.Context(), chi.URLParam(r, "id"), types.ReferralStatus(req.Status))
	if err != nil {
		a.logger.Errorf("failed to update referral status: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Referral updated", ref)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
