// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package partner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/partner-service/internal/db"
	httptypes "github.com/canonical/partner-service/internal/http/types"
	"github.com/canonical/partner-service/internal/logging"
	"github.com/canonical/partner-service/internal/types"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/partners", a.createPartner)
	mux.Get("/api/v0/partners", a.listPartners)
	mux.Get("/api/v0/partners/candidates", a.listCandidates)
	mux.Get("/api/v0/partners/{id}", a.getPartner)
	mux.Patch("/api/v0/partners/{id}", a.updatePartner)
}

func (a *API) createPartner(w http.ResponseWriter, r *http.Request) {
	var req CreatePartnerRequest
	if err := httptypes.Decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	p, err := a.service.CreatePartner(r.Context(), req.OrganizationID, req.UserID, req.PercentageOverride)
	if err != nil {
		a.logger.Errorf("failed to create partner: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "Partner created", a.view(r, p, false))
}

func (a *API) listPartners(w http.ResponseWriter, r *http.Request) {
	page, size := httptypes.ParsePagination(r)
	pageSize := db.PageSize(size)

	partners, err := a.service.ListPartners(
		r.Context(),
		types.PartnerStatus(r.URL.Query().Get("status")),
		db.Offset(page, pageSize),
		pageSize,
	)
	if err != nil {
		a.logger.Errorf("failed to list partners: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	if partners == nil {
		partners = []*types.Partner{}
	}

	httptypes.WritePage(w, "List of partners", partners, httptypes.Pagination{Page: max(page, 1), Size: int64(pageSize)})
}

func (a *API) listCandidates(w http.ResponseWriter, r *http.Request) {
	orgs, err := a.service.ListCandidates(r.Context())
	if err != nil {
		a.logger.Errorf("failed to list partner candidates: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "List of partner candidates", orgs)
}

func (a *API) getPartner(w http.ResponseWriter, r *http.Request) {
	p, err := a.service.GetPartner(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Partner detail", a.view(r, p, true))
}

func (a *API) updatePartner(w http.ResponseWriter, r *http.Request) {
	var req UpdatePartnerRequest
	if err := httptypes.Decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	update := PartnerUpdate{
		SuspensionReason:        req.SuspensionReason,
		PercentageOverride:      req.PercentageOverride,
		ClearPercentageOverride: req.ClearPercentageOverride,
		TierOverride:            req.TierOverride,
		ClearTierOverride:       req.ClearTierOverride,
	}

	if req.Status != nil {
		status := types.PartnerStatus(*req.Status)
		update.Status = &status
	}

	p, err := a.service.UpdatePartner(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		a.logger.Errorf("failed to update partner: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Partner updated", a.view(r, p, false))
}

// view decorates p with its referral link and, when asked, its point of
// contact. Lookup failures only degrade the view.
func (a *API) view(r *http.Request, p *types.Partner, withContact bool) PartnerView {
	v := PartnerView{Partner: p}

	link, err := a.service.ReferralLink(r.Context(), p)
	if err != nil {
		a.logger.Warnf("failed to build referral link for partner %s: %v", p.ID, err)
	}
	v.ReferralLink = link

	if withContact {
		contact, err := a.service.GetContact(r.Context(), p)
		if err != nil {
			a.logger.Warnf("failed to resolve contact for partner %s: %v", p.ID, err)
		}
		v.Contact = contact
	}

	return v
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
