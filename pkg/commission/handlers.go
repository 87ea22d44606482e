// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package commission

import (
	"net/http"
	"strconv"

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

// RegisterGenerateEndpoint mounts the generation route. It must stay outside
// the per-request transaction so that rows committed before a failure are
// kept.
func (a *API) RegisterGenerateEndpoint(mux chi.Router) {
	mux.Post("/api/v0/commissions/generate", a.generate)
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/commissions", a.listCommissions)
	mux.Post("/api/v0/commissions/{id}/pay", a.pay)
	mux.Post("/api/v0/commissions/{id}/cancel", a.cancel)
}

func (a *API) generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := httptypes.Decode(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	result, err := a.service.GenerateCommissions(r.Context(), req.Month, req.Year, req.PartnerID)
	if err != nil {
		a.logger.Errorf("commission generation failed: %v", err)

		status := httptypes.StatusFromError(err)
		httptypes.WriteJSON(w, status, httptypes.Response{
			Data:    result,
			Message: err.Error(),
			Status:  status,
		})
		return
	}

	httptypes.WriteData(w, http.StatusOK, result.String(), result)
}

func (a *API) listCommissions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := types.CommissionFilter{
		PartnerID: q.Get("partner_id"),
		Status:    types.CommissionStatus(q.Get("status")),
	}

	var err error
	if filter.PeriodMonth, err = intParam(q.Get("month")); err != nil {
		httptypes.WriteError(w, types.Validationf("invalid month: %v", err))
		return
	}
	if filter.PeriodYear, err = intParam(q.Get("year")); err != nil {
		httptypes.WriteError(w, types.Validationf("invalid year: %v", err))
		return
	}

	page, size := httptypes.ParsePagination(r)
	pageSize := db.PageSize(size)

	commissions, err := a.service.ListCommissions(r.Context(), filter, db.Offset(page, pageSize), pageSize)
	if err != nil {
		a.logger.Errorf("failed to list commissions: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	if commissions == nil {
		commissions = []*types.Commission{}
	}

	httptypes.WritePage(w, "List of commissions", commissions, httptypes.Pagination{Page: max(page, 1), Size: int64(pageSize)})
}

func (a *API) pay(w http.ResponseWriter, r *http.Request) {
	c, err := a.service.MarkCommissionPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.logger.Errorf("failed to mark commission paid: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Commission paid", c)
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if r.ContentLength != 0 {
		if err := httptypes.Decode(r, &req); err != nil {
			httptypes.WriteError(w, err)
			return
		}
	}

	c, err := a.service.CancelCommission(r.Context(), chi.URLParam(r, "id"), req.Notes)
	if err != nil {
		a.logger.Errorf("failed to cancel commission: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, "Commission cancelled", c)
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
