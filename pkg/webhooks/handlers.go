// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

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
	mux.Post("/api/v0/webhooks/signup", a.signup)
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	var event SignupEvent
	if err := httptypes.Decode(r, &event); err != nil {
		a.logger.Errorf("invalid signup webhook payload: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	referral, err := a.service.HandleSignup(r.Context(), event)
	if err != nil {
		a.logger.Errorf("failed to handle signup of organization %s: %v", event.OrganizationID, err)
		httptypes.WriteError(w, err)
		return
	}

	if referral == nil {
		httptypes.WriteData(w, http.StatusOK, "No referral code, nothing to attribute", nil)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, "Referral created", referral)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
