// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	domain "github.com/canonical/partner-service/internal/types"
)

// ErrorResponse is the standard json body for failed requests.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type Pagination struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

// Response is the standard json body for successful requests.
type Response struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Meta    *Pagination `json:"_meta,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// StatusFromError maps domain errors onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPreconditionFailed):
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteData(w http.ResponseWriter, status int, message string, data interface{}) {
	WriteJSON(w, status, Response{Data: data, Message: message, Status: status})
}

func WritePage(w http.ResponseWriter, message string, data interface{}, meta Pagination) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Message: message, Status: http.StatusOK, Meta: &meta})
}

// WriteError writes err with the status derived from its domain error.
// Messages of unexpected errors are not exposed.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}

// Decode parses the json request body into v and runs struct validation on it.
func Decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.Validationf("invalid request body: %v", err)
	}

	if err := validate.Struct(v); err != nil {
		return domain.Validationf("%v", err)
	}

	return nil
}

// ParsePagination reads the page and size query parameters, zero when absent.
func ParsePagination(r *http.Request) (page, size int64) {
	q := r.URL.Query()
	page, _ = strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ = strconv.ParseInt(q.Get("size"), 10, 64)
	return page, size
}
