// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/someonegg/panelmatch"
	"github.com/someonegg/panelmatch/catalog"
)

type apiError struct {
	Status int
	Code   string
	Err    error
}

func (e *apiError) Error() string { return e.Err.Error() }

func (e *apiError) Unwrap() error { return e.Err }

func badRequest(err error) *apiError {
	return &apiError{Status: http.StatusBadRequest, Code: "bad_request", Err: err}
}

// toAPIError maps service errors onto HTTP statuses.
func toAPIError(err error) *apiError {
	var ae *apiError
	switch {
	case errors.As(err, &ae):
		return ae
	case errors.Is(err, catalog.ErrUnauthorized):
		return &apiError{Status: http.StatusUnauthorized, Code: "unauthorized", Err: err}
	case errors.Is(err, catalog.ErrBadAction):
		return &apiError{Status: http.StatusBadRequest, Code: "bad_action", Err: err}
	case errors.Is(err, panelmatch.ErrInvalidQuery):
		return &apiError{Status: http.StatusBadRequest, Code: "invalid_query", Err: err}
	default:
		return &apiError{Status: http.StatusInternalServerError, Code: "internal", Err: err}
	}
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondError(c *gin.Context, err error) {
	ae := toAPIError(err)
	msg := ae.Err.Error()
	if ae.Status == http.StatusInternalServerError {
		// store details stay in the log
		msg = "internal error"
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(ae.Status, errorBody{Error: msg, Code: ae.Code})
}
