// Copyright 2026 Wanderstack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package httperr

import (
	"encoding/json"
	"net/http"

	"github.com/wanderstack/brand-content-service/internal/logging"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError resolves err against the taxonomy and writes the structured
// error body. Internal errors are logged and masked; taxonomy errors carry
// their own message to the caller.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	status := Status(err)

	var body errorBody
	body.Error.Code = Code(err)

	if status == http.StatusInternalServerError {
		logger.Errorf("internal error: %v", err)
		body.Error.Message = "internal error"
	} else {
		body.Error.Message = err.Error()
	}

	JSON(w, status, body)
}
