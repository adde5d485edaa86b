// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/contentdemo/contentdemo/server/request_context"
)

type errorData struct {
	Error      string `json:"error"`
	Field      string `json:"field,omitempty"`
	StatusCode int    `json:"status"`
	RequestID  string `json:"requestId,omitempty"`
}

// ErrorPage writes the JSON error body for the request's RequestError and
// StatusCode. The status line must already have been written.
//
// Internal error details are not exposed to the client.
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	rc := request_context.FromRequest(r)

	data := errorData{
		Error:      http.StatusText(rc.StatusCode),
		StatusCode: rc.StatusCode,
		RequestID:  rc.RequestID,
	}

	var badRequest *BadRequestError
	if errors.As(rc.RequestError, &badRequest) {
		data.Error = badRequest.Reason
		data.Field = badRequest.Field
	}

	encoded, err := jsonBody(data)
	if err != nil {
		log.Err(err).Msg("Failed to encode error page")

		return
	}

	if _, err := w.Write(encoded); err != nil {
		log.Err(err).Msg("Failed to write error page")
	}
}

// NotFound responds 404 for paths no other route matches.
func NotFound(w http.ResponseWriter, r *http.Request) error {
	http.NotFound(w, r)

	return nil
}
