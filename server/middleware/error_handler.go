// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"errors"
	"maps"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	"codeberg.org/contentdemo/contentdemo/config"
	"codeberg.org/contentdemo/contentdemo/core/audit"
	"codeberg.org/contentdemo/contentdemo/core/metrics"
	"codeberg.org/contentdemo/contentdemo/server/request_context"
	"codeberg.org/contentdemo/contentdemo/server/routes"
)

// CatchError wraps HTTP handlers that return an error, providing centralized error handling,
// response buffering, and request logging.
//
// The handler's output is buffered in an httptest.ResponseRecorder and any
// returned error is stored in the request context. Then:
//   - A routes.BadRequestError discards the buffered response and renders a
//     400 error body naming the offending field.
//   - Any other error, when the handler did not already write an error status,
//     is treated as an internal error and renders a 500 error body.
//   - A 404 written by the handler is replaced with the generic error body.
//   - Otherwise the buffered response is written to the client as is.
//
// Finally, the request is logged via the audit package.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := request_context.FromRequest(r)

		span := audit.Span{
			RequestID: ctx.RequestID,
			Method:    r.Method,
			URL:       r.URL.String(),
			API:       ctx.State.API().String(),
		}

		// The handler runs inside the span's trace task.
		r = r.WithContext(span.Begin(r.Context()))
		defer span.End()

		recorder := httptest.NewRecorder()

		ctx.RequestError = handler(recorder, r)

		var badRequest *routes.BadRequestError

		switch {
		case errors.As(ctx.RequestError, &badRequest):
			ctx.StatusCode = http.StatusBadRequest
			writeErrorPage(w, r, ctx.StatusCode)

		case (ctx.RequestError != nil && recorder.Code < http.StatusBadRequest) || recorder.Code == http.StatusNotFound:
			if recorder.Code == http.StatusNotFound {
				ctx.StatusCode = http.StatusNotFound
			} else {
				ctx.StatusCode = http.StatusInternalServerError
			}

			writeErrorPage(w, r, ctx.StatusCode)

		default:
			if recorder.Code == 0 {
				recorder.Code = http.StatusOK
			}

			ctx.StatusCode = recorder.Code
			maps.Copy(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			if _, err := recorder.Body.WriteTo(w); err != nil {
				log.Err(err).Msg("Failed to write response body")
			}
		}

		span.End()
		span.StatusCode = ctx.StatusCode
		span.Error = ctx.RequestError

		metrics.RecordResponse(ctx.State.API(), r.Method, ctx.StatusCode, span.Duration())

		if !config.Global.ShouldSkipServerLogging(r.URL.Path) {
			span.Log()
		}
	}
}

func writeErrorPage(w http.ResponseWriter, r *http.Request, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	routes.ErrorPage(w, r)
}
