// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"strings"

	"codeberg.org/contentdemo/contentdemo/config"
	"codeberg.org/contentdemo/contentdemo/server/request_context"
)

// baseHeaders defines the default headers to be set in responses.
//
// NOTE: we intentionally don't set CORP or HSTS headers.
var baseHeaders = http.Header{
	"Referrer-Policy":         {"no-referrer"},
	"X-Frame-Options":         {"DENY"},
	"X-Content-Type-Options":  {"nosniff"},
	"Content-Security-Policy": {strings.Join(baseCSP, "; ") + ";"},
	// Responses depend on the settings cookie and the api/locale query.
	"Vary":          {"Cookie"},
	"Cache-Control": {"private, no-cache"},
}

// baseCSP defines the CSP directives. Responses are JSON only.
var baseCSP = []string{
	"default-src 'none'",
	"base-uri 'none'",
	"form-action 'self'",
	"frame-ancestors 'none'",
}

// SetResponseHeaders adds default headers to HTTP responses.
//
// It must run after the request context is attached.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	rc := request_context.FromRequest(r)

	headers.Set("X-Request-Id", rc.RequestID)
	headers.Set("Content-Api", rc.State.API().String())
	headers.Set("Demo-Version", config.BuildVersion)
	headers.Set("Demo-Revision", config.Global.Build.Revision())

	next.ServeHTTP(w, r)
}
