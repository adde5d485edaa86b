// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package set_request_context

import (
	"net/http"

	"codeberg.org/contentdemo/contentdemo/config"
	"codeberg.org/contentdemo/contentdemo/core/metrics"
	"codeberg.org/contentdemo/contentdemo/core/requeststate"
	"codeberg.org/contentdemo/contentdemo/server/middleware"
	"codeberg.org/contentdemo/contentdemo/server/request_context"
)

// WithRequestContext is a middleware that attaches a RequestContext, with
// state resolved against config.Global, to each HTTP request.
func WithRequestContext(w http.ResponseWriter, r *http.Request, next http.Handler) {
	New(config.Global.Defaults())(w, r, next)
}

// New returns a middleware that resolves request state against defaults.
func New(defaults requeststate.Defaults) middleware.Middleware {
	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		ctx := request_context.WithRequestContext(r.Context(), r, defaults)

		metrics.RecordStateResolution(request_context.FromContext(ctx).State)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
