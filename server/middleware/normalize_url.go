// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"
)

// NormalizeURL is a middleware that redirects paths with a trailing slash
// (except root) to the path without it.
//
// The query string is kept, so api, locale and enable_editorial_features
// survive the redirect.
func NormalizeURL(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if hasTrailingSlash(r) {
		removeTrailingSlash(w, r)

		return
	}

	next.ServeHTTP(w, r)
}

// hasTrailingSlash checks if a request path has a trailing slash (except root
// and the pprof index, which needs it).
func hasTrailingSlash(r *http.Request) bool {
	return r.URL.Path != "/" &&
		!strings.HasPrefix(r.URL.Path, "/debug/") &&
		strings.HasSuffix(r.URL.Path, "/")
}

// removeTrailingSlash removes trailing slashes and redirects.
func removeTrailingSlash(w http.ResponseWriter, r *http.Request) {
	target := *r.URL

	target.Path = strings.TrimRight(target.Path, "/")
	target.RawPath = ""

	if target.Path == "" {
		target.Path = "/"
	}

	// Only the path and query are used, so the redirect stays on this host.
	http.Redirect(w, r, target.RequestURI(), http.StatusPermanentRedirect)
}
