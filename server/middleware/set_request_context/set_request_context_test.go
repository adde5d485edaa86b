// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package set_request_context

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/contentdemo/contentdemo/core/cookie"
	"codeberg.org/contentdemo/contentdemo/core/requeststate"
	"codeberg.org/contentdemo/contentdemo/server/middleware"
	"codeberg.org/contentdemo/contentdemo/server/request_context"
)

var testDefaults = requeststate.Defaults{
	SpaceID:       "space",
	DeliveryToken: "delivery",
	PreviewToken:  "preview",
	Locale:        "en-US",
}

// capture runs the middleware for req and returns the request context seen
// by the next handler.
func capture(t *testing.T, req *http.Request) *request_context.RequestContext {
	t.Helper()

	var rc *request_context.RequestContext

	handler := middleware.Wrap(New(testDefaults), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc = request_context.FromRequest(r)

		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, rc, "next handler was not called")

	return rc
}

// TestNew_AttachesContext tests that request context is properly attached.
func TestNew_AttachesContext(t *testing.T) {
	t.Parallel()

	rc := capture(t, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.NotEmpty(t, rc.RequestID)
	assert.Equal(t, http.StatusOK, rc.StatusCode)
	assert.NoError(t, rc.RequestError)
	assert.Equal(t, requeststate.FromDefaults(testDefaults), rc.State)
}

// TestNew_GeneratesUniqueRequestIDs tests that each request gets a unique ID.
func TestNew_GeneratesUniqueRequestIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)

	for range 3 {
		id := capture(t, httptest.NewRequest(http.MethodGet, "/test", nil)).RequestID

		assert.False(t, seen[id], "duplicate request ID %s", id)

		seen[id] = true
	}
}

// TestNew_ResolvesCookieAndQuery checks that both override layers reach handlers.
func TestNew_ResolvesCookieAndQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?api=preview&enable_editorial_features", nil)
	req.AddCookie(&http.Cookie{
		Name:  string(cookie.SettingsCookie),
		Value: url.QueryEscape(`{"spaceId":"cookie-space","previewToken":"cookie-preview"}`),
	})

	state := capture(t, req).State

	assert.True(t, state.UsesCookieCredentials())
	assert.Equal(t, "cookie-space", state.SpaceID())
	assert.Equal(t, "cookie-preview", state.ActiveToken())
	assert.True(t, state.HasEditorialFeaturesLink())
	assert.Equal(t, "?api=preview&enable_editorial_features", state.QueryString())
}

// TestNew_PreservesRequestData tests that original request data is preserved.
func TestNew_PreservesRequestData(t *testing.T) {
	t.Parallel()

	var (
		receivedMethod string
		receivedURL    string
	)

	handler := middleware.Wrap(New(testDefaults), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedMethod = r.Method
		receivedURL = r.URL.Path

		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/test", nil))

	assert.Equal(t, http.MethodPost, receivedMethod)
	assert.Equal(t, "/api/test", receivedURL)
}
