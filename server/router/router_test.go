// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/contentdemo/contentdemo/config"
	"codeberg.org/contentdemo/contentdemo/server/middleware/limiter"
)

func TestMain(m *testing.M) {
	config.Global.Space.SpaceID = "default-space"
	config.Global.Space.DeliveryToken = "default-delivery"
	config.Global.Space.PreviewToken = "default-preview"
	config.Global.Space.Locale = "en-US"

	os.Exit(m.Run())
}

func newTestRouter(rateLimiter *limiter.Limiter) *Router {
	router := NewRouter()
	router.DefineRoutes()
	router.RegisterMiddleware(rateLimiter)

	return router
}

func serve(router http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, r)

	return rr
}

func TestRouter_Index(t *testing.T) {
	t.Parallel()

	rr := serve(newTestRouter(nil), httptest.NewRequest(http.MethodGet, "/?api=cpa&locale=de-DE", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "cpa", rr.Header().Get("Content-Api"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "de-DE", body["locale"])
	assert.Equal(t, "?api=cpa&locale=de-DE", body["queryString"])
}

func TestRouter_TrailingSlashRedirect(t *testing.T) {
	t.Parallel()

	rr := serve(newTestRouter(nil), httptest.NewRequest(http.MethodGet, "/settings/?api=cpa", nil))

	assert.Equal(t, http.StatusPermanentRedirect, rr.Code)
	assert.Equal(t, "/settings?api=cpa", rr.Header().Get("Location"))
}

func TestRouter_UnknownPath(t *testing.T) {
	t.Parallel()

	rr := serve(newTestRouter(nil), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status": 404`)
}

func TestRouter_SettingsRoundTrip(t *testing.T) {
	t.Parallel()

	router := newTestRouter(nil)

	form := url.Values{
		"spaceId":       {"s1"},
		"deliveryToken": {"d1"},
		"previewToken":  {"p1"},
	}
	post := httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader(form.Encode()))
	post.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := serve(router, post)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	get := httptest.NewRequest(http.MethodGet, "/settings", nil)
	get.AddCookie(cookies[0])

	rr = serve(router, get)
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "s1", body["spaceId"])
	assert.Equal(t, "d1", body["deliveryToken"])
	assert.Equal(t, true, body["usesCookieCredentials"])
}

func TestRouter_SettingsValidation(t *testing.T) {
	t.Parallel()

	post := httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader("spaceId=s1"))
	post.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := serve(newTestRouter(nil), post)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"field": "deliveryToken"`)
}

func TestRouter_LimiterRejectsWrites(t *testing.T) {
	t.Parallel()

	rateLimiter := limiter.New(time.Hour, 1, time.Hour)
	router := newTestRouter(rateLimiter)

	reset := func() *httptest.ResponseRecorder {
		return serve(router, httptest.NewRequest(http.MethodPost, "/settings/reset", nil))
	}

	assert.Equal(t, http.StatusSeeOther, reset().Code)

	rr := reset()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "3600", rr.Header().Get("Retry-After"))

	// Reads are never limited.
	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/healthz", nil)).Code)
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	router := newTestRouter(nil)
	serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "contentdemo_state_resolutions_total")
	assert.Contains(t, rr.Body.String(), "contentdemo_http_responses_total")
}
