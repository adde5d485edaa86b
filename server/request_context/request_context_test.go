// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package request_context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/contentdemo/contentdemo/core/requeststate"
)

var testDefaults = requeststate.Defaults{
	SpaceID:       "space",
	DeliveryToken: "delivery",
	PreviewToken:  "preview",
	Locale:        "en-US",
}

func TestWithRequestContext_ResolvesState(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/?api=cpa&locale=de-DE", nil)
	rc := FromContext(WithRequestContext(r.Context(), r, testDefaults))

	assert.NotEmpty(t, rc.RequestID)
	assert.Equal(t, http.StatusOK, rc.StatusCode)
	assert.NoError(t, rc.RequestError)
	assert.Equal(t, requeststate.PreviewAPI, rc.State.API())
	assert.Equal(t, "de-DE", rc.State.Locale())
	assert.Equal(t, "?api=cpa&locale=de-DE", rc.State.QueryString())
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	rc := FromContext(context.Background())

	assert.NotNil(t, rc)
	assert.Empty(t, rc.RequestID)
	assert.Equal(t, http.StatusOK, rc.StatusCode)
	assert.Equal(t, requeststate.DeliveryAPI, rc.State.API())
	assert.Empty(t, rc.State.QueryString())
}

func TestFromRequest_SharedPointer(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(WithRequestContext(r.Context(), r, testDefaults))

	FromRequest(r).StatusCode = http.StatusTeapot

	assert.Equal(t, http.StatusTeapot, FromRequest(r).StatusCode)
}
