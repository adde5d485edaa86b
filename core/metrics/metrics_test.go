// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package metrics

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"codeberg.org/contentdemo/contentdemo/core/cookie"
	"codeberg.org/contentdemo/contentdemo/core/requeststate"
)

var testDefaults = requeststate.Defaults{
	SpaceID:       "space",
	DeliveryToken: "delivery",
	PreviewToken:  "preview",
	Locale:        "en-US",
}

func TestRecordStateResolution(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?api=cpa&enable_editorial_features", nil)
	r.AddCookie(&http.Cookie{
		Name:  string(cookie.SettingsCookie),
		Value: url.QueryEscape(`{"spaceId":"s","deliveryToken":"d","previewToken":"p"}`),
	})

	counter := stateResolutionsTotal.WithLabelValues("cpa", CredentialsCookie, "true")
	before := testutil.ToFloat64(counter)

	RecordStateResolution(requeststate.Resolve(r, testDefaults))

	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0)
}

func TestRecordStateResolution_Defaults(t *testing.T) {
	counter := stateResolutionsTotal.WithLabelValues("cda", CredentialsDefaults, "false")
	before := testutil.ToFloat64(counter)

	RecordStateResolution(requeststate.Resolve(nil, testDefaults))

	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0)
}

func TestRecordResponse(t *testing.T) {
	counter := responsesTotal.WithLabelValues(http.MethodPost, "303")
	before := testutil.ToFloat64(counter)

	RecordResponse(requeststate.PreviewAPI, http.MethodPost, http.StatusSeeOther, 5*time.Millisecond)

	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0)
	assert.Positive(t, testutil.CollectAndCount(responseDuration))
}
