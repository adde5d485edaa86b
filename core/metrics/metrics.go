// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package metrics exposes Prometheus counters for resolved request state
// and served responses.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"codeberg.org/contentdemo/contentdemo/core/requeststate"
)

// Credential sources reported in the "credentials" label.
const (
	CredentialsCookie   = "cookie"
	CredentialsDefaults = "defaults"
)

var (
	stateResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contentdemo_state_resolutions_total",
		Help: "Resolved request states by API, credential source and editorial flag",
	}, []string{"api", "credentials", "editorial"})

	responsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contentdemo_http_responses_total",
		Help: "Responses served by method and status code",
	}, []string{"method", "status"})

	responseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "contentdemo_http_response_duration_seconds",
		Help:    "Time spent producing a response, by API",
		Buckets: prometheus.DefBuckets,
	}, []string{"api"})
)

// credentialSource names where the state's space and tokens came from.
func credentialSource(state requeststate.State) string {
	if state.UsesCookieCredentials() {
		return CredentialsCookie
	}

	return CredentialsDefaults
}

// RecordStateResolution counts one resolved state.
func RecordStateResolution(state requeststate.State) {
	stateResolutionsTotal.WithLabelValues(
		state.API().String(),
		credentialSource(state),
		strconv.FormatBool(state.EditorialFeaturesEnabled()),
	).Inc()
}

// RecordResponse counts a served response and observes how long it took.
func RecordResponse(api requeststate.API, method string, statusCode int, duration time.Duration) {
	responsesTotal.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	responseDuration.WithLabelValues(api.String()).Observe(duration.Seconds())
}
