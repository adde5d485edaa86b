// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/contentdemo/contentdemo/server/request_context"
)

// stateSummary is the public view of a resolved request state. Access
// tokens are never included.
type stateSummary struct {
	RequestID                string `json:"requestId"`
	API                      string `json:"api"`
	APILabel                 string `json:"apiLabel"`
	Locale                   string `json:"locale"`
	SpaceID                  string `json:"spaceId"`
	EditorialFeaturesEnabled bool   `json:"editorialFeaturesEnabled"`
	EditorialFeaturesLink    bool   `json:"editorialFeaturesLink"`
	UsesCookieCredentials    bool   `json:"usesCookieCredentials"`
	QueryString              string `json:"queryString"`
	SettingsURL              string `json:"settingsUrl"`
	ShareURL                 string `json:"shareUrl"`
}

// IndexPage describes the state resolved for this request.
func IndexPage(w http.ResponseWriter, r *http.Request) error {
	rc := request_context.FromRequest(r)
	state := rc.State

	return writeJSON(w, http.StatusOK, stateSummary{
		RequestID:                rc.RequestID,
		API:                      state.API().String(),
		APILabel:                 state.APILabel(),
		Locale:                   state.Locale(),
		SpaceID:                  state.SpaceID(),
		EditorialFeaturesEnabled: state.EditorialFeaturesEnabled(),
		EditorialFeaturesLink:    state.HasEditorialFeaturesLink(),
		UsesCookieCredentials:    state.UsesCookieCredentials(),
		QueryString:              state.QueryString(),
		SettingsURL:              state.WithQueryString("/settings"),
		ShareURL:                 state.WithQueryString("/share"),
	})
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
