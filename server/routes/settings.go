// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/contentdemo/contentdemo/core/requeststate"
	"codeberg.org/contentdemo/contentdemo/core/untrusted"
	"codeberg.org/contentdemo/contentdemo/server/request_context"
	"codeberg.org/contentdemo/contentdemo/server/utils"
)

// Form field names accepted by SettingsPOST.
const (
	spaceIDField           = "spaceId"
	deliveryTokenField     = "deliveryToken"
	previewTokenField      = "previewToken"
	editorialFeaturesField = "editorialFeatures"
	returnPathField        = "return"
)

const settingsPath = "/settings"

const redactedToken = "[redacted]"

type settingsData struct {
	SpaceID               string `json:"spaceId"`
	DeliveryToken         string `json:"deliveryToken"`
	PreviewToken          string `json:"previewToken"`
	EditorialFeatures     bool   `json:"editorialFeatures"`
	UsesCookieCredentials bool   `json:"usesCookieCredentials"`
}

// SettingsPage shows the space settings in effect.
//
// Each token is shown only when the visitor's own settings cookie supplied
// it; tokens that fall back to the deployment defaults are redacted.
func SettingsPage(w http.ResponseWriter, r *http.Request) error {
	state := request_context.FromRequest(r).State
	settings := state.Settings()
	stored, _ := requeststate.ReadSettingsCookie(r)

	data := settingsData{
		SpaceID:               settings.SpaceID,
		DeliveryToken:         tokenView(stored.DeliveryToken),
		PreviewToken:          tokenView(stored.PreviewToken),
		EditorialFeatures:     settings.EditorialFeatures,
		UsesCookieCredentials: state.UsesCookieCredentials(),
	}

	return writeJSON(w, http.StatusOK, data)
}

// tokenView returns the token the cookie supplied, or a placeholder when the
// cookie left it to the defaults.
func tokenView(fromCookie string) string {
	if fromCookie == "" {
		return redactedToken
	}

	return fromCookie
}

// SettingsPOST stores space credentials and the editorial flag in the
// settings cookie, then redirects to the optional same-origin "return" path
// or back to the settings page.
func SettingsPOST(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return NewBadRequestError("", "malformed form body")
	}

	settings, err := settingsFromForm(r)
	if err != nil {
		return err
	}

	untrusted.SetSettingsCookie(w, r, settings.Encode())

	log.Debug().
		Str("space_id", settings.SpaceID).
		Bool("editorial_features", settings.EditorialFeatures).
		Msg("Stored space settings")

	redirectToSettings(w, r)

	return nil
}

// SettingsReset clears every cookie the demo sets so that deployment
// defaults apply again.
func SettingsReset(w http.ResponseWriter, r *http.Request) error {
	untrusted.ClearAllCookies(w, r)

	redirectToSettings(w, r)

	return nil
}

func settingsFromForm(r *http.Request) (requeststate.Settings, error) {
	settings := requeststate.Settings{
		SpaceID:           utils.GetFormValue(r, spaceIDField),
		DeliveryToken:     utils.GetFormValue(r, deliveryTokenField),
		PreviewToken:      utils.GetFormValue(r, previewTokenField),
		EditorialFeatures: utils.IsChecked(r, editorialFeaturesField),
	}

	required := []struct {
		field string
		value string
	}{
		{spaceIDField, settings.SpaceID},
		{deliveryTokenField, settings.DeliveryToken},
		{previewTokenField, settings.PreviewToken},
	}

	for _, f := range required {
		if f.value == "" {
			return requeststate.Settings{}, NewBadRequestError(f.field, "this field is required")
		}
	}

	return settings, nil
}

// redirectToSettings sends the client to the "return" form path, or the
// settings page when it is missing or points off-site.
//
// A return path without its own query keeps the api, locale and
// enable_editorial_features parameters of the current request.
func redirectToSettings(w http.ResponseWriter, r *http.Request) {
	state := request_context.FromRequest(r).State

	target := utils.SanitizeReturnPath(utils.GetFormValue(r, returnPathField, settingsPath))
	if target == "" {
		target = settingsPath
	}

	if !strings.Contains(target, "?") {
		target = state.WithQueryString(target)
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}
