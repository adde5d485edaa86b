// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requeststate

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/contentdemo/contentdemo/core/untrusted"
)

// overrides holds what a single layer contributes. Empty strings mean
// "not set by this layer".
type overrides struct {
	spaceID           string
	deliveryToken     string
	previewToken      string
	locale            string
	api               API
	editorialFeatures bool
}

// Resolve builds the State for r.
//
// When r is nil, the result is FromDefaults(defaults). Resolve never fails:
// an unreadable settings cookie or an unknown api token is ignored.
func Resolve(r *http.Request, defaults Defaults) State {
	state := FromDefaults(defaults)

	if r == nil {
		return state
	}

	if settings, ok := ReadSettingsCookie(r); ok {
		state.usesCookieCredentials = true
		state.apply(overrides{
			spaceID:           settings.SpaceID,
			deliveryToken:     settings.DeliveryToken,
			previewToken:      settings.PreviewToken,
			editorialFeatures: settings.EditorialFeatures,
		})
	}

	state.apply(queryLayer(r))
	state.queryString = requestQueryString(r)

	return state
}

// apply merges o over s. Non-empty values win; editorial features are only
// ever switched on.
func (s *State) apply(o overrides) {
	s.spaceID = override(s.spaceID, o.spaceID)
	s.deliveryToken = override(s.deliveryToken, o.deliveryToken)
	s.previewToken = override(s.previewToken, o.previewToken)
	s.locale = override(s.locale, o.locale)

	if o.api != "" {
		s.api = o.api
	}

	s.editorialFeaturesEnabled = s.editorialFeaturesEnabled || o.editorialFeatures
}

func override(current, next string) string {
	if next == "" {
		return current
	}

	return next
}

// ReadSettingsCookie reads the settings cookie of r. ok is false when the
// cookie is missing or does not hold a non-empty JSON object.
func ReadSettingsCookie(r *http.Request) (Settings, bool) {
	raw := untrusted.GetSettingsCookie(r)
	if raw == "" {
		return Settings{}, false
	}

	settings, err := DecodeSettings(raw)
	if err != nil {
		log.Debug().
			Err(err).
			Str("path", r.URL.Path).
			Msg("Ignoring settings cookie")

		return Settings{}, false
	}

	return settings, true
}

func queryLayer(r *http.Request) overrides {
	query := r.URL.Query()

	o := overrides{
		locale:            query.Get(LocaleParam),
		editorialFeatures: query.Has(EditorialFeaturesParam),
	}

	if token := query.Get(APIParam); token != "" {
		if api, ok := ParseAPI(token); ok {
			o.api = api
		} else {
			log.Debug().
				Str("api", token).
				Msg("Ignoring unknown api parameter")
		}
	}

	return o
}

// requestQueryString rebuilds the query string from the raw api, locale and
// enable_editorial_features parameters on r.
func requestQueryString(r *http.Request) string {
	query := r.URL.Query()

	var q queryBuilder

	q.add(APIParam, query.Get(APIParam))
	q.add(LocaleParam, query.Get(LocaleParam))
	q.flag(EditorialFeaturesParam, query.Has(EditorialFeaturesParam))

	return q.String()
}
