// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requeststate

// Defaults holds the deployment-level values used when a request does not
// override them. All fields are expected to be non-empty.
type Defaults struct {
	SpaceID       string
	DeliveryToken string
	PreviewToken  string
	Locale        string
}

// State is the resolved configuration for a single request.
//
// The zero value is not useful; build one with Resolve.
type State struct {
	spaceID                  string
	deliveryToken            string
	previewToken             string
	locale                   string
	api                      API
	editorialFeaturesEnabled bool
	usesCookieCredentials    bool
	queryString              string
}

// FromDefaults returns the state used when there is no request to read,
// e.g. a command-line invocation.
func FromDefaults(defaults Defaults) State {
	return State{
		spaceID:       defaults.SpaceID,
		deliveryToken: defaults.DeliveryToken,
		previewToken:  defaults.PreviewToken,
		locale:        defaults.Locale,
		api:           DeliveryAPI,
	}
}

func (s State) SpaceID() string       { return s.spaceID }
func (s State) DeliveryToken() string { return s.deliveryToken }
func (s State) PreviewToken() string  { return s.previewToken }
func (s State) Locale() string        { return s.locale }
func (s State) API() API              { return s.api }

// EditorialFeaturesEnabled reports whether editorial features were switched on
// by the settings cookie or the enable_editorial_features flag.
func (s State) EditorialFeaturesEnabled() bool { return s.editorialFeaturesEnabled }

// UsesCookieCredentials reports whether the settings cookie supplied any of
// the space and tokens. Fields the cookie left empty still come from the
// defaults.
func (s State) UsesCookieCredentials() bool { return s.usesCookieCredentials }

// QueryString returns the api, locale and enable_editorial_features overrides
// exactly as the caller supplied them, e.g. "?api=cpa&locale=de-DE".
//
// It is "" when the request carried none of them. It reflects the request,
// not the resolved state; use ShareableLinkQuery for the latter.
func (s State) QueryString() string { return s.queryString }

// IsPreview reports whether the preview API is active.
func (s State) IsPreview() bool {
	return s.api == PreviewAPI
}

// APILabel returns the human-readable name of the active API.
func (s State) APILabel() string {
	return s.api.Label()
}

// ActiveToken returns the access token matching the active API.
func (s State) ActiveToken() string {
	if s.IsPreview() {
		return s.previewToken
	}

	return s.deliveryToken
}

// HasEditorialFeaturesLink reports whether pages should render links into the
// editing interface. This needs editorial features and the preview API.
func (s State) HasEditorialFeaturesLink() bool {
	return s.editorialFeaturesEnabled && s.api == PreviewAPI
}

// ShareableLinkQuery encodes the complete resolved state as a query string so
// that a recipient of the link sees the same content.
func (s State) ShareableLinkQuery() string {
	var q queryBuilder

	q.add(SpaceIDParam, s.spaceID)
	q.add(DeliveryTokenParam, s.deliveryToken)
	q.add(PreviewTokenParam, s.previewToken)
	q.add(APIParam, s.api.String())
	q.add(LocaleParam, s.locale)
	q.flag(EditorialFeaturesParam, s.editorialFeaturesEnabled)

	return q.String()
}

// WithQueryString appends the caller's overrides to path, for internal links.
func (s State) WithQueryString(path string) string {
	return path + s.queryString
}

// Settings returns the cookie payload that reproduces the current space,
// tokens and editorial flag.
func (s State) Settings() Settings {
	return Settings{
		SpaceID:           s.spaceID,
		DeliveryToken:     s.deliveryToken,
		PreviewToken:      s.previewToken,
		EditorialFeatures: s.editorialFeaturesEnabled,
	}
}
