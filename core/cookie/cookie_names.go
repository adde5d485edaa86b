// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
This package defines the cookie names used by this application.
*/
package cookie

type CookieName string

// Cookie names defined as constants.
const (
	// SettingsCookie holds the JSON-encoded space credentials and editorial
	// flag chosen on the settings page.
	SettingsCookie CookieName = "theExampleAppSettings"
)

// AllCookieNames defines all cookies that can be set by the user.
var AllCookieNames = []CookieName{
	SettingsCookie,
}

// IsHttpOnly reports whether scripts on our pages may read the cookie.
//
// The settings cookie carries access tokens, so none of ours are readable.
func IsHttpOnly(_ CookieName) bool {
	return true
}
