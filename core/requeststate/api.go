// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requeststate

import "strings"

// API selects which content API, and therefore which access token, is active.
type API string

// Possible values for API.
const (
	// DeliveryAPI serves published content only.
	DeliveryAPI API = "cda"
	// PreviewAPI also serves unpublished content.
	PreviewAPI API = "cpa"
)

// ParseAPI maps an incoming api token to an API.
//
// "cda" and "delivery" select DeliveryAPI, "cpa" and "preview" select
// PreviewAPI. Matching ignores case and surrounding whitespace. For any other
// token ok is false and DeliveryAPI is returned.
func ParseAPI(token string) (api API, ok bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "cda", "delivery":
		return DeliveryAPI, true
	case "cpa", "preview":
		return PreviewAPI, true
	default:
		return DeliveryAPI, false
	}
}

// Label returns the human-readable name of the API.
func (api API) Label() string {
	if api == PreviewAPI {
		return "Content Preview API"
	}

	return "Content Delivery API"
}

func (api API) String() string {
	return string(api)
}
