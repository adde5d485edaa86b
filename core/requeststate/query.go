// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requeststate

import (
	"net/url"
	"strings"
)

// Query parameter names recognized by Resolve.
const (
	APIParam               = "api"
	LocaleParam            = "locale"
	EditorialFeaturesParam = "enable_editorial_features"
)

// Query parameter names used only in shareable links.
const (
	SpaceIDParam       = "space_id"
	DeliveryTokenParam = "delivery_token"
	PreviewTokenParam  = "preview_token"
)

// queryBuilder writes a query string in insertion order.
//
// url.Values sorts keys on Encode and has no notion of a bare flag, so it
// can't produce the fixed key order our links rely on.
type queryBuilder struct {
	parts []string
}

// add appends key=value. Empty values are skipped.
func (q *queryBuilder) add(key, value string) {
	if value == "" {
		return
	}

	q.parts = append(q.parts, key+"="+url.QueryEscape(value))
}

// flag appends key without a value when set is true.
func (q *queryBuilder) flag(key string, set bool) {
	if set {
		q.parts = append(q.parts, key)
	}
}

// String returns the query string with a leading "?", or "" when nothing
// was added.
func (q *queryBuilder) String() string {
	if len(q.parts) == 0 {
		return ""
	}

	return "?" + strings.Join(q.parts, "&")
}
