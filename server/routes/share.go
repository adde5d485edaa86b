// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/contentdemo/contentdemo/server/request_context"
	"codeberg.org/contentdemo/contentdemo/server/utils"
)

type shareData struct {
	URL   string `json:"url"`
	Query string `json:"query"`
}

// SharePage returns a link that reproduces the complete resolved state,
// credentials included, for whoever opens it.
func SharePage(w http.ResponseWriter, r *http.Request) error {
	query := request_context.FromRequest(r).State.ShareableLinkQuery()

	return writeJSON(w, http.StatusOK, shareData{
		URL:   utils.GetOriginFromRequest(r) + "/" + query,
		Query: query,
	})
}
