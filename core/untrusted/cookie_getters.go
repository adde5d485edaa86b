// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package untrusted

import (
	"net/http"
	"strings"

	"codeberg.org/contentdemo/contentdemo/core/cookie"
)

// GetSettingsCookie returns the raw JSON payload of the settings cookie.
//
// Older clients stored the payload with backslash-escaped quotes, so the
// value is unescaped once more after URL decoding.
func GetSettingsCookie(r *http.Request) string {
	return stripSlashes(GetCookie(r, cookie.SettingsCookie))
}

// SetSettingsCookie stores a JSON payload in the settings cookie in the form
// GetSettingsCookie reads back.
func SetSettingsCookie(w http.ResponseWriter, r *http.Request, payload string) {
	SetCookie(w, r, cookie.SettingsCookie, addSlashes(payload))
}

var slashReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// addSlashes escapes backslashes and double quotes. It is the inverse of
// stripSlashes.
func addSlashes(s string) string {
	return slashReplacer.Replace(s)
}

// stripSlashes removes one level of backslash escaping: `\"` becomes `"`,
// `\\` becomes `\` and a trailing lone backslash is dropped.
func stripSlashes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder

	sb.Grow(len(s))

	escaped := false

	for i := range len(s) {
		c := s[i]

		if c == '\\' && !escaped {
			escaped = true

			continue
		}

		escaped = false

		sb.WriteByte(c)
	}

	return sb.String()
}
