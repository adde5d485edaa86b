// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requeststate

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	errSettingsNotJSON   = errors.New("settings cookie is not valid JSON")
	errSettingsNotObject = errors.New("settings cookie is not a JSON object")
	errSettingsEmpty     = errors.New("settings cookie is an empty object")
)

// Settings is the payload of the settings cookie.
//
// Every field is optional. Empty strings are treated as absent when the
// payload is merged over the defaults.
type Settings struct {
	SpaceID           string `json:"spaceId,omitempty"`
	DeliveryToken     string `json:"deliveryToken,omitempty"`
	PreviewToken      string `json:"previewToken,omitempty"`
	EditorialFeatures bool   `json:"editorialFeatures"`
}

// Encode returns the JSON form of s, as stored in the settings cookie.
//
// HTML characters are written as is so that the payload reads back
// unchanged after the cookie's backslash unescaping.
func (s Settings) Encode() string {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// A struct of strings and a bool always encodes.
	_ = enc.Encode(s)

	return strings.TrimSuffix(buf.String(), "\n")
}

// DecodeSettings parses a settings cookie value that has already been
// unescaped.
//
// Only a non-empty JSON object is accepted; unknown keys are ignored.
func DecodeSettings(raw string) (Settings, error) {
	if !gjson.Valid(raw) {
		return Settings{}, errSettingsNotJSON
	}

	parsed := gjson.Parse(raw)
	if !parsed.IsObject() {
		return Settings{}, errSettingsNotObject
	}

	hasKeys := false

	parsed.ForEach(func(_, _ gjson.Result) bool {
		hasKeys = true

		return false
	})

	if !hasKeys {
		return Settings{}, errSettingsEmpty
	}

	return Settings{
		SpaceID:           parsed.Get("spaceId").String(),
		DeliveryToken:     parsed.Get("deliveryToken").String(),
		PreviewToken:      parsed.Get("previewToken").String(),
		EditorialFeatures: parsed.Get("editorialFeatures").Bool(),
	}, nil
}
