// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command showstate prints the request state that applies when no request
// is available, using the server's configuration sources.
//
// Access tokens are redacted unless -show-tokens is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/contentdemo/contentdemo/config"
	"codeberg.org/contentdemo/contentdemo/core/audit"
	"codeberg.org/contentdemo/contentdemo/core/requeststate"
)

const redactedToken = "[redacted]"

var showTokens = flag.Bool("show-tokens", false, "Print access tokens instead of redacting them.")

// stateView is the printable form of requeststate.State.
type stateView struct {
	API                      string `yaml:"api"`
	APILabel                 string `yaml:"apiLabel"`
	Locale                   string `yaml:"locale"`
	SpaceID                  string `yaml:"spaceId"`
	DeliveryToken            string `yaml:"deliveryToken"`
	PreviewToken             string `yaml:"previewToken"`
	EditorialFeaturesEnabled bool   `yaml:"editorialFeaturesEnabled"`
	EditorialFeaturesLink    bool   `yaml:"editorialFeaturesLink"`
	UsesCookieCredentials    bool   `yaml:"usesCookieCredentials"`
	QueryString              string `yaml:"queryString"`
	ShareableLinkQuery       string `yaml:"shareableLinkQuery"`
}

func main() {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	state := requeststate.Resolve(nil, config.Global.Defaults())

	if err := printState(os.Stdout, state, *showTokens); err != nil {
		log.Fatal().Err(err).Msg("Failed to print state")
	}
}

func newStateView(state requeststate.State, showTokens bool) stateView {
	view := stateView{
		API:                      state.API().String(),
		APILabel:                 state.APILabel(),
		Locale:                   state.Locale(),
		SpaceID:                  state.SpaceID(),
		DeliveryToken:            state.DeliveryToken(),
		PreviewToken:             state.PreviewToken(),
		EditorialFeaturesEnabled: state.EditorialFeaturesEnabled(),
		EditorialFeaturesLink:    state.HasEditorialFeaturesLink(),
		UsesCookieCredentials:    state.UsesCookieCredentials(),
		QueryString:              state.QueryString(),
		ShareableLinkQuery:       state.ShareableLinkQuery(),
	}

	if !showTokens {
		view.DeliveryToken = redactedToken
		view.PreviewToken = redactedToken
		view.ShareableLinkQuery = redactedToken
	}

	return view
}

func printState(w io.Writer, state requeststate.State, showTokens bool) error {
	out, err := yaml.Marshal(newStateView(state, showTokens))
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write state: %w", err)
	}

	return nil
}
