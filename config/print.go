// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

const redactedValue = "[redacted]"

// Redacted returns a shallow copy of cfg with access tokens replaced.
func (cfg *ServerConfig) Redacted() ServerConfig {
	printableConfig := *cfg

	if printableConfig.Space.DeliveryToken != "" {
		printableConfig.Space.DeliveryToken = redactedValue
	}

	if printableConfig.Space.PreviewToken != "" {
		printableConfig.Space.PreviewToken = redactedValue
	}

	return printableConfig
}

func (cfg *ServerConfig) print() {
	log.Info().
		Str("version", BuildVersion).
		Str("revision", cfg.Build.Revision()).
		Str("instance", cfg.Instance.InstanceID).
		Msg("Starting content delivery demo")

	configYAML, err := yaml.MarshalWithOptions(
		cfg.Redacted(),
		GetDurationEncoderOption(),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Info().
		Msg("Application configuration:")
	fmt.Fprintln(os.Stderr, string(configYAML))
}
