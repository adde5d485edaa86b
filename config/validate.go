// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// validation errors.
var (
	errNoSpaceID            = errors.New("space.spaceId is required")
	errNoDeliveryToken      = errors.New("space.deliveryToken is required")
	errNoPreviewToken       = errors.New("space.previewToken is required")
	errNoLocale             = errors.New("space.locale is required")
	errInvalidLocale        = errors.New("space.locale is not a valid BCP 47 language tag")
	errInvalidLogLevel      = errors.New("invalid Log.Level value")
	errInvalidLogFormat     = errors.New("invalid Log.Format value")
	errInvalidLimiterBurst  = errors.New("Limiter.Burst must be at least 1")
	errInvalidLimiterPeriod = errors.New("Limiter.Interval must be positive")
)

// validateAndSet validates the server configuration and populates some fields.
func (cfg *ServerConfig) validateAndSet() error {
	if cfg.Basic.Host == "" {
		cfg.Basic.Host = "localhost"
		log.Info().
			Str("host", cfg.Basic.Host).
			Msg("Binding to default host")
	}

	if cfg.Basic.Port == "" {
		cfg.Basic.Port = "3000"
		log.Info().
			Str("port", cfg.Basic.Port).
			Msg("Using default port")
	}

	cfg.Space.SpaceID = strings.TrimSpace(cfg.Space.SpaceID)
	cfg.Space.DeliveryToken = strings.TrimSpace(cfg.Space.DeliveryToken)
	cfg.Space.PreviewToken = strings.TrimSpace(cfg.Space.PreviewToken)
	cfg.Space.Locale = strings.TrimSpace(cfg.Space.Locale)

	switch {
	case cfg.Space.SpaceID == "":
		return errNoSpaceID
	case cfg.Space.DeliveryToken == "":
		return errNoDeliveryToken
	case cfg.Space.PreviewToken == "":
		return errNoPreviewToken
	case cfg.Space.Locale == "":
		return errNoLocale
	}

	// The locale is passed through to the content API verbatim, so only its
	// syntax is checked here.
	if _, err := language.Parse(cfg.Space.Locale); err != nil {
		return fmt.Errorf("%w: %q: %w", errInvalidLocale, cfg.Space.Locale, err)
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return errInvalidLogLevel
	}

	switch cfg.Log.Format {
	case "console", "json":
		// valid
	default:
		return errInvalidLogFormat
	}

	// Skip validating Limiter configuration if it's not enabled
	if !cfg.Limiter.Enabled {
		return nil
	}

	if cfg.Limiter.Interval <= 0 {
		return errInvalidLimiterPeriod
	}

	if cfg.Limiter.Burst < 1 {
		return errInvalidLimiterBurst
	}

	return nil
}
