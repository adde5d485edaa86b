// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	// Default minimum time between settings writes from one client, in seconds.
	defaultLimiterIntervalSeconds = 2
	// Default number of settings writes allowed in a burst.
	defaultLimiterBurst = 5
	// Default interval at which idle limiter clients are forgotten, in minutes.
	defaultLimiterCleanupMinutes = 10
)

// SetDefaults populates the configuration with default values.
//
// The space credentials have no defaults and must be configured.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "3000"

	cfg.Space.Locale = "en-US"

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Limiter.Enabled = true
	cfg.Limiter.Interval = defaultLimiterIntervalSeconds * time.Second
	cfg.Limiter.Burst = defaultLimiterBurst
	cfg.Limiter.CleanupInterval = defaultLimiterCleanupMinutes * time.Minute
}
