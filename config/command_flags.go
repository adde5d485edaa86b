// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "flag"

const (
	configFlagName         = "config"
	defaultConfigFilePath  = "./config.yaml"
	fallbackConfigFilePath = "./config.yml"
)

// parseCommandLineArgs defines and parses flags, returning the value of the "config" flag.
func parseCommandLineArgs() string {
	if flag.Lookup(configFlagName) == nil {
		flag.String(configFlagName, defaultConfigFilePath, "Path to a configuration file in YAML format.")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	return flag.Lookup(configFlagName).Value.String()
}
