// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"codeberg.org/contentdemo/contentdemo/core/requeststate"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host string `env:"CONTENTDEMO_HOST" yaml:"host"`
		Port string `env:"CONTENTDEMO_PORT" yaml:"port"`
	} `yaml:"basic"`

	// Space holds the credentials and locale used when a request does not
	// supply its own through the settings cookie or query parameters.
	Space struct {
		SpaceID       string `env:"CONTENTDEMO_SPACE_ID"       yaml:"spaceId"`
		DeliveryToken string `env:"CONTENTDEMO_DELIVERY_TOKEN" yaml:"deliveryToken"`
		PreviewToken  string `env:"CONTENTDEMO_PREVIEW_TOKEN"  yaml:"previewToken"`
		Locale        string `env:"CONTENTDEMO_LOCALE"         yaml:"locale"`
	} `yaml:"space"`

	Instance struct {
		StartingTime string `yaml:"-"`
		InstanceID   string `yaml:"-"`
	} `yaml:"-"`

	Development struct {
		InDevelopment bool `env:"CONTENTDEMO_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"CONTENTDEMO_LOG_LEVEL"   yaml:"logLevel"`
		Outputs []string `env:"CONTENTDEMO_LOG_OUTPUTS" envSeparator:"," yaml:"logOutputs"`
		Format  string   `env:"CONTENTDEMO_LOG_FORMAT"  yaml:"logFormat"`
	} `yaml:"log"`

	// Limiter throttles writes to the settings endpoints per client address.
	Limiter struct {
		Enabled         bool          `env:"CONTENTDEMO_LIMITER"                  yaml:"enabled"`
		Interval        time.Duration `env:"CONTENTDEMO_LIMITER_INTERVAL"         yaml:"interval"`
		Burst           int           `env:"CONTENTDEMO_LIMITER_BURST"            yaml:"burst"`
		CleanupInterval time.Duration `env:"CONTENTDEMO_LIMITER_CLEANUP_INTERVAL" yaml:"cleanupInterval"`
	} `yaml:"limiter"`
}

// LoadConfig loads the configuration from various sources.
//
// Later sources override earlier ones: built-in defaults, the YAML file,
// a .env file, then the process environment.
func (cfg *ServerConfig) LoadConfig() error {
	configFilePath := resolveConfigFilePath(parseCommandLineArgs())

	cfg.SetDefaults()

	cfg.Build.load()

	cfg.Instance.InstanceID = uuid.NewString()
	cfg.Instance.StartingTime = time.Now().UTC().Format("2006-01-02 15:04")

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	return nil
}

// resolveConfigFilePath picks the config file with the following precedence:
//  1. Command-line flag (-config)
//  2. Environment variable (CONTENTDEMO_CONFIGFILE)
//  3. ./config.yaml, falling back to ./config.yml
func resolveConfigFilePath(flagValue string) string {
	flagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == configFlagName {
			flagUserSet = true
		}
	})

	if flagUserSet {
		return flagValue
	}

	if envVar := os.Getenv("CONTENTDEMO_CONFIGFILE"); envVar != "" {
		return envVar
	}

	if _, err := os.Stat(defaultConfigFilePath); os.IsNotExist(err) {
		if _, statErr := os.Stat(fallbackConfigFilePath); statErr == nil {
			return fallbackConfigFilePath
		}
	}

	return defaultConfigFilePath
}

// Defaults returns the deployment defaults for request state resolution.
func (cfg *ServerConfig) Defaults() requeststate.Defaults {
	return requeststate.Defaults{
		SpaceID:       cfg.Space.SpaceID,
		DeliveryToken: cfg.Space.DeliveryToken,
		PreviewToken:  cfg.Space.PreviewToken,
		Locale:        cfg.Space.Locale,
	}
}

var staticSkippedPaths = []string{"/healthz", "/favicon.ico"}

// ShouldSkipServerLogging determines if a request should bypass the logging middleware.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	for _, skipped := range staticSkippedPaths {
		if path == skipped {
			return true
		}
	}

	return cfg.Development.InDevelopment && strings.HasPrefix(path, "/debug/")
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
