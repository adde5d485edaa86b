// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command genconfig writes example .env and config.yaml files from the
// configuration defaults.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/contentdemo/contentdemo/config"
	"codeberg.org/contentdemo/contentdemo/core/audit"
)

const (
	envOutputFile  = "deploy/.env.example"
	yamlOutputFile = "deploy/config.yaml.example"
	filePerm       = 0o644
	dirPerm        = 0o755

	placeholderSpaceID = "your_space_id"
	placeholderToken   = "your_access_token"

	envFileHeader = `# Content delivery demo configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
# The space ID and both access tokens are required.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# Content delivery demo configuration (via configuration file)
#
# Copy this file to config.yaml and customize the values below.
# The space ID and both access tokens are required.
#
# This file was auto-generated using go run ./cmd/genconfig.
`
)

// requiredEnvVars are written uncommented, with a placeholder when they have no default.
var requiredEnvVars = map[string]string{
	"CONTENTDEMO_HOST":           "",
	"CONTENTDEMO_PORT":           "",
	"CONTENTDEMO_SPACE_ID":       placeholderSpaceID,
	"CONTENTDEMO_DELIVERY_TOKEN": placeholderToken,
	"CONTENTDEMO_PREVIEW_TOKEN":  placeholderToken,
}

// requiredYAMLKeys are left uncommented in the YAML example.
var requiredYAMLKeys = []string{"spaceId:", "deliveryToken:", "previewToken:"}

func main() {
	audit.SetDefaultLogger()

	if err := os.MkdirAll(filepath.Dir(envOutputFile), dirPerm); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output directory")
	}

	writeFile(envOutputFile, renderEnvFile())

	yamlFile, err := renderYAMLFile()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config to YAML")
	}

	writeFile(yamlOutputFile, yamlFile)
}

func writeFile(path, content string) {
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write example file")
	}

	log.Info().Str("path", path).Msg("Successfully generated example file")
}

// renderEnvFile lists every env-tagged setting grouped by config section.
func renderEnvFile() string {
	cfg := &config.ServerConfig{}
	cfg.SetDefaults()

	var sb strings.Builder
	sb.WriteString(envFileHeader)

	val := reflect.ValueOf(*cfg)
	typ := val.Type()

	// Iterate over the top-level struct fields.
	for i := range typ.NumField() {
		structField := typ.Field(i)
		structValue := val.Field(i)

		if structValue.Kind() != reflect.Struct || structField.Name == "Build" || structField.Name == "Instance" {
			continue
		}

		fmt.Fprintf(&sb, "## %s\n", structField.Name)

		innerTyp := structValue.Type()
		for j := range innerTyp.NumField() {
			field := innerTyp.Field(j)
			value := structValue.Field(j)

			tag, ok := field.Tag.Lookup("env")
			if !ok {
				continue
			}

			envVarName := strings.Split(tag, ",")[0]

			if placeholder, required := requiredEnvVars[envVarName]; required {
				if placeholder != "" {
					fmt.Fprintf(&sb, "%s=\"%s\"\n", envVarName, placeholder)
				} else {
					fmt.Fprintf(&sb, "%s=\"%v\"\n", envVarName, value.Interface())
				}

				continue
			}

			switch {
			case value.Kind() == reflect.Slice:
				separator := field.Tag.Get("envSeparator")
				items := make([]string, value.Len())

				for k := range value.Len() {
					items[k] = fmt.Sprint(value.Index(k).Interface())
				}

				fmt.Fprintf(&sb, "# %s=%s\n", envVarName, strings.Join(items, separator))
			case value.Kind() == reflect.String && value.Len() == 0:
				fmt.Fprintf(&sb, "# %s=\n", envVarName)
			default:
				fmt.Fprintf(&sb, "# %s=%v\n", envVarName, value.Interface())
			}
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// renderYAMLFile marshals the defaults and comments out everything except
// section headers and required keys.
func renderYAMLFile() (string, error) {
	cfg := &config.ServerConfig{}
	cfg.SetDefaults()

	cfg.Space.SpaceID = placeholderSpaceID
	cfg.Space.DeliveryToken = placeholderToken
	cfg.Space.PreviewToken = placeholderToken

	var yamlContent strings.Builder

	encoderOpts := []yaml.EncodeOption{
		config.GetDurationEncoderOption(),
		yaml.Indent(2),
	}
	if err := yaml.NewEncoder(&yamlContent, encoderOpts...).Encode(cfg); err != nil {
		return "", fmt.Errorf("encode defaults: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(yamlFileHeader)

	for line := range strings.SplitSeq(yamlContent.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Top-level keys (e.g., "basic:") are treated as section headers.
		if !strings.HasPrefix(line, " ") {
			fmt.Fprintf(&sb, "\n%s\n", line)

			continue
		}

		if isRequiredYAMLLine(trimmed) {
			sb.WriteString(line + "\n")

			continue
		}

		indentSize := len(line) - len(strings.TrimLeft(line, " "))
		fmt.Fprintf(&sb, "%s# %s\n", strings.Repeat(" ", indentSize), trimmed)
	}

	return sb.String(), nil
}

func isRequiredYAMLLine(trimmed string) bool {
	for _, key := range requiredYAMLKeys {
		if strings.HasPrefix(trimmed, key) {
			return true
		}
	}

	return false
}
