// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// jsonBody encodes v as indented JSON followed by a newline.
func jsonBody(v any) ([]byte, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON response: %w", err)
	}

	return append(body, '\n'), nil
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) error {
	body, err := jsonBody(v)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}
