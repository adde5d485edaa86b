// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import "fmt"

// BadRequestError signals that the client sent unusable input.
//
// The error handling middleware is expected to catch this error and respond
// with 400 Bad Request.
type BadRequestError struct {
	// Field is the name of the offending form field, if any.
	Field string
	// Reason is a short description shown to the client.
	Reason string
}

func (e *BadRequestError) Error() string {
	if e.Field == "" {
		return e.Reason
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewBadRequestError creates a BadRequestError.
func NewBadRequestError(field, reason string) error {
	return &BadRequestError{Field: field, Reason: reason}
}
