// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package idgen makes short, roughly sortable identifiers for requests and
// server instances.
package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

const entropyBytes = 3

// Make makes a short ID from the wall-clock time (HHMMSS) and 3 bytes of
// entropy, e.g. "142501q3Zx".
func Make() string {
	return makeAt(time.Now())
}

func makeAt(t time.Time) string {
	var entropy [entropyBytes]byte

	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(entropy[:])

	return maketime(t) + base64.RawURLEncoding.EncodeToString(entropy[:])
}

func maketime(t time.Time) string {
	return t.Format("150405")
}
