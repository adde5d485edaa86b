// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"strconv"
	"time"
)

// retryAfterSeconds is the Retry-After value for a bucket refilling one
// token per interval, rounded up to whole seconds and at least 1.
func retryAfterSeconds(interval time.Duration) string {
	seconds := int64((interval + time.Second - 1) / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	return strconv.FormatInt(seconds, 10)
}
