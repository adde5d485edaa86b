// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package limiter throttles state-changing requests per client address.

Only requests with an unsafe method (anything but GET, HEAD and OPTIONS) spend
tokens. Reads are never limited, so resolving request state stays free.
*/
package limiter
