// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package untrusted reads and writes state that the user agent holds.

Cookies are sent by the client and can contain anything, so every value
read here is unvalidated input.
*/
package untrusted
