// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the HTTP middleware shared by all routes.

The chain order is set in router.RegisterMiddleware.
*/
package middleware
