// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package requeststate derives the per-request view configuration: which content
API to talk to, the active locale, the space credentials and whether editorial
features are on.

Values are resolved in one pass from three layers, weakest first:

 1. deployment defaults (see [Defaults]),
 2. the settings cookie written by the settings page,
 3. the api, locale and enable_editorial_features query parameters.

Empty values never replace a value from a weaker layer. The result is a
[State], which is never modified after [Resolve] returns it.
*/
package requeststate
