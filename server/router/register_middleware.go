// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"codeberg.org/contentdemo/contentdemo/server/middleware"
	"codeberg.org/contentdemo/contentdemo/server/middleware/limiter"
	"codeberg.org/contentdemo/contentdemo/server/middleware/set_request_context"
)

// RegisterMiddleware installs the middleware chain. rateLimiter may be nil
// when rate limiting is disabled.
func (router *Router) RegisterMiddleware(rateLimiter *limiter.Limiter) {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.WithServerTiming)
	router.Use(middleware.NormalizeURL)                // handle trailing slashes
	router.Use(set_request_context.WithRequestContext) // needed for everything else
	router.Use(middleware.SetResponseHeaders)          // all responses need this

	if rateLimiter != nil {
		router.Use(rateLimiter.Evaluate)
	}
}
