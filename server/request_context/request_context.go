// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package requestcontext provides per-request state management for HTTP handlers.

This package is separate because Go disallows a cyclic import graph.
*/
package request_context

import (
	"context"
	"net/http"

	"codeberg.org/contentdemo/contentdemo/core/idgen"
	"codeberg.org/contentdemo/contentdemo/core/requeststate"
)

// RequestContext carries request-scoped data through the middleware chain.
//
// It lives for a single HTTP request. State is resolved once when the
// context is created and never changes afterwards.
type RequestContext struct {
	// RequestID is an identifier for tracing requests.
	RequestID string

	// Holds any critical error encountered during request processing.
	//
	// Automatically populated by middleware.CatchError when handlers return errors,
	// which interrupts normal response handling and renders an error page instead.
	RequestError error

	// HTTP status code to be sent in the response. Defaults to 200 OK.
	StatusCode int

	// State is the resolved api, locale, credentials and flags for this request.
	State requeststate.State
}

// requestContextKeyType defines a unique type for a RequestContext key.
type requestContextKeyType struct{}

// requestContextKey is a unique key used to access RequestContext
// values from a context.Context.
var requestContextKey = requestContextKeyType{}

// WithRequestContext resolves the request state for r and attaches a new
// RequestContext to the parent context.
//
// This is called once per request, early in the middleware chain (see router.RegisterMiddleware).
func WithRequestContext(ctx context.Context, r *http.Request, defaults requeststate.Defaults) context.Context {
	rc := RequestContext{
		RequestID:  idgen.Make(),
		StatusCode: http.StatusOK,
		State:      requeststate.Resolve(r, defaults),
	}

	return context.WithValue(ctx, requestContextKey, &rc)
}

// FromContext extracts the RequestContext from a context, always returning
// a valid pointer.
//
// If no context is found, returns an instance whose State has no
// credentials and the delivery API selected.
func FromContext(ctx context.Context) *RequestContext {
	if v := ctx.Value(requestContextKey); v != nil {
		if rc, ok := v.(*RequestContext); ok {
			return rc
		}
	}

	return &RequestContext{
		StatusCode: http.StatusOK,
		State:      requeststate.FromDefaults(requeststate.Defaults{}),
	}
}

// FromRequest is a convenience wrapper for extracting RequestContext
// directly from HTTP requests.
//
// Prefer this in handlers that have access to the *http.Request object.
func FromRequest(r *http.Request) *RequestContext {
	return FromContext(r.Context())
}
