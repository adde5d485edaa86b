// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/http/pprof"
	"runtime/trace"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"codeberg.org/contentdemo/contentdemo/config"
	"codeberg.org/contentdemo/contentdemo/server/middleware"
	"codeberg.org/contentdemo/contentdemo/server/routes"
)

// DefineRoutes sets up all the routes for the application using our custom Router.
//
// It does not register middleware.
func (router *Router) DefineRoutes() {
	// Settings routes
	router.HandleFunc("GET /settings", middleware.CatchError(routes.SettingsPage))
	router.HandleFunc("POST /settings", middleware.CatchError(routes.SettingsPOST))
	router.HandleFunc("POST /settings/reset", middleware.CatchError(routes.SettingsReset))

	router.HandleFunc("GET /share", middleware.CatchError(routes.SharePage))
	router.HandleFunc("GET /healthz", middleware.CatchError(routes.Healthz))
	router.Handle("GET /metrics", promhttp.Handler())

	// Index page routes
	// /{$} matches only the root path
	router.HandleFunc("GET /{$}", middleware.CatchError(routes.IndexPage))

	// Everything else gets the JSON error body instead of the mux's plain text 404.
	router.HandleFunc("/", middleware.CatchError(routes.NotFound))

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}
}

var flightRecorder = trace.NewFlightRecorder(trace.FlightRecorderConfig{MinAge: time.Minute})

func registerDebugRoutes(router *Router) {
	err := flightRecorder.Start()
	if err != nil {
		panic(err)
	}

	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	router.HandleFunc("GET /debug/flight", func(w http.ResponseWriter, r *http.Request) {
		_, _ = flightRecorder.WriteTo(w)
	})
}
