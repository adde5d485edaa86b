// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net"
	"net/http"
)

// IsConnectionSecure returns whether a connection is secure.
//
// Target environments are (containerized and bare metal):
//   - Internet -> reverse proxy -> application
//   - LAN -> reverse proxy -> application
//   - LAN -> application
//   - localhost -> application
//
// X-Forwarded-Proto is only trusted from private and loopback addresses, so
// this returns false behind a reverse proxy with a public IP address.
func IsConnectionSecure(r *http.Request) bool {
	// Always secure if directly using TLS
	if r.TLS != nil {
		return true
	}

	if r.Header.Get("X-Forwarded-Proto") != "https" {
		return false
	}

	return isTrustedProxy(r.RemoteAddr)
}

func isTrustedProxy(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return false
	}

	parsedIP := net.ParseIP(host)
	if parsedIP == nil {
		return false
	}

	return parsedIP.IsPrivate() || parsedIP.IsLoopback()
}

// GetOriginFromRequest returns the origin (scheme + host) of r in the
// format "scheme://host".
func GetOriginFromRequest(r *http.Request) string {
	scheme := "http"
	if IsConnectionSecure(r) {
		scheme = "https"
	}

	return scheme + "://" + r.Host
}

// ClientAddress returns the IP address of the client that sent r, without
// the port.
func ClientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
