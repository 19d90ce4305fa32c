// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"log/slog"
	"net/http"

	"github.com/tessera-admin/tessera/lib/session"
)

// Authorizer is an http.RoundTripper middleware that owns the session's
// relationship to the wire. On the way out it attaches the stored token
// as a bearer credential; on the way back it watches for a 401, clears
// the session, and notifies the console so navigation can return to the
// login screen. The 401 response itself is passed through unchanged,
// so callers see the original failure.
//
// This is the single place session invalidation is enforced; screens
// never check authentication per call.
type Authorizer struct {
	// Base is the wrapped transport. If nil, http.DefaultTransport
	// is used.
	Base http.RoundTripper

	// Session supplies the token. Read at RoundTrip time, so a token
	// set after the request was constructed is still picked up.
	Session *session.Store

	// OnUnauthorized is invoked after the session has been cleared in
	// response to a 401. The console uses it to schedule navigation to
	// the login screen. May be nil.
	OnUnauthorized func()

	// Logger is used for diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// RoundTrip implements http.RoundTripper.
func (a *Authorizer) RoundTrip(request *http.Request) (*http.Response, error) {
	base := a.Base
	if base == nil {
		base = http.DefaultTransport
	}

	// RoundTrippers must not mutate the caller's request.
	if token := a.Session.Token(); token != "" {
		request = request.Clone(request.Context())
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := base.RoundTrip(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode == http.StatusUnauthorized {
		logger := a.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("backend rejected session token, clearing session",
			"method", request.Method, "path", request.URL.Path)

		if clearErr := a.Session.Clear(); clearErr != nil {
			logger.Error("failed to clear session after 401", "error", clearErr)
		}
		if a.OnUnauthorized != nil {
			a.OnUnauthorized()
		}
	}

	return response, nil
}
