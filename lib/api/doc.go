// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the typed client for the Tessera backend REST API.
//
// One Client carries the base URL, the HTTP transport, and a logger;
// method groups cover the four backend controllers (auth, tenant
// administration, customers, users). Methods never attach credentials
// themselves; bearer-token handling is the Authorizer's job, a
// RoundTripper middleware wrapped around the transport so that every
// outgoing request picks up the current session token and every 401
// response tears the session down in exactly one place.
//
// Backend validation failures arrive as a structured JSON body
// (timestamp, status, error, message, path, fieldErrors). Non-2xx
// responses that carry this shape decode into *Error; anything else
// degrades to a plain wrapped error whose text reaches the user via
// Message.
package api
