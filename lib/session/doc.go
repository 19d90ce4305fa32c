// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package session holds the operator's authentication state for the
// Tessera console: a single opaque bearer token issued by the backend
// at login.
//
// The token is persisted to an owner-only JSON file so that it survives
// console restarts, the terminal equivalent of a browser's local
// storage. There is no refresh or expiry bookkeeping on the client;
// a token is trusted until the backend rejects it with a 401, at which
// point the request layer clears the store.
//
// The store is constructed explicitly and handed to the API client and
// the navigation guards. Nothing in this module reads ambient global
// state.
package session
