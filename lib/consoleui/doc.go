// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package consoleui implements the interactive Tessera console: a
// bubbletea application with one screen per route of the original
// admin surface (login, registration, dashboard, customer and user
// lists and forms).
//
// Navigation goes through a small router with two guards: protected
// routes require a session, and the public login/register routes
// require the absence of one. Every denied navigation redirects rather
// than erroring. Screens are sub-models behind the screen interface;
// the root App owns routing, the chrome, and the reaction to a 401
// (the request layer clears the session and pokes the app through a
// channel, the app returns to the login screen).
//
// All backend traffic runs in tea commands off the event loop. List
// screens stamp each request with a generation counter and drop
// responses from superseded requests, so a slow page never overwrites
// a newer one.
package consoleui
