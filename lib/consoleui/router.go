// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"strconv"
	"strings"
)

// Route patterns. Edit routes carry the entity ID in the :id segment.
const (
	PathRoot         = "/"
	PathLogin        = "/login"
	PathRegister     = "/register"
	PathDashboard    = "/dashboard"
	PathCustomers    = "/customers"
	PathCustomerNew  = "/customers/new"
	PathCustomerEdit = "/customers/:id/edit"
	PathUsers        = "/users"
	PathUserNew      = "/users/new"
	PathUserEdit     = "/users/:id/edit"
)

// Target is a resolved navigation destination: a route pattern plus
// the entity ID for edit routes (zero otherwise).
type Target struct {
	Path string
	ID   int64
}

// EditCustomerPath returns the concrete path for editing one customer.
func EditCustomerPath(id int64) string {
	return "/customers/" + strconv.FormatInt(id, 10) + "/edit"
}

// EditUserPath returns the concrete path for editing one user.
func EditUserPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10) + "/edit"
}

// ParsePath matches a concrete path against the route table. The root
// path and any unmatched path both resolve to the dashboard, so a
// stale or mistyped destination lands somewhere sensible instead of
// failing; the boolean reports whether the path matched a real route.
func ParsePath(path string) (Target, bool) {
	switch path {
	case PathLogin, PathRegister, PathDashboard,
		PathCustomers, PathCustomerNew, PathUsers, PathUserNew:
		return Target{Path: path}, true
	case PathRoot:
		return Target{Path: PathDashboard}, true
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 3 && segments[2] == "edit" {
		id, err := strconv.ParseInt(segments[1], 10, 64)
		if err == nil && id > 0 {
			switch segments[0] {
			case "customers":
				return Target{Path: PathCustomerEdit, ID: id}, true
			case "users":
				return Target{Path: PathUserEdit, ID: id}, true
			}
		}
	}

	return Target{Path: PathDashboard}, false
}

// Guard decides whether navigation to a route may proceed given the
// current session state. When it denies, it names the route to send
// the user to instead.
type Guard func(authenticated bool) (allowed bool, redirect string)

// AuthGuard protects routes that require a signed-in session. Denied
// navigations go to the login screen.
func AuthGuard(authenticated bool) (bool, string) {
	if authenticated {
		return true, ""
	}
	return false, PathLogin
}

// GuestGuard protects the login and registration screens from
// already-signed-in sessions. Denied navigations go to the dashboard.
func GuestGuard(authenticated bool) (bool, string) {
	if authenticated {
		return false, PathDashboard
	}
	return true, ""
}

func guardFor(path string) Guard {
	switch path {
	case PathLogin, PathRegister:
		return GuestGuard
	default:
		return AuthGuard
	}
}

// Resolve parses a requested path and applies the destination's guard,
// returning the target actually navigated to. A denied target's
// redirect is always permitted under the same session state, so one
// guard application suffices.
func Resolve(path string, authenticated bool) Target {
	target, _ := ParsePath(path)
	if allowed, redirect := guardFor(target.Path)(authenticated); !allowed {
		target = Target{Path: redirect}
	}
	return target
}
