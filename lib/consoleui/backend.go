// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessera-admin/tessera/lib/api"
	"github.com/tessera-admin/tessera/lib/secret"
)

// Backend is the slice of the gateway API the console consumes.
// *api.Client satisfies it; tests drive screens with fakes.
type Backend interface {
	Login(ctx context.Context, companyCode, username string, password *secret.Buffer) (*api.LoginResponse, error)
	RegisterTenant(ctx context.Context, request api.RegisterRequest) error

	ListCustomers(ctx context.Context, query api.PageQuery) (*api.Page[api.Customer], error)
	GetCustomer(ctx context.Context, id int64) (*api.Customer, error)
	CreateCustomer(ctx context.Context, customer api.Customer) (*api.Customer, error)
	UpdateCustomer(ctx context.Context, customer api.Customer) (*api.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error

	ListUsers(ctx context.Context, query api.PageQuery) (*api.Page[api.User], error)
	GetUser(ctx context.Context, id int64) (*api.User, error)
	CreateUser(ctx context.Context, user api.User) (*api.User, error)
	UpdateUser(ctx context.Context, user api.User) (*api.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// navigateMsg asks the root model to route to a new path. Screens
// emit it through navigateCmd rather than touching the router
// directly.
type navigateMsg struct {
	path string
}

func navigateCmd(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

// sessionExpiredMsg arrives when the request layer observed a 401 and
// cleared the session. The root model returns to the login screen.
type sessionExpiredMsg struct{}

// logoutMsg asks the root model to clear the session deliberately.
type logoutMsg struct{}
