// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessera-admin/tessera/lib/api"
	"github.com/tessera-admin/tessera/lib/secret"
	"github.com/tessera-admin/tessera/lib/session"
)

// fakeBackend implements Backend with overridable function fields.
// Unset operations fail the test, so each test states exactly the
// traffic it expects.
type fakeBackend struct {
	t *testing.T

	login          func(ctx context.Context, companyCode, username string, password *secret.Buffer) (*api.LoginResponse, error)
	registerTenant func(ctx context.Context, request api.RegisterRequest) error

	listCustomers  func(ctx context.Context, query api.PageQuery) (*api.Page[api.Customer], error)
	getCustomer    func(ctx context.Context, id int64) (*api.Customer, error)
	createCustomer func(ctx context.Context, customer api.Customer) (*api.Customer, error)
	updateCustomer func(ctx context.Context, customer api.Customer) (*api.Customer, error)
	deleteCustomer func(ctx context.Context, id int64) error

	listUsers  func(ctx context.Context, query api.PageQuery) (*api.Page[api.User], error)
	getUser    func(ctx context.Context, id int64) (*api.User, error)
	createUser func(ctx context.Context, user api.User) (*api.User, error)
	updateUser func(ctx context.Context, user api.User) (*api.User, error)
	deleteUser func(ctx context.Context, id int64) error
}

func (f *fakeBackend) Login(ctx context.Context, companyCode, username string, password *secret.Buffer) (*api.LoginResponse, error) {
	if f.login == nil {
		f.t.Fatal("unexpected Login call")
	}
	return f.login(ctx, companyCode, username, password)
}

func (f *fakeBackend) RegisterTenant(ctx context.Context, request api.RegisterRequest) error {
	if f.registerTenant == nil {
		f.t.Fatal("unexpected RegisterTenant call")
	}
	return f.registerTenant(ctx, request)
}

func (f *fakeBackend) ListCustomers(ctx context.Context, query api.PageQuery) (*api.Page[api.Customer], error) {
	if f.listCustomers == nil {
		f.t.Fatal("unexpected ListCustomers call")
	}
	return f.listCustomers(ctx, query)
}

func (f *fakeBackend) GetCustomer(ctx context.Context, id int64) (*api.Customer, error) {
	if f.getCustomer == nil {
		f.t.Fatal("unexpected GetCustomer call")
	}
	return f.getCustomer(ctx, id)
}

func (f *fakeBackend) CreateCustomer(ctx context.Context, customer api.Customer) (*api.Customer, error) {
	if f.createCustomer == nil {
		f.t.Fatal("unexpected CreateCustomer call")
	}
	return f.createCustomer(ctx, customer)
}

func (f *fakeBackend) UpdateCustomer(ctx context.Context, customer api.Customer) (*api.Customer, error) {
	if f.updateCustomer == nil {
		f.t.Fatal("unexpected UpdateCustomer call")
	}
	return f.updateCustomer(ctx, customer)
}

func (f *fakeBackend) DeleteCustomer(ctx context.Context, id int64) error {
	if f.deleteCustomer == nil {
		f.t.Fatal("unexpected DeleteCustomer call")
	}
	return f.deleteCustomer(ctx, id)
}

func (f *fakeBackend) ListUsers(ctx context.Context, query api.PageQuery) (*api.Page[api.User], error) {
	if f.listUsers == nil {
		f.t.Fatal("unexpected ListUsers call")
	}
	return f.listUsers(ctx, query)
}

func (f *fakeBackend) GetUser(ctx context.Context, id int64) (*api.User, error) {
	if f.getUser == nil {
		f.t.Fatal("unexpected GetUser call")
	}
	return f.getUser(ctx, id)
}

func (f *fakeBackend) CreateUser(ctx context.Context, user api.User) (*api.User, error) {
	if f.createUser == nil {
		f.t.Fatal("unexpected CreateUser call")
	}
	return f.createUser(ctx, user)
}

func (f *fakeBackend) UpdateUser(ctx context.Context, user api.User) (*api.User, error) {
	if f.updateUser == nil {
		f.t.Fatal("unexpected UpdateUser call")
	}
	return f.updateUser(ctx, user)
}

func (f *fakeBackend) DeleteUser(ctx context.Context, id int64) error {
	if f.deleteUser == nil {
		f.t.Fatal("unexpected DeleteUser call")
	}
	return f.deleteUser(ctx, id)
}

// newTestApp builds an App over a fake backend and a session store in
// a temporary directory.
func newTestApp(t *testing.T, backend *fakeBackend, token string) *App {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("opening session store: %v", err)
	}
	if token != "" {
		if err := store.SetToken(token); err != nil {
			t.Fatalf("seeding session token: %v", err)
		}
	}
	return NewApp(AppConfig{
		Backend: backend,
		Session: store,
		Logger:  slog.New(slog.DiscardHandler),
	})
}

// drain runs a command synchronously and returns its message, nil for
// a nil command. Batches are not supported; tests that need them
// collect the batched commands themselves.
func drain(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// typeText feeds runes into the currently focused widget.
func typeText(update func(tea.Msg) tea.Cmd, text string) {
	for _, r := range text {
		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func customerPage(total int64, customers ...api.Customer) *api.Page[api.Customer] {
	return &api.Page[api.Customer]{
		Content:       customers,
		PageSize:      10,
		TotalElements: total,
		TotalPages:    1,
	}
}

func userPage(total int64, users ...api.User) *api.Page[api.User] {
	return &api.Page[api.User]{
		Content:       users,
		PageSize:      10,
		TotalElements: total,
		TotalPages:    1,
	}
}
