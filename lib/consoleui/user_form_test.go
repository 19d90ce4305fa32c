// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessera-admin/tessera/lib/api"
)

func TestUserFormCreateForcesAdminActive(t *testing.T) {
	backend := &fakeBackend{t: t}
	var seen api.User
	backend.createUser = func(ctx context.Context, user api.User) (*api.User, error) {
		seen = user
		created := user
		created.ID = 3
		created.Password = ""
		return &created, nil
	}
	app := newTestApp(t, backend, "token")
	s := newUserFormScreen(app, 0)
	s.form.SetValue("email", "jane@example.com")
	s.form.SetValue("username", "jane")
	s.form.SetValue("password", "hunter2hunter2")

	done := drain(s.Update(tea.KeyMsg{Type: tea.KeyCtrlS}))
	msg, ok := drain(s.Update(done)).(navigateMsg)
	if !ok || msg.path != PathUsers {
		t.Fatalf("expected navigation to the user list, got %+v", msg)
	}

	if seen.Role != api.RoleAdmin || seen.Status != api.StatusActive {
		t.Errorf("created user role/status = %q/%q", seen.Role, seen.Status)
	}
	if seen.Password != "hunter2hunter2" {
		t.Error("creation must carry the password")
	}
}

func TestUserFormCreateRequiresPassword(t *testing.T) {
	app := newTestApp(t, &fakeBackend{t: t}, "token")
	s := newUserFormScreen(app, 0)
	s.form.SetValue("email", "jane@example.com")
	s.form.SetValue("username", "jane")

	if cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlS}); cmd != nil {
		t.Error("missing password must block creation")
	}
}

func TestUserFormEditExcludesPassword(t *testing.T) {
	backend := &fakeBackend{t: t}
	backend.getUser = func(ctx context.Context, id int64) (*api.User, error) {
		return &api.User{
			ID: 3, Email: "jane@example.com", Username: "jane",
			Role: api.RoleAdmin, Status: api.StatusActive,
		}, nil
	}
	var seen api.User
	backend.updateUser = func(ctx context.Context, user api.User) (*api.User, error) {
		seen = user
		return &user, nil
	}
	app := newTestApp(t, backend, "token")
	s := newUserFormScreen(app, 3)

	s.Update(drain(s.Init()))

	// The edit variant has no password widget at all.
	for _, w := range s.widgets {
		if w.Name() == "password" {
			t.Fatal("edit form must not show a password field")
		}
	}

	s.form.SetValue("username", "jane2")
	done := drain(s.Update(tea.KeyMsg{Type: tea.KeyCtrlS}))
	s.Update(done)

	if seen.Password != "" {
		t.Error("update must never carry a password")
	}
	if seen.ID != 3 || seen.Username != "jane2" {
		t.Errorf("updated user = %+v", seen)
	}
	if seen.Role != api.RoleAdmin || seen.Status != api.StatusActive {
		t.Error("update must submit role ADMIN and status ACTIVE")
	}
}
