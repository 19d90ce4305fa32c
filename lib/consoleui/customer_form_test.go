// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"strconv"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessera-admin/tessera/lib/api"
)

func fillCustomerForm(s *customerFormScreen) {
	s.form.SetValue("firstName", "Jane")
	s.form.SetValue("lastName", "Doe")
	s.form.SetValue("dateOfBirth", "1996-03-20")
	s.form.SetValue("gender", api.GenderFemale)
	s.form.SetValue("mobile", "9123456789")
	s.form.SetValue("email", "jane@example.com")
	s.form.SetValue("address1", "12/4 Hill Rd")
}

func TestCustomerFormInvalidMobileBlocksSubmission(t *testing.T) {
	// No create stub: a request here fails the test.
	app := newTestApp(t, &fakeBackend{t: t}, "token")
	s := newCustomerFormScreen(app, 0)
	fillCustomerForm(s)
	s.form.SetValue("mobile", "5123456789")

	if cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlS}); cmd != nil {
		t.Error("invalid mobile must not produce a request command")
	}
	if s.form.Field("mobile").Problem() == "" {
		t.Error("the mobile violation must be visible")
	}
}

func TestCustomerFormDerivesAgeFromDateOfBirth(t *testing.T) {
	app := newTestApp(t, &fakeBackend{t: t}, "token")
	s := newCustomerFormScreen(app, 0)

	s.form.SetValue("dateOfBirth", "1996-03-20")
	dateOfBirth, _ := time.Parse(api.DateLayout, "1996-03-20")
	want := strconv.Itoa(api.Age(dateOfBirth, time.Now()))
	if got := s.form.Value("age"); got != want {
		t.Errorf("derived age = %q, want %q", got, want)
	}

	// An unparseable date clears the derived value.
	s.form.SetValue("dateOfBirth", "20/03/1996")
	if s.form.Value("age") != "" {
		t.Error("invalid date must clear the derived age")
	}
}

func TestCustomerFormCreateSubmitsComputedAge(t *testing.T) {
	backend := &fakeBackend{t: t}
	var seen api.Customer
	backend.createCustomer = func(ctx context.Context, customer api.Customer) (*api.Customer, error) {
		seen = customer
		created := customer
		created.ID = 11
		return &created, nil
	}
	app := newTestApp(t, backend, "token")
	s := newCustomerFormScreen(app, 0)
	fillCustomerForm(s)

	done := drain(s.Update(tea.KeyMsg{Type: tea.KeyCtrlS}))
	msg, ok := drain(s.Update(done)).(navigateMsg)
	if !ok || msg.path != PathCustomers {
		t.Fatalf("expected navigation to the customer list, got %+v", msg)
	}

	dateOfBirth, _ := time.Parse(api.DateLayout, "1996-03-20")
	if seen.Age != api.Age(dateOfBirth, time.Now()) {
		t.Errorf("submitted age = %d", seen.Age)
	}
	if seen.ID != 0 || seen.FirstName != "Jane" || seen.Gender != api.GenderFemale {
		t.Errorf("submitted customer = %+v", seen)
	}
}

func TestCustomerFormEditFetchesAndUpdates(t *testing.T) {
	backend := &fakeBackend{t: t}
	backend.getCustomer = func(ctx context.Context, id int64) (*api.Customer, error) {
		return &api.Customer{
			ID: 11, FirstName: "Jane", LastName: "Doe",
			DateOfBirth: "1996-03-20", Gender: api.GenderFemale,
			Mobile: "9123456789", Email: "jane@example.com",
			Address1: "12/4 Hill Rd",
		}, nil
	}
	var seen api.Customer
	backend.updateCustomer = func(ctx context.Context, customer api.Customer) (*api.Customer, error) {
		seen = customer
		return &customer, nil
	}
	app := newTestApp(t, backend, "token")
	s := newCustomerFormScreen(app, 11)

	s.Update(drain(s.Init()))
	if s.loading {
		t.Fatal("loading must clear after the fetch")
	}
	if s.form.Value("firstName") != "Jane" || s.form.Value("gender") != api.GenderFemale {
		t.Errorf("populated form = %q/%q", s.form.Value("firstName"), s.form.Value("gender"))
	}

	s.form.SetValue("lastName", "Smith")
	done := drain(s.Update(tea.KeyMsg{Type: tea.KeyCtrlS}))
	s.Update(done)

	if seen.ID != 11 || seen.LastName != "Smith" {
		t.Errorf("updated customer = %+v", seen)
	}
}

func TestCustomerFormServerFieldErrorAttaches(t *testing.T) {
	backend := &fakeBackend{t: t}
	backend.createCustomer = func(ctx context.Context, customer api.Customer) (*api.Customer, error) {
		return nil, &api.Error{
			Status:      400,
			Message:     "Validation failed",
			FieldErrors: map[string]string{"email": "Email already registered"},
		}
	}
	app := newTestApp(t, backend, "token")
	s := newCustomerFormScreen(app, 0)
	fillCustomerForm(s)

	done := drain(s.Update(tea.KeyMsg{Type: tea.KeyCtrlS}))
	if cmd := s.Update(done); cmd != nil {
		t.Error("failed save must not navigate")
	}
	if s.form.Field("email").ServerError() != "Email already registered" {
		t.Error("field error missing from the form")
	}
	if s.serverMessage != "Email already registered" {
		t.Errorf("server message = %q", s.serverMessage)
	}
}
