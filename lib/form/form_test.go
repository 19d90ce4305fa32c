// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package form

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/tessera-admin/tessera/lib/api"
)

func TestRequiredAndFormatRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		value string
		pass  bool
	}{
		{"required rejects empty", Required(), "", false},
		{"required accepts value", Required(), "x", true},
		{"minlen ignores empty", MinLen(8), "", true},
		{"minlen rejects short", MinLen(8), "short", false},
		{"minlen accepts exact", MinLen(8), "12345678", true},
		{"maxlen rejects long", MaxLen(3), "toolong", false},
		{"letters rejects digits", LettersOnly(), "Jane2", false},
		{"letters accepts name", LettersOnly(), "Jane", true},
		{"email rejects bare word", Email(), "nope", false},
		{"email accepts address", Email(), "jane@example.com", true},
		{"mobile rejects leading 5", Mobile(), "5123456789", false},
		{"mobile rejects nine digits", Mobile(), "912345678", false},
		{"mobile accepts valid", Mobile(), "9123456789", true},
		{"address accepts punctuation", Address(), "12/4 Hill Rd, #2", true},
		{"address rejects other symbols", Address(), "flat @ corner", false},
		{"date rejects slashes", Date(), "15/01/2000", false},
		{"date accepts iso", Date(), "2000-01-15", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			message := test.rule(test.value)
			if test.pass && message != "" {
				t.Errorf("expected pass, got %q", message)
			}
			if !test.pass && message == "" {
				t.Error("expected a violation message")
			}
		})
	}
}

func TestValidIsPureFunctionOfValues(t *testing.T) {
	f := New()
	f.Add("email", Required(), Email())
	f.Add("username", Required(), MinLen(2))

	if f.Valid() {
		t.Error("empty required fields must be invalid")
	}

	f.SetValue("email", "jane@example.com")
	f.SetValue("username", "jane")
	if !f.Valid() {
		t.Error("expected valid form")
	}

	f.SetValue("email", "broken")
	if f.Valid() {
		t.Error("expected invalid after bad edit")
	}
}

func TestDeriveRecomputesOnDependencyChange(t *testing.T) {
	f := New()
	f.Add("dateOfBirth", Required(), Date())
	f.Add("age")

	calls := 0
	f.Derive("dateOfBirth", func(value string) {
		calls++
		f.SetValue("age", strconv.Itoa(len(value))) // stand-in computation
	})

	f.SetValue("dateOfBirth", "2000-01-15")
	if calls != 1 {
		t.Fatalf("expected one hook call, got %d", calls)
	}
	if f.Value("age") != "10" {
		t.Errorf("derived value = %q", f.Value("age"))
	}

	// Editing an unrelated field does not fire the hook.
	f.SetValue("age", "0")
	if calls != 1 {
		t.Errorf("hook fired on non-dependency edit")
	}
}

func serverError(fieldErrors map[string]string, message string) error {
	return fmt.Errorf("api: submit failed: %w", &api.Error{
		Status:      400,
		Message:     message,
		FieldErrors: fieldErrors,
	})
}

func TestApplyServerErrorsAttachesAndReturnsFirst(t *testing.T) {
	f := New()
	f.Add("email", Required(), Email())
	f.Add("username", Required())

	f.SetValue("email", "jane@example.com")
	f.SetValue("username", "jane")

	got := f.ApplyServerErrors(serverError(map[string]string{
		"username": "Username already taken",
	}, "Validation failed"))

	if got != "Username already taken" {
		t.Errorf("summary = %q", got)
	}
	if f.Field("username").ServerError() != "Username already taken" {
		t.Error("server message not attached to field")
	}
	if !f.Field("username").Touched() {
		t.Error("flagged field must be marked touched")
	}
	if f.Valid() {
		t.Error("form with server errors is invalid until the field is edited")
	}

	// Editing the flagged field clears the server message.
	f.SetValue("username", "jane2")
	if f.Field("username").ServerError() != "" {
		t.Error("edit must clear the server message")
	}
	if !f.Valid() {
		t.Error("expected valid after clearing edit")
	}
}

func TestApplyServerErrorsIsIdempotent(t *testing.T) {
	f := New()
	f.Add("email", Required(), Email())
	f.Add("username", Required())
	f.SetValue("email", "") // client-side violation stays put throughout
	f.SetValue("username", "jane")

	f.ApplyServerErrors(serverError(map[string]string{
		"username": "Too short",
	}, ""))
	f.ApplyServerErrors(serverError(map[string]string{
		"email": "Email already registered",
	}, ""))

	// Only the second payload's messages remain.
	if f.Field("username").ServerError() != "" {
		t.Error("stale server message survived a second application")
	}
	if f.Field("email").ServerError() != "Email already registered" {
		t.Error("second payload's message missing")
	}
	// The client rule violation on email is untouched.
	if f.Field("email").ClientError() == "" {
		t.Error("client-side validation state must survive server merges")
	}
}

func TestApplyServerErrorsFallbacks(t *testing.T) {
	f := New()
	f.Add("email")

	// Structured error without field errors: top-level message.
	got := f.ApplyServerErrors(serverError(nil, "Tenant suspended"))
	if got != "Tenant suspended" {
		t.Errorf("summary = %q, want top-level message", got)
	}

	// No structured payload at all: translated transport text.
	transport := errors.New("connection refused")
	if got := f.ApplyServerErrors(transport); got != "connection refused" {
		t.Errorf("summary = %q, want transport text", got)
	}

	// Structured error with neither field errors nor message.
	got = f.ApplyServerErrors(&api.Error{Status: 400})
	if got != "" {
		t.Errorf("summary = %q, want empty", got)
	}
}

func TestApplyServerErrorsUnknownFieldStillSummarized(t *testing.T) {
	f := New()
	f.Add("email")

	got := f.ApplyServerErrors(serverError(map[string]string{
		"companyCode": "Unknown company",
	}, "Validation failed"))

	if got != "Unknown company" {
		t.Errorf("summary = %q, want the unmatched field's message", got)
	}
}

func TestResetReturnsToPristine(t *testing.T) {
	f := New()
	f.Add("email", Required())
	f.SetValue("email", "x@y.zz")
	f.Touch("email")
	f.ApplyServerErrors(serverError(map[string]string{"email": "Bad"}, ""))

	f.Reset()

	field := f.Field("email")
	if field.Value() != "" || field.ServerError() != "" || field.Touched() {
		t.Errorf("reset left state behind: value=%q server=%q touched=%v",
			field.Value(), field.ServerError(), field.Touched())
	}
}

func TestSetRulesSwitchesMode(t *testing.T) {
	f := New()
	f.Add("password", Required(), MinLen(8), MaxLen(50))

	if f.Valid() {
		t.Error("password required in create mode")
	}

	// Edit mode drops the password rules entirely.
	f.SetRules("password")
	if !f.Valid() {
		t.Error("password must not be required in edit mode")
	}
}
