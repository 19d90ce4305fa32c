// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package form

import (
	"sort"

	"github.com/tessera-admin/tessera/lib/api"
)

// Field is one named input with its rule list, current value, and a
// slot for a server-originated validation message. Fields are created
// through Form.Add and mutated through the Form, which keeps derived
// recomputes and server-error clearing in one place.
type Field struct {
	name        string
	value       string
	rules       []Rule
	serverError string
	touched     bool
}

// Name returns the field's wire name (matches the backend's
// fieldErrors keys).
func (f *Field) Name() string { return f.name }

// Value returns the current value.
func (f *Field) Value() string { return f.value }

// Touched reports whether the field has been visited or a submission
// was attempted. Screens only display errors on touched fields.
func (f *Field) Touched() bool { return f.touched }

// ClientError returns the first failing rule's message, or "".
func (f *Field) ClientError() string {
	for _, rule := range f.rules {
		if message := rule(f.value); message != "" {
			return message
		}
	}
	return ""
}

// ServerError returns the server-originated message, or "".
func (f *Field) ServerError() string { return f.serverError }

// Problem returns the message to display for this field: the client
// rule violation first, else the server message, else "".
func (f *Field) Problem() string {
	if message := f.ClientError(); message != "" {
		return message
	}
	return f.serverError
}

// Form is an ordered collection of fields with derived-field hooks.
type Form struct {
	fields []*Field
	index  map[string]*Field
	hooks  map[string][]func(value string)
}

// New creates an empty form.
func New() *Form {
	return &Form{
		index: make(map[string]*Field),
		hooks: make(map[string][]func(value string)),
	}
}

// Add appends a field with the given rules. Field order is display
// order and also the scan order for picking the first server error.
func (f *Form) Add(name string, rules ...Rule) *Field {
	field := &Field{name: name, rules: rules}
	f.fields = append(f.fields, field)
	f.index[name] = field
	return field
}

// Field returns the named field, or nil.
func (f *Form) Field(name string) *Field { return f.index[name] }

// Fields returns the fields in declaration order.
func (f *Form) Fields() []*Field { return f.fields }

// Value returns the named field's current value ("" for unknown names).
func (f *Form) Value(name string) string {
	if field := f.index[name]; field != nil {
		return field.value
	}
	return ""
}

// SetValue updates a field. Editing a field discards its server
// message (the next submission will fetch a fresh verdict) and fires
// any derived-field hooks registered on it.
func (f *Form) SetValue(name, value string) {
	field := f.index[name]
	if field == nil {
		return
	}
	field.value = value
	field.serverError = ""

	for _, hook := range f.hooks[name] {
		hook(value)
	}
}

// SetRules replaces a field's rule list. Used where validity depends
// on mode, such as a password that is only required on creation.
func (f *Form) SetRules(name string, rules ...Rule) {
	if field := f.index[name]; field != nil {
		field.rules = rules
	}
}

// Derive registers a hook fired synchronously whenever the named
// dependency changes. The hook typically recomputes another field via
// SetValue; recursion is safe as long as the dependency graph is
// acyclic.
func (f *Form) Derive(dependency string, hook func(value string)) {
	f.hooks[dependency] = append(f.hooks[dependency], hook)
}

// Touch marks a field as visited.
func (f *Form) Touch(name string) {
	if field := f.index[name]; field != nil {
		field.touched = true
	}
}

// TouchAll marks every field as visited. Called on a submission
// attempt so all problems become visible.
func (f *Form) TouchAll() {
	for _, field := range f.fields {
		field.touched = true
	}
}

// Valid reports whether every field passes its client rules and
// carries no server message. A field flagged by the backend stays
// invalid until it is edited.
func (f *Form) Valid() bool {
	for _, field := range f.fields {
		if field.ClientError() != "" || field.serverError != "" {
			return false
		}
	}
	return true
}

// Reset returns the form to pristine: empty values, no server
// messages, nothing touched. Rules and hooks are kept.
func (f *Form) Reset() {
	for _, field := range f.fields {
		field.value = ""
		field.serverError = ""
		field.touched = false
	}
}

// ApplyServerErrors merges a failed submission into the form. Previous
// server messages are stripped from every field first (client rule
// state is untouched), then each entry of the structured payload's
// field-error map is attached to its field and the field marked
// touched. Returns the first field message in field declaration order,
// else the payload's top-level message, else "". When the error carries
// no structured payload at all, the plain translated message is
// returned instead.
func (f *Form) ApplyServerErrors(err error) string {
	apiErr, ok := api.AsError(err)
	if !ok {
		return api.Message(err)
	}

	for _, field := range f.fields {
		field.serverError = ""
	}

	first := ""
	for _, field := range f.fields {
		message, present := apiErr.FieldErrors[field.name]
		if !present {
			continue
		}
		field.serverError = message
		field.touched = true
		if first == "" {
			first = message
		}
	}

	// A field error naming no form field still counts as the summary;
	// scan in sorted key order for a deterministic pick.
	if first == "" && len(apiErr.FieldErrors) > 0 {
		names := make([]string, 0, len(apiErr.FieldErrors))
		for name := range apiErr.FieldErrors {
			names = append(names, name)
		}
		sort.Strings(names)
		first = apiErr.FieldErrors[names[0]]
	}

	if first != "" {
		return first
	}
	return apiErr.Message
}
