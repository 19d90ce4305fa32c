// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

// FallbackMessage is shown when a failure carries no usable text at
// all, typically a transport error with an empty structured body.
const FallbackMessage = "An error occurred. Please try again."

// Error is the structured error body returned by the backend. Callers
// use errors.As (or the AsError helper) to extract it:
//
//	var apiErr *api.Error
//	if errors.As(err, &apiErr) {
//	    for field, message := range apiErr.FieldErrors { ... }
//	}
type Error struct {
	// Timestamp is the server-side time of the failure (ISO 8601).
	Timestamp string `json:"timestamp,omitempty"`
	// Status is the HTTP status code. Populated from the response
	// status when the body omits it.
	Status int `json:"status"`
	// Kind is the short error classification (e.g., "Bad Request").
	Kind string `json:"error,omitempty"`
	// Message is the human-readable summary.
	Message string `json:"message,omitempty"`
	// Path is the request path the backend saw.
	Path string `json:"path,omitempty"`
	// FieldErrors maps field names to per-field validation messages.
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s (%d)", e.Kind, e.Status)
}

// AsError extracts the structured backend error from err, if present.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is a structured backend error with the
// given HTTP status code.
func IsStatus(err error, status int) bool {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Status == status
	}
	return false
}

// Message returns the text to show the user for a failed call: the
// structured message when one exists, else the transport-level error
// text, else the fixed fallback.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsError(err); ok {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return FallbackMessage
	}
	if text := err.Error(); text != "" {
		return text
	}
	return FallbackMessage
}
