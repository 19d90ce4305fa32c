// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package form is the console's validation engine: an ordered set of
// named fields, each with an explicit client-side rule list, plus one
// slot per field for a server-originated validation message.
//
// Validity is a pure function of the current values; there are no
// observer chains. Derived fields (like a customer's age) register a
// recompute hook on their dependency and are updated synchronously
// when it changes. Server errors from a failed submission are merged
// in through ApplyServerErrors, which is idempotent: each call first
// strips every previously applied server message, so two submissions
// in a row leave only the latest payload attached.
package form
