// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the tessera binary:
// a declarative command tree with pflag-based flag parsing, synthesized
// help output, typo suggestions for unknown commands and flags, and
// shared helpers for JSON output, logging, and password input.
package cli
