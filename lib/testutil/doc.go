// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared helpers for tests: channel
// operations with timeout safety valves, so individual tests never
// hang on a receive that will not come.
package testutil
