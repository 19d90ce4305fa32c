// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the Tessera console.
//
// Configuration is loaded from a single YAML file specified by:
//   - TESSERA_CONFIG environment variable, or
//   - --config flag passed to the command
//
// When neither is set, built-in defaults apply (local backend on port
// 8080). Environment variables never override individual config values;
// the file is the single source of truth, which keeps configuration
// deterministic and auditable.
package config
