// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret provides a memory-safe buffer for sensitive material,
// primarily the passwords the console collects before handing them to
// the backend.
//
// Buffer allocates its storage outside the Go heap via
// mmap(MAP_ANONYMOUS), locks it into physical RAM with mlock so it
// cannot be swapped to disk, and excludes it from core dumps with
// madvise(MADV_DONTDUMP). Close zeroes, unlocks, and unmaps the region.
// Because the garbage collector never sees the allocation, it cannot
// copy or relocate the secret.
//
// A heap copy still exists briefly at the JSON serialization boundary
// when a request body is built; that copy is short-lived and
// unavoidable with encoding/json.
package secret
