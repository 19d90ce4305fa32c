// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/pflag"

	"github.com/tessera-admin/tessera/lib/api"
	"github.com/tessera-admin/tessera/lib/config"
)

// listFlags are the pagination flags shared by the list subcommands.
type listFlags struct {
	page       int
	size       int
	sortBy     string
	sortDir    string
	outputJSON bool
}

func (f *listFlags) register(flagSet *pflag.FlagSet) {
	flagSet.IntVar(&f.page, "page", 0, "zero-based page number")
	flagSet.IntVar(&f.size, "size", 0, "page size (5, 10, 25, or 100; default from config)")
	flagSet.StringVar(&f.sortBy, "sort-by", "id", "sort field")
	flagSet.StringVar(&f.sortDir, "sort-dir", api.SortAscending, "sort direction (asc or desc)")
	flagSet.BoolVar(&f.outputJSON, "json", false, "output as JSON")
}

// query validates the flags and assembles the page query, falling
// back to the configured default page size.
func (f *listFlags) query(cfg *config.Config) (api.PageQuery, error) {
	if f.page < 0 {
		return api.PageQuery{}, fmt.Errorf("--page must not be negative")
	}

	size := f.size
	if size == 0 {
		size = cfg.PageSize
	}
	if !slices.Contains(config.PageSizes, size) {
		return api.PageQuery{}, fmt.Errorf("--size must be one of %v", config.PageSizes)
	}

	if f.sortDir != api.SortAscending && f.sortDir != api.SortDescending {
		return api.PageQuery{}, fmt.Errorf("--sort-dir must be %q or %q",
			api.SortAscending, api.SortDescending)
	}

	return api.PageQuery{
		Page:    f.page,
		Size:    size,
		SortBy:  f.sortBy,
		SortDir: f.sortDir,
	}, nil
}
