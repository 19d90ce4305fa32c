// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/url"
	"strconv"
)

// Sort directions as the backend spells them.
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// Page is one slice of a larger sorted result set, as returned by the
// backend's paginated list endpoints.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

// PageQuery is the client-side list state: zero-based page index, page
// size, sort field and direction, and an optional free-text search
// term (only the customer endpoint understands search).
//
// PageQuery is a value type; the With* transforms return the adjusted
// query rather than mutating in place, which keeps every state change
// an explicit, testable step.
type PageQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
	Search  string
}

// DefaultPageQuery returns the initial list state: first page, the
// given size, sorted by id ascending.
func DefaultPageQuery(size int) PageQuery {
	return PageQuery{
		Page:    0,
		Size:    size,
		SortBy:  "id",
		SortDir: SortAscending,
	}
}

// Values encodes the query as URL parameters. The search parameter is
// omitted entirely when the term is empty.
func (q PageQuery) Values() url.Values {
	values := url.Values{}
	values.Set("pageNo", strconv.Itoa(q.Page))
	values.Set("pageSize", strconv.Itoa(q.Size))
	values.Set("sortBy", q.SortBy)
	values.Set("sortDir", q.SortDir)
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	return values
}

// ToggleSort returns the query sorted by field: clicking the active
// field flips the direction, clicking a new field switches to it with
// the direction reset to ascending. The page index is left alone.
func (q PageQuery) ToggleSort(field string) PageQuery {
	if q.SortBy == field && q.SortDir == SortAscending {
		q.SortDir = SortDescending
	} else {
		q.SortDir = SortAscending
	}
	q.SortBy = field
	return q
}

// WithPage returns the query moved to the given zero-based page index.
func (q PageQuery) WithPage(page int) PageQuery {
	q.Page = page
	return q
}

// WithSize returns the query with a new page size. Changing the size
// resets the page index to zero.
func (q PageQuery) WithSize(size int) PageQuery {
	q.Size = size
	q.Page = 0
	return q
}

// WithSearch returns the query with a new search term. Changing the
// filter resets the page index to zero.
func (q PageQuery) WithSearch(term string) PageQuery {
	q.Search = term
	q.Page = 0
	return q
}
