// Package fopbridge provides support for query paging with unified response types.
package fopbridge

import (
	"encoding/json"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
)

// ============================================================================
// Unified Pagination Response
// ============================================================================

// PageInfo describes the position of a page within a listing.
type PageInfo struct {
	Limit      int   `json:"limit"`
	NextCursor int64 `json:"next_cursor,omitempty"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// PaginatedResponse wraps records with cursor pagination metadata.
type PaginatedResponse[T any] struct {
	Records  []T      `json:"records"`
	PageInfo PageInfo `json:"page_info"`
}

func (p PaginatedResponse[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json", err
}

// NewPaginatedResponseInt64Cursor builds a paginated response for
// keyset listings where the cursor is the last record's primary key.
// A full page is assumed to have a next page.
func NewPaginatedResponseInt64Cursor[T any](records []T, page fop.PageInt64Cursor, lastID func(T) int64) PaginatedResponse[T] {
	if records == nil {
		records = []T{}
	}

	resp := PaginatedResponse[T]{
		Records: records,
		PageInfo: PageInfo{
			Limit:   page.Limit,
			HasPrev: page.Cursor != 0,
		},
	}

	if page.Limit > 0 && len(records) == page.Limit {
		resp.PageInfo.HasNext = true
		resp.PageInfo.NextCursor = lastID(records[len(records)-1])
	}

	return resp
}

// NonPaginatedRecords wraps list responses that do not page.
type NonPaginatedRecords[T any] struct {
	Records []T `json:"records"`
}

func NewNonPaginatedRecords[T any](records []T) NonPaginatedRecords[T] {
	if records == nil {
		records = []T{}
	}
	return NonPaginatedRecords[T]{Records: records}
}

func (r NonPaginatedRecords[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json", err
}
