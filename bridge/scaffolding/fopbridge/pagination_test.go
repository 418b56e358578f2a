package fopbridge_test

import (
	"testing"

	"github.com/jrazmi/shopkeep/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
)

type record struct {
	ID int64 `json:"id"`
}

func lastID(r record) int64 { return r.ID }

func TestNewPaginatedResponseInt64Cursor_FullPage(t *testing.T) {
	records := []record{{ID: 10}, {ID: 9}, {ID: 8}}
	page := fop.PageInt64Cursor{Limit: 3}

	resp := fopbridge.NewPaginatedResponseInt64Cursor(records, page, lastID)

	if !resp.PageInfo.HasNext {
		t.Errorf("full page should report a next page")
	}
	if resp.PageInfo.NextCursor != 8 {
		t.Errorf("expected next cursor 8, got %d", resp.PageInfo.NextCursor)
	}
	if resp.PageInfo.HasPrev {
		t.Errorf("first page should not report a previous page")
	}
}

func TestNewPaginatedResponseInt64Cursor_PartialPage(t *testing.T) {
	records := []record{{ID: 2}, {ID: 1}}
	page := fop.PageInt64Cursor{Limit: 5, Cursor: 3}

	resp := fopbridge.NewPaginatedResponseInt64Cursor(records, page, lastID)

	if resp.PageInfo.HasNext {
		t.Errorf("short page should not report a next page")
	}
	if resp.PageInfo.NextCursor != 0 {
		t.Errorf("expected zero next cursor, got %d", resp.PageInfo.NextCursor)
	}
	if !resp.PageInfo.HasPrev {
		t.Errorf("cursor page should report a previous page")
	}
}

func TestNewPaginatedResponseInt64Cursor_NilRecords(t *testing.T) {
	resp := fopbridge.NewPaginatedResponseInt64Cursor(nil, fop.PageInt64Cursor{Limit: 20}, lastID)

	if resp.Records == nil {
		t.Fatalf("records must encode as [], not null")
	}
	if len(resp.Records) != 0 || resp.PageInfo.HasNext {
		t.Errorf("empty page misreported: %+v", resp.PageInfo)
	}
}
