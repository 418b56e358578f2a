package fop_test

import (
	"testing"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
)

func TestParsePageInt64Cursor_Defaults(t *testing.T) {
	page, err := fop.ParsePageInt64Cursor("", "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if page.Limit != 20 {
		t.Errorf("expected default limit 20, got %d", page.Limit)
	}
	if page.Cursor != 0 {
		t.Errorf("expected zero cursor, got %d", page.Cursor)
	}
}

func TestParsePageInt64Cursor_Values(t *testing.T) {
	page, err := fop.ParsePageInt64Cursor("50", "1234")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if page.Limit != 50 {
		t.Errorf("expected limit 50, got %d", page.Limit)
	}
	if page.Cursor != 1234 {
		t.Errorf("expected cursor 1234, got %d", page.Cursor)
	}
}

func TestParsePageInt64Cursor_Bounds(t *testing.T) {
	if _, err := fop.ParsePageInt64Cursor("0", ""); err == nil {
		t.Errorf("expected error for limit 0")
	}
	if _, err := fop.ParsePageInt64Cursor("101", ""); err == nil {
		t.Errorf("expected error for limit over 100")
	}
	if _, err := fop.ParsePageInt64Cursor("abc", ""); err == nil {
		t.Errorf("expected error for non-numeric limit")
	}
	if _, err := fop.ParsePageInt64Cursor("", "abc"); err == nil {
		t.Errorf("expected error for non-numeric cursor")
	}
}

func TestParseBy(t *testing.T) {
	fields := map[string]string{
		"createdAt": "created_at",
		"dueDate":   "due_date",
	}
	defaultBy := fop.NewBy("created_at", fop.DESC)

	by, err := fop.ParseBy(fields, "", "", defaultBy)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if by != defaultBy {
		t.Errorf("expected default order, got %+v", by)
	}

	by, err = fop.ParseBy(fields, "dueDate", fop.ASC, defaultBy)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if by.Field != "due_date" || by.Direction != fop.ASC {
		t.Errorf("expected due_date ASC, got %+v", by)
	}

	if _, err := fop.ParseBy(fields, "secret", "", defaultBy); err == nil {
		t.Errorf("expected error for unknown field")
	}
	if _, err := fop.ParseBy(fields, "dueDate", "SIDEWAYS", defaultBy); err == nil {
		t.Errorf("expected error for bad direction")
	}
}

func TestNewBy_FallsBackToASC(t *testing.T) {
	by := fop.NewBy("created_at", "bogus")
	if by.Direction != fop.ASC {
		t.Errorf("expected ASC fallback, got %s", by.Direction)
	}
}
