package tasksrepo

import (
	"time"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
)

// DefaultOrderBy is newest first.
var DefaultOrderBy = fop.NewBy("created_at", fop.DESC)

// OrderableFields maps API field names to database columns.
var OrderableFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"dueDate":   "due_date",
	"priority":  "priority",
	"status":    "status",
	"title":     "title",
}

// Filter narrows task listings. Nil fields are ignored.
type Filter struct {
	Status          *string
	Priority        *string
	DueBefore       *time.Time
	DueAfter        *time.Time
	CreatedAtBefore *time.Time
	CreatedAtAfter  *time.Time
}
