package tasksrepobridge

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/validation"
)

// PARAMS
type QueryParams struct {
	Limit     string
	Cursor    string
	OrderBy   string
	Direction string
	// Filter fields
	Status          string
	Priority        string
	DueBefore       string
	DueAfter        string
	CreatedAtBefore string
	CreatedAtAfter  string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:           q.Get("limit"),
		Cursor:          q.Get("cursor"),
		OrderBy:         q.Get("orderBy"),
		Direction:       q.Get("direction"),
		Status:          q.Get("status"),
		Priority:        q.Get("priority"),
		DueBefore:       q.Get("dueBefore"),
		DueAfter:        q.Get("dueAfter"),
		CreatedAtBefore: q.Get("createdAtBefore"),
		CreatedAtAfter:  q.Get("createdAtAfter"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (tasksrepo.Filter, error) {
	filter := tasksrepo.Filter{}

	// String filters
	if qp.Status != "" {
		filter.Status = &qp.Status
	}
	if qp.Priority != "" {
		filter.Priority = &qp.Priority
	}

	// Date filters
	if qp.DueBefore != "" {
		if t, err := validation.ParseFlexibleDate(qp.DueBefore); err == nil {
			filter.DueBefore = &t
		} else {
			return filter, fmt.Errorf("invalid dueBefore format: %s", qp.DueBefore)
		}
	}
	if qp.DueAfter != "" {
		if t, err := validation.ParseFlexibleDate(qp.DueAfter); err == nil {
			filter.DueAfter = &t
		} else {
			return filter, fmt.Errorf("invalid dueAfter format: %s", qp.DueAfter)
		}
	}

	// Time filters
	if qp.CreatedAtBefore != "" {
		if t, err := time.Parse(time.RFC3339, qp.CreatedAtBefore); err == nil {
			filter.CreatedAtBefore = &t
		} else {
			return filter, fmt.Errorf("invalid createdAtBefore format: %s", qp.CreatedAtBefore)
		}
	}
	if qp.CreatedAtAfter != "" {
		if t, err := time.Parse(time.RFC3339, qp.CreatedAtAfter); err == nil {
			filter.CreatedAtAfter = &t
		} else {
			return filter, fmt.Errorf("invalid createdAtAfter format: %s", qp.CreatedAtAfter)
		}
	}

	return filter, nil
}

// ORDER
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseBy(tasksrepo.OrderableFields, qp.OrderBy, qp.Direction, tasksrepo.DefaultOrderBy)
}
