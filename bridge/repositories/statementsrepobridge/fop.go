package statementsrepobridge

import (
	"fmt"
	"net/http"

	"github.com/jrazmi/shopkeep/core/repositories/statementsrepo"
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
	EntryAfter  string
	EntryBefore string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:       q.Get("limit"),
		Cursor:      q.Get("cursor"),
		OrderBy:     q.Get("orderBy"),
		Direction:   q.Get("direction"),
		EntryAfter:  q.Get("entryAfter"),
		EntryBefore: q.Get("entryBefore"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (statementsrepo.Filter, error) {
	filter := statementsrepo.Filter{}

	if qp.EntryAfter != "" {
		if t, err := validation.ParseFlexibleDate(qp.EntryAfter); err == nil {
			filter.EntryAfter = &t
		} else {
			return filter, fmt.Errorf("invalid entryAfter format: %s", qp.EntryAfter)
		}
	}
	if qp.EntryBefore != "" {
		if t, err := validation.ParseFlexibleDate(qp.EntryBefore); err == nil {
			filter.EntryBefore = &t
		} else {
			return filter, fmt.Errorf("invalid entryBefore format: %s", qp.EntryBefore)
		}
	}

	return filter, nil
}

// ORDER
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseBy(statementsrepo.OrderableFields, qp.OrderBy, qp.Direction, statementsrepo.DefaultOrderBy)
}
