package closingsrepobridge

import (
	"fmt"
	"net/http"

	"github.com/jrazmi/shopkeep/core/repositories/closingsrepo"
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
	ClosedAfter  string
	ClosedBefore string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:        q.Get("limit"),
		Cursor:       q.Get("cursor"),
		OrderBy:      q.Get("orderBy"),
		Direction:    q.Get("direction"),
		ClosedAfter:  q.Get("closedAfter"),
		ClosedBefore: q.Get("closedBefore"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (closingsrepo.Filter, error) {
	filter := closingsrepo.Filter{}

	if qp.ClosedAfter != "" {
		if t, err := validation.ParseFlexibleDate(qp.ClosedAfter); err == nil {
			filter.ClosedAfter = &t
		} else {
			return filter, fmt.Errorf("invalid closedAfter format: %s", qp.ClosedAfter)
		}
	}
	if qp.ClosedBefore != "" {
		if t, err := validation.ParseFlexibleDate(qp.ClosedBefore); err == nil {
			filter.ClosedBefore = &t
		} else {
			return filter, fmt.Errorf("invalid closedBefore format: %s", qp.ClosedBefore)
		}
	}

	return filter, nil
}

// ORDER
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseBy(closingsrepo.OrderableFields, qp.OrderBy, qp.Direction, closingsrepo.DefaultOrderBy)
}
