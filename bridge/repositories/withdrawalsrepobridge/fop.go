package withdrawalsrepobridge

import (
	"fmt"
	"net/http"

	"github.com/jrazmi/shopkeep/core/repositories/withdrawalsrepo"
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
	WithdrawnAfter  string
	WithdrawnBefore string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:           q.Get("limit"),
		Cursor:          q.Get("cursor"),
		OrderBy:         q.Get("orderBy"),
		Direction:       q.Get("direction"),
		WithdrawnAfter:  q.Get("withdrawnAfter"),
		WithdrawnBefore: q.Get("withdrawnBefore"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (withdrawalsrepo.Filter, error) {
	filter := withdrawalsrepo.Filter{}

	if qp.WithdrawnAfter != "" {
		if t, err := validation.ParseFlexibleDate(qp.WithdrawnAfter); err == nil {
			filter.WithdrawnAfter = &t
		} else {
			return filter, fmt.Errorf("invalid withdrawnAfter format: %s", qp.WithdrawnAfter)
		}
	}
	if qp.WithdrawnBefore != "" {
		if t, err := validation.ParseFlexibleDate(qp.WithdrawnBefore); err == nil {
			filter.WithdrawnBefore = &t
		} else {
			return filter, fmt.Errorf("invalid withdrawnBefore format: %s", qp.WithdrawnBefore)
		}
	}

	return filter, nil
}

// ORDER
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseBy(withdrawalsrepo.OrderableFields, qp.OrderBy, qp.Direction, withdrawalsrepo.DefaultOrderBy)
}
