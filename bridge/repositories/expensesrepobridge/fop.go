package expensesrepobridge

import (
	"fmt"
	"net/http"

	"github.com/jrazmi/shopkeep/core/repositories/expensesrepo"
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
	Category    string
	SpentAfter  string
	SpentBefore string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:       q.Get("limit"),
		Cursor:      q.Get("cursor"),
		OrderBy:     q.Get("orderBy"),
		Direction:   q.Get("direction"),
		Category:    q.Get("category"),
		SpentAfter:  q.Get("spentAfter"),
		SpentBefore: q.Get("spentBefore"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (expensesrepo.Filter, error) {
	filter := expensesrepo.Filter{}

	if qp.Category != "" {
		filter.Category = &qp.Category
	}

	if qp.SpentAfter != "" {
		if t, err := validation.ParseFlexibleDate(qp.SpentAfter); err == nil {
			filter.SpentAfter = &t
		} else {
			return filter, fmt.Errorf("invalid spentAfter format: %s", qp.SpentAfter)
		}
	}
	if qp.SpentBefore != "" {
		if t, err := validation.ParseFlexibleDate(qp.SpentBefore); err == nil {
			filter.SpentBefore = &t
		} else {
			return filter, fmt.Errorf("invalid spentBefore format: %s", qp.SpentBefore)
		}
	}

	return filter, nil
}

// ORDER
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseBy(expensesrepo.OrderableFields, qp.OrderBy, qp.Direction, expensesrepo.DefaultOrderBy)
}
