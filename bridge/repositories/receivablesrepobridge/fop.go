package receivablesrepobridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/shopkeep/core/repositories/receivablesrepo"
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
	IsCollected string
	DebtorName  string
	DueAfter    string
	DueBefore   string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:       q.Get("limit"),
		Cursor:      q.Get("cursor"),
		OrderBy:     q.Get("orderBy"),
		Direction:   q.Get("direction"),
		IsCollected: q.Get("isCollected"),
		DebtorName:  q.Get("debtorName"),
		DueAfter:    q.Get("dueAfter"),
		DueBefore:   q.Get("dueBefore"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (receivablesrepo.Filter, error) {
	filter := receivablesrepo.Filter{}

	if qp.DebtorName != "" {
		filter.DebtorName = &qp.DebtorName
	}

	if qp.IsCollected != "" {
		if val, err := strconv.ParseBool(qp.IsCollected); err == nil {
			filter.IsCollected = &val
		} else {
			return filter, fmt.Errorf("invalid isCollected: %s", qp.IsCollected)
		}
	}

	if qp.DueAfter != "" {
		if t, err := validation.ParseFlexibleDate(qp.DueAfter); err == nil {
			filter.DueAfter = &t
		} else {
			return filter, fmt.Errorf("invalid dueAfter format: %s", qp.DueAfter)
		}
	}
	if qp.DueBefore != "" {
		if t, err := validation.ParseFlexibleDate(qp.DueBefore); err == nil {
			filter.DueBefore = &t
		} else {
			return filter, fmt.Errorf("invalid dueBefore format: %s", qp.DueBefore)
		}
	}

	return filter, nil
}

// ORDER
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseBy(receivablesrepo.OrderableFields, qp.OrderBy, qp.Direction, receivablesrepo.DefaultOrderBy)
}
