package depositsrepobridge

import (
	"fmt"
	"net/http"

	"github.com/jrazmi/shopkeep/core/repositories/depositsrepo"
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
	Method          string
	DepositedAfter  string
	DepositedBefore string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:           q.Get("limit"),
		Cursor:          q.Get("cursor"),
		OrderBy:         q.Get("orderBy"),
		Direction:       q.Get("direction"),
		Method:          q.Get("method"),
		DepositedAfter:  q.Get("depositedAfter"),
		DepositedBefore: q.Get("depositedBefore"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (depositsrepo.Filter, error) {
	filter := depositsrepo.Filter{}

	if qp.Method != "" {
		if !depositsrepo.ValidMethod(qp.Method) {
			return filter, fmt.Errorf("invalid method: %s", qp.Method)
		}
		filter.Method = &qp.Method
	}

	if qp.DepositedAfter != "" {
		if t, err := validation.ParseFlexibleDate(qp.DepositedAfter); err == nil {
			filter.DepositedAfter = &t
		} else {
			return filter, fmt.Errorf("invalid depositedAfter format: %s", qp.DepositedAfter)
		}
	}
	if qp.DepositedBefore != "" {
		if t, err := validation.ParseFlexibleDate(qp.DepositedBefore); err == nil {
			filter.DepositedBefore = &t
		} else {
			return filter, fmt.Errorf("invalid depositedBefore format: %s", qp.DepositedBefore)
		}
	}

	return filter, nil
}

// ORDER
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseBy(depositsrepo.OrderableFields, qp.OrderBy, qp.Direction, depositsrepo.DefaultOrderBy)
}
