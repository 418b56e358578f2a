package invoicesrepobridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/shopkeep/core/repositories/invoicesrepo"
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
	IsPaid       string
	CustomerName string
	IssuedAfter  string
	IssuedBefore string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:        q.Get("limit"),
		Cursor:       q.Get("cursor"),
		OrderBy:      q.Get("orderBy"),
		Direction:    q.Get("direction"),
		IsPaid:       q.Get("isPaid"),
		CustomerName: q.Get("customerName"),
		IssuedAfter:  q.Get("issuedAfter"),
		IssuedBefore: q.Get("issuedBefore"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (invoicesrepo.Filter, error) {
	filter := invoicesrepo.Filter{}

	if qp.CustomerName != "" {
		filter.CustomerName = &qp.CustomerName
	}

	if qp.IsPaid != "" {
		if val, err := strconv.ParseBool(qp.IsPaid); err == nil {
			filter.IsPaid = &val
		} else {
			return filter, fmt.Errorf("invalid isPaid: %s", qp.IsPaid)
		}
	}

	if qp.IssuedAfter != "" {
		if t, err := validation.ParseFlexibleDate(qp.IssuedAfter); err == nil {
			filter.IssuedAfter = &t
		} else {
			return filter, fmt.Errorf("invalid issuedAfter format: %s", qp.IssuedAfter)
		}
	}
	if qp.IssuedBefore != "" {
		if t, err := validation.ParseFlexibleDate(qp.IssuedBefore); err == nil {
			filter.IssuedBefore = &t
		} else {
			return filter, fmt.Errorf("invalid issuedBefore format: %s", qp.IssuedBefore)
		}
	}

	return filter, nil
}

// ORDER
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseBy(invoicesrepo.OrderableFields, qp.OrderBy, qp.Direction, invoicesrepo.DefaultOrderBy)
}
