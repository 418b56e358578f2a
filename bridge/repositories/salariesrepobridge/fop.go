package salariesrepobridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/shopkeep/core/repositories/salariesrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
)

// PARAMS
type QueryParams struct {
	Limit     string
	Cursor    string
	OrderBy   string
	Direction string
	// Filter fields
	EmployeeID string
	Period     string
	IsPaid     string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:      q.Get("limit"),
		Cursor:     q.Get("cursor"),
		OrderBy:    q.Get("orderBy"),
		Direction:  q.Get("direction"),
		EmployeeID: q.Get("employeeId"),
		Period:     q.Get("period"),
		IsPaid:     q.Get("isPaid"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (salariesrepo.Filter, error) {
	filter := salariesrepo.Filter{}

	if qp.Period != "" {
		filter.Period = &qp.Period
	}

	if qp.EmployeeID != "" {
		if val, err := strconv.ParseInt(qp.EmployeeID, 10, 64); err == nil {
			filter.EmployeeID = &val
		} else {
			return filter, fmt.Errorf("invalid employeeId: %s", qp.EmployeeID)
		}
	}

	if qp.IsPaid != "" {
		if val, err := strconv.ParseBool(qp.IsPaid); err == nil {
			filter.IsPaid = &val
		} else {
			return filter, fmt.Errorf("invalid isPaid: %s", qp.IsPaid)
		}
	}

	return filter, nil
}

// ORDER
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseBy(salariesrepo.OrderableFields, qp.OrderBy, qp.Direction, salariesrepo.DefaultOrderBy)
}
