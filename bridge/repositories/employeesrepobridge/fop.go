package employeesrepobridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/shopkeep/core/repositories/employeesrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
)

// PARAMS
type QueryParams struct {
	Limit     string
	Cursor    string
	OrderBy   string
	Direction string
	// Filter fields
	IsActive string
	Name     string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:     q.Get("limit"),
		Cursor:    q.Get("cursor"),
		OrderBy:   q.Get("orderBy"),
		Direction: q.Get("direction"),
		IsActive:  q.Get("isActive"),
		Name:      q.Get("name"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (employeesrepo.Filter, error) {
	filter := employeesrepo.Filter{}

	if qp.Name != "" {
		filter.Name = &qp.Name
	}

	if qp.IsActive != "" {
		if val, err := strconv.ParseBool(qp.IsActive); err == nil {
			filter.IsActive = &val
		} else {
			return filter, fmt.Errorf("invalid isActive: %s", qp.IsActive)
		}
	}

	return filter, nil
}

// ORDER
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseBy(employeesrepo.OrderableFields, qp.OrderBy, qp.Direction, employeesrepo.DefaultOrderBy)
}
