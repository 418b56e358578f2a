package categoriesrepobridge

import (
	"net/http"

	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
)

// PARAMS
type QueryParams struct {
	Limit     string
	Cursor    string
	OrderBy   string
	Direction string
	// Filter fields
	Name string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Limit:     q.Get("limit"),
		Cursor:    q.Get("cursor"),
		OrderBy:   q.Get("orderBy"),
		Direction: q.Get("direction"),
		Name:      q.Get("name"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (categoriesrepo.Filter, error) {
	filter := categoriesrepo.Filter{}

	if qp.Name != "" {
		filter.Name = &qp.Name
	}

	return filter, nil
}

// ORDER
func parseOrderBy(qp QueryParams) (fop.By, error) {
	return fop.ParseBy(categoriesrepo.OrderableFields, qp.OrderBy, qp.Direction, categoriesrepo.DefaultOrderBy)
}
