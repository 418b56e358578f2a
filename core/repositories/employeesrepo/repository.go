// Package employeesrepo manages the staff roster referenced by the
// salaries ledger.
package employeesrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

var listCacheKey = repositories.ListCacheKey("employees")

// Storer defines the data storage interface for Employee.
type Storer interface {
	repositories.Creator[Employee, CreateEmployee]
	repositories.Getter[Employee, int64]
	repositories.Lister[Employee, Filter]
}

// Repository provides access to employee storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
	cache  *cache.Cache
}

// NewRepository creates a new Employee repository. A nil cache disables
// caching.
func NewRepository(log *logger.Logger, storer Storer, c *cache.Cache) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		cache:  c,
	}
}

// Create registers a new employee.
func (r *Repository) Create(ctx context.Context, input CreateEmployee) (Employee, error) {
	if input.Name == "" {
		return Employee{}, fmt.Errorf("create employee: name is required")
	}
	if input.MonthlySalary.IsNegative() {
		return Employee{}, fmt.Errorf("create employee: monthly salary cannot be negative")
	}

	employee, err := r.storer.Create(ctx, input)
	if err != nil {
		return Employee{}, fmt.Errorf("create employee: %w", err)
	}

	r.cache.Delete(listCacheKey)

	r.log.InfoContext(ctx, "created employee", "employee_id", employee.ID)
	return employee, nil
}

// Get returns a single employee by id.
func (r *Repository) Get(ctx context.Context, id int64) (Employee, error) {
	employee, err := r.storer.Get(ctx, id)
	if err != nil {
		return Employee{}, fmt.Errorf("get employee %d: %w", id, err)
	}
	return employee, nil
}

// List returns employees matching the filter. Only the default
// unfiltered first page is cached.
func (r *Repository) List(ctx context.Context, filter Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]Employee, error) {
	cacheable := filter == (Filter{}) && orderBy == DefaultOrderBy && repositories.DefaultPage(page)

	employees, err := repositories.CachedList(r.cache, listCacheKey, cacheable, func() ([]Employee, error) {
		return r.storer.List(ctx, filter, orderBy, page)
	})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}
