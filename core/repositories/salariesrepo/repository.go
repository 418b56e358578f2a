// Package salariesrepo records monthly salary runs. Every salary row
// references an employee; the database enforces the link.
package salariesrepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/cache"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

var listCacheKey = repositories.ListCacheKey("salaries")

// periodPattern accepts YYYY-MM.
var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Storer defines the data storage interface for Salary.
type Storer interface {
	repositories.Creator[Salary, CreateSalary]
	repositories.Lister[Salary, Filter]
}

// Repository provides access to salary storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
	cache  *cache.Cache
}

// NewRepository creates a new Salary repository. A nil cache disables
// caching.
func NewRepository(log *logger.Logger, storer Storer, c *cache.Cache) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		cache:  c,
	}
}

// Create records a salary run. When the payload marks the salary paid
// without a pay date, the pay date falls back to today.
func (r *Repository) Create(ctx context.Context, input CreateSalary) (Salary, error) {
	if input.EmployeeID == 0 {
		return Salary{}, fmt.Errorf("create salary: employee id is required")
	}
	if !periodPattern.MatchString(input.Period) {
		return Salary{}, fmt.Errorf("create salary: period must be YYYY-MM, got %q", input.Period)
	}
	if input.Gross.IsNegative() || input.Deductions.IsNegative() {
		return Salary{}, fmt.Errorf("create salary: amounts cannot be negative")
	}
	if input.Net.IsZero() {
		input.Net = input.Gross.Sub(input.Deductions)
	}
	if input.Net.IsNegative() {
		return Salary{}, fmt.Errorf("create salary: net cannot be negative")
	}
	if input.IsPaid && input.PaidOn == nil {
		now := time.Now()
		input.PaidOn = &now
	}

	salary, err := r.storer.Create(ctx, input)
	if err != nil {
		return Salary{}, fmt.Errorf("create salary: %w", err)
	}

	r.cache.Delete(listCacheKey)
	r.cache.Delete(repositories.SummaryCacheKey)

	r.log.InfoContext(ctx, "created salary", "salary_id", salary.ID, "employee_id", salary.EmployeeID, "period", salary.Period)
	return salary, nil
}

// List returns salaries matching the filter. Only the default
// unfiltered first page is cached.
func (r *Repository) List(ctx context.Context, filter Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]Salary, error) {
	cacheable := filter == (Filter{}) && orderBy == DefaultOrderBy && repositories.DefaultPage(page)

	salaries, err := repositories.CachedList(r.cache, listCacheKey, cacheable, func() ([]Salary, error) {
		return r.storer.List(ctx, filter, orderBy, page)
	})
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	return salaries, nil
}
