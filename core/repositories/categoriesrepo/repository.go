// Package categoriesrepo manages the task categories. Categories are a
// small, mostly static set seeded at migration time; new ones can be
// added but never removed through the API.
package categoriesrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/shopkeep/core/repositories"
	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/jrazmi/shopkeep/sdk/logger"
)

// DefaultOrderBy keeps the seeded ordering stable.
var DefaultOrderBy = fop.NewBy("id", fop.ASC)

// OrderableFields maps API field names to database columns.
var OrderableFields = map[string]string{
	"id":        "id",
	"name":      "name",
	"createdAt": "created_at",
}

// Filter narrows category listings. Nil fields are ignored.
type Filter struct {
	Name *string
}

// Storer defines the data storage interface for Category.
type Storer interface {
	repositories.Creator[Category, CreateCategory]
	repositories.Lister[Category, Filter]
}

// Repository provides access to category storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Category repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Create stores a new category. An empty color falls back to the
// column default so every category renders with a swatch.
func (r *Repository) Create(ctx context.Context, input CreateCategory) (Category, error) {
	if input.Name == "" {
		return Category{}, fmt.Errorf("create category: name is required")
	}
	if input.Color == "" {
		input.Color = DefaultColor
	}

	category, err := r.storer.Create(ctx, input)
	if err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}

	r.log.InfoContext(ctx, "created category", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// List returns categories matching the filter.
func (r *Repository) List(ctx context.Context, filter Filter, orderBy fop.By, page fop.PageInt64Cursor) ([]Category, error) {
	categories, err := r.storer.List(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
