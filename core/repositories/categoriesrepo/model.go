package categoriesrepo

import "time"

// DefaultColor is applied when a category is created without one.
const DefaultColor = "#FF6B6B"

// Category groups tasks on the dashboard.
type Category struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}

// CreateCategory contains fields for creating a new category.
type CreateCategory struct {
	Name  string `db:"name"`
	Color string `db:"color"`
}
