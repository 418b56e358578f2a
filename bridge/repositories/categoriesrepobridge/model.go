package categoriesrepobridge

import (
	"fmt"
	"regexp"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Category is the wire representation of a task category.
type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at"`
}

// CreateCategoryInput is the POST payload.
type CreateCategoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Validate implements the web validator interface.
func (i CreateCategoryInput) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.Color != "" && !colorPattern.MatchString(i.Color) {
		return fmt.Errorf("color must be a hex value like #4ECDC4")
	}
	return nil
}
