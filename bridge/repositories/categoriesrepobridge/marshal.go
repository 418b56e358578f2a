package categoriesrepobridge

import (
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(category categoriesrepo.Category) Category {
	return Category{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(categories []categoriesrepo.Category) []Category {
	bridgeCategories := make([]Category, len(categories))
	for i, category := range categories {
		bridgeCategories[i] = MarshalToBridge(category)
	}
	return bridgeCategories
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateCategoryInput) categoriesrepo.CreateCategory {
	return categoriesrepo.CreateCategory{
		Name:  input.Name,
		Color: input.Color,
	}
}
