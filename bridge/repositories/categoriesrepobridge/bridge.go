package categoriesrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/categoriesrepo"
)

// bridge provides HTTP handlers for Category operations.
type bridge struct {
	categoriesRepository *categoriesrepo.Repository
}

func newBridge(categoriesRepository *categoriesrepo.Repository) *bridge {
	return &bridge{
		categoriesRepository: categoriesRepository,
	}
}
