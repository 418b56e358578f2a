package salariesrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/salariesrepo"
)

// bridge provides HTTP handlers for Salary operations.
type bridge struct {
	salariesRepository *salariesrepo.Repository
}

func newBridge(salariesRepository *salariesrepo.Repository) *bridge {
	return &bridge{
		salariesRepository: salariesRepository,
	}
}
