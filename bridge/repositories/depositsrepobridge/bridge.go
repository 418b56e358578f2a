package depositsrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/depositsrepo"
)

// bridge provides HTTP handlers for Deposit operations.
type bridge struct {
	depositsRepository *depositsrepo.Repository
}

func newBridge(depositsRepository *depositsrepo.Repository) *bridge {
	return &bridge{
		depositsRepository: depositsRepository,
	}
}
