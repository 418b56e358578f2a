package receivablesrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/receivablesrepo"
)

// bridge provides HTTP handlers for Receivable operations.
type bridge struct {
	receivablesRepository *receivablesrepo.Repository
}

func newBridge(receivablesRepository *receivablesrepo.Repository) *bridge {
	return &bridge{
		receivablesRepository: receivablesRepository,
	}
}
