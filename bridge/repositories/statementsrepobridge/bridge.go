package statementsrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/statementsrepo"
)

// bridge provides HTTP handlers for StatementEntry operations.
type bridge struct {
	statementsRepository *statementsrepo.Repository
}

func newBridge(statementsRepository *statementsrepo.Repository) *bridge {
	return &bridge{
		statementsRepository: statementsRepository,
	}
}
