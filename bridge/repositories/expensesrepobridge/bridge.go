package expensesrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/expensesrepo"
)

// bridge provides HTTP handlers for Expense operations.
type bridge struct {
	expensesRepository *expensesrepo.Repository
}

func newBridge(expensesRepository *expensesrepo.Repository) *bridge {
	return &bridge{
		expensesRepository: expensesRepository,
	}
}
