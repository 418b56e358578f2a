package employeesrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/employeesrepo"
)

// bridge provides HTTP handlers for Employee operations.
type bridge struct {
	employeesRepository *employeesrepo.Repository
}

func newBridge(employeesRepository *employeesrepo.Repository) *bridge {
	return &bridge{
		employeesRepository: employeesRepository,
	}
}
