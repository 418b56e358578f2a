package reportsrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/reportsrepo"
)

// bridge provides HTTP handlers for financial report operations.
type bridge struct {
	reportsRepository *reportsrepo.Repository
}

func newBridge(reportsRepository *reportsrepo.Repository) *bridge {
	return &bridge{
		reportsRepository: reportsRepository,
	}
}
