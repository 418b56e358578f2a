package invoicesrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/invoicesrepo"
)

// bridge provides HTTP handlers for Invoice operations.
type bridge struct {
	invoicesRepository *invoicesrepo.Repository
}

func newBridge(invoicesRepository *invoicesrepo.Repository) *bridge {
	return &bridge{
		invoicesRepository: invoicesRepository,
	}
}
