package closingsrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/closingsrepo"
)

// bridge provides HTTP handlers for DailyClosing operations.
type bridge struct {
	closingsRepository *closingsrepo.Repository
}

func newBridge(closingsRepository *closingsrepo.Repository) *bridge {
	return &bridge{
		closingsRepository: closingsRepository,
	}
}
