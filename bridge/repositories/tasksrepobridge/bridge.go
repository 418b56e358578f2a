package tasksrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/tasksrepo"
)

// bridge provides HTTP handlers for Task operations.
type bridge struct {
	tasksRepository *tasksrepo.Repository
}

func newBridge(tasksRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		tasksRepository: tasksRepository,
	}
}
