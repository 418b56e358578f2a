package withdrawalsrepobridge

import (
	"github.com/jrazmi/shopkeep/core/repositories/withdrawalsrepo"
)

// bridge provides HTTP handlers for Withdrawal operations.
type bridge struct {
	withdrawalsRepository *withdrawalsrepo.Repository
}

func newBridge(withdrawalsRepository *withdrawalsrepo.Repository) *bridge {
	return &bridge{
		withdrawalsRepository: withdrawalsRepository,
	}
}
