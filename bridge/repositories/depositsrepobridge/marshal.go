package depositsrepobridge

import (
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/depositsrepo"
	"github.com/jrazmi/shopkeep/sdk/validation"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(deposit depositsrepo.Deposit) Deposit {
	return Deposit{
		ID:          deposit.ID,
		Reference:   validation.GetStringOrEmpty(deposit.Reference),
		Method:      deposit.Method,
		Amount:      deposit.Amount,
		DepositedOn: deposit.DepositedOn.Format(time.DateOnly),
		CreatedAt:   deposit.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(deposits []depositsrepo.Deposit) []Deposit {
	bridgeDeposits := make([]Deposit, len(deposits))
	for i, deposit := range deposits {
		bridgeDeposits[i] = MarshalToBridge(deposit)
	}
	return bridgeDeposits
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateDepositInput) (depositsrepo.CreateDeposit, error) {
	create := depositsrepo.CreateDeposit{
		Method: input.Method,
		Amount: input.Amount,
	}

	if input.Reference != "" {
		create.Reference = validation.StringPtr(input.Reference)
	}
	if input.DepositedOn != "" {
		deposited, err := validation.ParseFlexibleDate(input.DepositedOn)
		if err != nil {
			return depositsrepo.CreateDeposit{}, fmt.Errorf("invalid deposited_on: %w", err)
		}
		create.DepositedOn = deposited
	}

	return create, nil
}
