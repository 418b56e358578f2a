package withdrawalsrepobridge

import (
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/withdrawalsrepo"
	"github.com/jrazmi/shopkeep/sdk/validation"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(withdrawal withdrawalsrepo.Withdrawal) Withdrawal {
	return Withdrawal{
		ID:          withdrawal.ID,
		Purpose:     withdrawal.Purpose,
		Amount:      withdrawal.Amount,
		WithdrawnOn: withdrawal.WithdrawnOn.Format(time.DateOnly),
		CreatedAt:   withdrawal.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(withdrawals []withdrawalsrepo.Withdrawal) []Withdrawal {
	bridgeWithdrawals := make([]Withdrawal, len(withdrawals))
	for i, withdrawal := range withdrawals {
		bridgeWithdrawals[i] = MarshalToBridge(withdrawal)
	}
	return bridgeWithdrawals
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateWithdrawalInput) (withdrawalsrepo.CreateWithdrawal, error) {
	create := withdrawalsrepo.CreateWithdrawal{
		Purpose: input.Purpose,
		Amount:  input.Amount,
	}

	if input.WithdrawnOn != "" {
		withdrawn, err := validation.ParseFlexibleDate(input.WithdrawnOn)
		if err != nil {
			return withdrawalsrepo.CreateWithdrawal{}, fmt.Errorf("invalid withdrawn_on: %w", err)
		}
		create.WithdrawnOn = withdrawn
	}

	return create, nil
}
