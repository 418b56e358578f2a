package receivablesrepobridge

import (
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/receivablesrepo"
	"github.com/jrazmi/shopkeep/sdk/validation"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(receivable receivablesrepo.Receivable) Receivable {
	return Receivable{
		ID:          receivable.ID,
		DebtorName:  receivable.DebtorName,
		Reference:   validation.GetStringOrEmpty(receivable.Reference),
		Amount:      receivable.Amount,
		DueOn:       formatDatePtr(receivable.DueOn),
		IsCollected: receivable.IsCollected,
		CreatedAt:   receivable.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(receivables []receivablesrepo.Receivable) []Receivable {
	bridgeReceivables := make([]Receivable, len(receivables))
	for i, receivable := range receivables {
		bridgeReceivables[i] = MarshalToBridge(receivable)
	}
	return bridgeReceivables
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateReceivableInput) (receivablesrepo.CreateReceivable, error) {
	create := receivablesrepo.CreateReceivable{
		DebtorName:  input.DebtorName,
		Amount:      input.Amount,
		IsCollected: input.IsCollected,
	}

	if input.Reference != "" {
		create.Reference = validation.StringPtr(input.Reference)
	}
	if input.DueOn != "" {
		due, err := validation.ParseFlexibleDate(input.DueOn)
		if err != nil {
			return receivablesrepo.CreateReceivable{}, fmt.Errorf("invalid due_on: %w", err)
		}
		create.DueOn = &due
	}

	return create, nil
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
