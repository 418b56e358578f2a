package closingsrepobridge

import (
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/closingsrepo"
	"github.com/jrazmi/shopkeep/sdk/validation"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(closing closingsrepo.Closing) Closing {
	return Closing{
		ID:          closing.ID,
		ClosingDate: closing.ClosingDate.Format(time.DateOnly),
		CashTotal:   closing.CashTotal,
		BankTotal:   closing.BankTotal,
		SalesTotal:  closing.SalesTotal,
		Notes:       validation.GetStringOrEmpty(closing.Notes),
		CreatedAt:   closing.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(closings []closingsrepo.Closing) []Closing {
	bridgeClosings := make([]Closing, len(closings))
	for i, closing := range closings {
		bridgeClosings[i] = MarshalToBridge(closing)
	}
	return bridgeClosings
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateClosingInput) (closingsrepo.CreateClosing, error) {
	create := closingsrepo.CreateClosing{
		CashTotal:  input.CashTotal,
		BankTotal:  input.BankTotal,
		SalesTotal: input.SalesTotal,
	}

	if input.Notes != "" {
		create.Notes = validation.StringPtr(input.Notes)
	}
	if input.ClosingDate != "" {
		closingDate, err := validation.ParseFlexibleDate(input.ClosingDate)
		if err != nil {
			return closingsrepo.CreateClosing{}, fmt.Errorf("invalid closing_date: %w", err)
		}
		create.ClosingDate = closingDate
	}

	return create, nil
}
