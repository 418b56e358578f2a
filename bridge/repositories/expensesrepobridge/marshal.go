package expensesrepobridge

import (
	"fmt"
	"time"

	"github.com/jrazmi/shopkeep/core/repositories/expensesrepo"
	"github.com/jrazmi/shopkeep/sdk/validation"
)

// MarshalToBridge converts a core model to the bridge model.
func MarshalToBridge(expense expensesrepo.Expense) Expense {
	return Expense{
		ID:        expense.ID,
		Label:     expense.Label,
		Category:  validation.GetStringOrEmpty(expense.Category),
		Amount:    expense.Amount,
		SpentOn:   expense.SpentOn.Format(time.DateOnly),
		CreatedAt: expense.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(expenses []expensesrepo.Expense) []Expense {
	bridgeExpenses := make([]Expense, len(expenses))
	for i, expense := range expenses {
		bridgeExpenses[i] = MarshalToBridge(expense)
	}
	return bridgeExpenses
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateExpenseInput) (expensesrepo.CreateExpense, error) {
	create := expensesrepo.CreateExpense{
		Label:  input.Label,
		Amount: input.Amount,
	}

	if input.Category != "" {
		create.Category = validation.StringPtr(input.Category)
	}
	if input.SpentOn != "" {
		spent, err := validation.ParseFlexibleDate(input.SpentOn)
		if err != nil {
			return expensesrepo.CreateExpense{}, fmt.Errorf("invalid spent_on: %w", err)
		}
		create.SpentOn = spent
	}

	return create, nil
}
