package expensesrepobridge

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Expense is the wire representation of an outgoing cost entry.
type Expense struct {
	ID        int64           `json:"id"`
	Label     string          `json:"label"`
	Category  string          `json:"category,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	SpentOn   string          `json:"spent_on"`
	CreatedAt string          `json:"created_at"`
}

// CreateExpenseInput is the POST payload. A blank spent_on falls back
// to today.
type CreateExpenseInput struct {
	Label    string          `json:"label"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	SpentOn  string          `json:"spent_on"`
}

// Validate implements the web validator interface.
func (i CreateExpenseInput) Validate() error {
	if i.Label == "" {
		return fmt.Errorf("label is required")
	}
	if i.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	return nil
}
