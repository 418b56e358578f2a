package receivablesrepobridge

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Receivable is the wire representation of money owed to the business.
type Receivable struct {
	ID          int64           `json:"id"`
	DebtorName  string          `json:"debtor_name"`
	Reference   string          `json:"reference,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	DueOn       string          `json:"due_on,omitempty"`
	IsCollected bool            `json:"is_collected"`
	CreatedAt   string          `json:"created_at"`
}

// CreateReceivableInput is the POST payload.
type CreateReceivableInput struct {
	DebtorName  string          `json:"debtor_name"`
	Reference   string          `json:"reference"`
	Amount      decimal.Decimal `json:"amount"`
	DueOn       string          `json:"due_on"`
	IsCollected bool            `json:"is_collected"`
}

// Validate implements the web validator interface.
func (i CreateReceivableInput) Validate() error {
	if i.DebtorName == "" {
		return fmt.Errorf("debtor_name is required")
	}
	if i.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	return nil
}
