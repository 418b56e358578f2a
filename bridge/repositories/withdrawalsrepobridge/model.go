package withdrawalsrepobridge

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Withdrawal is the wire representation of cash taken out by the owner.
type Withdrawal struct {
	ID          int64           `json:"id"`
	Purpose     string          `json:"purpose"`
	Amount      decimal.Decimal `json:"amount"`
	WithdrawnOn string          `json:"withdrawn_on"`
	CreatedAt   string          `json:"created_at"`
}

// CreateWithdrawalInput is the POST payload. A blank withdrawn_on
// falls back to today.
type CreateWithdrawalInput struct {
	Purpose     string          `json:"purpose"`
	Amount      decimal.Decimal `json:"amount"`
	WithdrawnOn string          `json:"withdrawn_on"`
}

// Validate implements the web validator interface.
func (i CreateWithdrawalInput) Validate() error {
	if i.Purpose == "" {
		return fmt.Errorf("purpose is required")
	}
	if i.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	return nil
}
