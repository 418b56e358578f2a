package closingsrepobridge

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Closing is the wire representation of an end-of-day reconciliation
// snapshot.
type Closing struct {
	ID          int64           `json:"id"`
	ClosingDate string          `json:"closing_date"`
	CashTotal   decimal.Decimal `json:"cash_total"`
	BankTotal   decimal.Decimal `json:"bank_total"`
	SalesTotal  decimal.Decimal `json:"sales_total"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

// CreateClosingInput is the POST payload. A blank closing_date falls
// back to today.
type CreateClosingInput struct {
	ClosingDate string          `json:"closing_date"`
	CashTotal   decimal.Decimal `json:"cash_total"`
	BankTotal   decimal.Decimal `json:"bank_total"`
	SalesTotal  decimal.Decimal `json:"sales_total"`
	Notes       string          `json:"notes"`
}

// Validate implements the web validator interface.
func (i CreateClosingInput) Validate() error {
	if i.CashTotal.IsNegative() || i.BankTotal.IsNegative() || i.SalesTotal.IsNegative() {
		return fmt.Errorf("totals cannot be negative")
	}
	return nil
}
