package statementsrepobridge

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StatementEntry is the wire representation of one account statement
// line.
type StatementEntry struct {
	ID          int64           `json:"id"`
	EntryDate   string          `json:"entry_date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	CreatedAt   string          `json:"created_at"`
}

// CreateStatementEntryInput is the POST payload. Exactly one of debit
// and credit must be non-zero.
type CreateStatementEntryInput struct {
	EntryDate   string          `json:"entry_date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Validate implements the web validator interface.
func (i CreateStatementEntryInput) Validate() error {
	if i.Description == "" {
		return fmt.Errorf("description is required")
	}
	if i.Debit.IsNegative() || i.Credit.IsNegative() {
		return fmt.Errorf("amounts cannot be negative")
	}
	if i.Debit.IsZero() == i.Credit.IsZero() {
		return fmt.Errorf("exactly one of debit and credit must be set")
	}
	return nil
}
