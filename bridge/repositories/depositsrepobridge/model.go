package depositsrepobridge

import (
	"fmt"

	"github.com/jrazmi/shopkeep/core/repositories/depositsrepo"
	"github.com/shopspring/decimal"
)

// Deposit is the wire representation of money put into the till or the
// bank account.
type Deposit struct {
	ID          int64           `json:"id"`
	Reference   string          `json:"reference,omitempty"`
	Method      string          `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
	DepositedOn string          `json:"deposited_on"`
	CreatedAt   string          `json:"created_at"`
}

// CreateDepositInput is the POST payload. A blank deposited_on falls
// back to today.
type CreateDepositInput struct {
	Reference   string          `json:"reference"`
	Method      string          `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
	DepositedOn string          `json:"deposited_on"`
}

// Validate implements the web validator interface.
func (i CreateDepositInput) Validate() error {
	if !depositsrepo.ValidMethod(i.Method) {
		return fmt.Errorf("method must be %q or %q", depositsrepo.MethodCash, depositsrepo.MethodBank)
	}
	if i.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	return nil
}
