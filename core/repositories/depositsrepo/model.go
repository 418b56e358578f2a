package depositsrepo

import (
	"time"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/shopspring/decimal"
)

// Deposit methods.
const (
	MethodCash = "cash"
	MethodBank = "bank"
)

// ValidMethod reports whether m is an accepted deposit method.
func ValidMethod(m string) bool {
	return m == MethodCash || m == MethodBank
}

// DefaultOrderBy is newest first.
var DefaultOrderBy = fop.NewBy("created_at", fop.DESC)

// OrderableFields maps API field names to database columns.
var OrderableFields = map[string]string{
	"createdAt":   "created_at",
	"depositedOn": "deposited_on",
	"amount":      "amount",
}

// Deposit is money put into the till or the bank account.
type Deposit struct {
	ID          int64           `db:"id"`
	Reference   *string         `db:"reference"`
	Method      string          `db:"method"`
	Amount      decimal.Decimal `db:"amount"`
	DepositedOn time.Time       `db:"deposited_on"`
	CreatedAt   time.Time       `db:"created_at"`
}

// CreateDeposit contains fields for recording a deposit.
type CreateDeposit struct {
	Reference   *string         `db:"reference"`
	Method      string          `db:"method"`
	Amount      decimal.Decimal `db:"amount"`
	DepositedOn time.Time       `db:"deposited_on"`
}

// Filter narrows deposit listings. Nil fields are ignored.
type Filter struct {
	Method          *string
	DepositedAfter  *time.Time
	DepositedBefore *time.Time
}
