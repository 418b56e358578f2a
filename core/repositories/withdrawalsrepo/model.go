package withdrawalsrepo

import (
	"time"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/shopspring/decimal"
)

// DefaultOrderBy is newest first.
var DefaultOrderBy = fop.NewBy("created_at", fop.DESC)

// OrderableFields maps API field names to database columns.
var OrderableFields = map[string]string{
	"createdAt":   "created_at",
	"withdrawnOn": "withdrawn_on",
	"amount":      "amount",
}

// Withdrawal is cash taken out of the business by the owner.
type Withdrawal struct {
	ID          int64           `db:"id"`
	Purpose     string          `db:"purpose"`
	Amount      decimal.Decimal `db:"amount"`
	WithdrawnOn time.Time       `db:"withdrawn_on"`
	CreatedAt   time.Time       `db:"created_at"`
}

// CreateWithdrawal contains fields for recording a withdrawal.
type CreateWithdrawal struct {
	Purpose     string          `db:"purpose"`
	Amount      decimal.Decimal `db:"amount"`
	WithdrawnOn time.Time       `db:"withdrawn_on"`
}

// Filter narrows withdrawal listings. Nil fields are ignored.
type Filter struct {
	WithdrawnAfter  *time.Time
	WithdrawnBefore *time.Time
}
