package receivablesrepo

import (
	"time"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/shopspring/decimal"
)

// DefaultOrderBy is newest first.
var DefaultOrderBy = fop.NewBy("created_at", fop.DESC)

// OrderableFields maps API field names to database columns.
var OrderableFields = map[string]string{
	"createdAt":  "created_at",
	"dueOn":      "due_on",
	"amount":     "amount",
	"debtorName": "debtor_name",
}

// Receivable is money owed to the business.
type Receivable struct {
	ID          int64           `db:"id"`
	DebtorName  string          `db:"debtor_name"`
	Reference   *string         `db:"reference"`
	Amount      decimal.Decimal `db:"amount"`
	DueOn       *time.Time      `db:"due_on"`
	IsCollected bool            `db:"is_collected"`
	CreatedAt   time.Time       `db:"created_at"`
}

// CreateReceivable contains fields for recording a receivable.
type CreateReceivable struct {
	DebtorName  string          `db:"debtor_name"`
	Reference   *string         `db:"reference"`
	Amount      decimal.Decimal `db:"amount"`
	DueOn       *time.Time      `db:"due_on"`
	IsCollected bool            `db:"is_collected"`
}

// Filter narrows receivable listings. Nil fields are ignored.
type Filter struct {
	IsCollected *bool
	DebtorName  *string
	DueAfter    *time.Time
	DueBefore   *time.Time
}
