package statementsrepo

import (
	"time"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/shopspring/decimal"
)

// DefaultOrderBy is newest entry first.
var DefaultOrderBy = fop.NewBy("entry_date", fop.DESC)

// OrderableFields maps API field names to database columns.
var OrderableFields = map[string]string{
	"entryDate": "entry_date",
	"createdAt": "created_at",
	"debit":     "debit",
	"credit":    "credit",
}

// StatementEntry is one line of the account statement. Exactly one of
// Debit and Credit is expected to be non-zero.
type StatementEntry struct {
	ID          int64           `db:"id"`
	EntryDate   time.Time       `db:"entry_date"`
	Description string          `db:"description"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	CreatedAt   time.Time       `db:"created_at"`
}

// CreateStatementEntry contains fields for recording a statement line.
type CreateStatementEntry struct {
	EntryDate   time.Time       `db:"entry_date"`
	Description string          `db:"description"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}

// Filter narrows statement listings. Nil fields are ignored.
type Filter struct {
	EntryAfter  *time.Time
	EntryBefore *time.Time
}
