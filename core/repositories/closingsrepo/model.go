package closingsrepo

import (
	"errors"
	"time"

	"github.com/jrazmi/shopkeep/core/scaffolding/fop"
	"github.com/shopspring/decimal"
)

// ErrClosingExists reports a second closing for the same date.
var ErrClosingExists = errors.New("daily closing already recorded for date")

// DefaultOrderBy is newest closing first.
var DefaultOrderBy = fop.NewBy("closing_date", fop.DESC)

// OrderableFields maps API field names to database columns.
var OrderableFields = map[string]string{
	"closingDate": "closing_date",
	"createdAt":   "created_at",
	"salesTotal":  "sales_total",
}

// Closing is the end-of-day cash reconciliation snapshot. One row per
// calendar date.
type Closing struct {
	ID          int64           `db:"id"`
	ClosingDate time.Time       `db:"closing_date"`
	CashTotal   decimal.Decimal `db:"cash_total"`
	BankTotal   decimal.Decimal `db:"bank_total"`
	SalesTotal  decimal.Decimal `db:"sales_total"`
	Notes       *string         `db:"notes"`
	CreatedAt   time.Time       `db:"created_at"`
}

// CreateClosing contains fields for recording a daily closing.
type CreateClosing struct {
	ClosingDate time.Time       `db:"closing_date"`
	CashTotal   decimal.Decimal `db:"cash_total"`
	BankTotal   decimal.Decimal `db:"bank_total"`
	SalesTotal  decimal.Decimal `db:"sales_total"`
	Notes       *string         `db:"notes"`
}

// Filter narrows closing listings. Nil fields are ignored.
type Filter struct {
	ClosedAfter  *time.Time
	ClosedBefore *time.Time
}
